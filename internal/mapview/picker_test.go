package mapview

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type coordGeocoder struct{}

func (coordGeocoder) Reverse(ctx context.Context, lat, lng float64) string {
	return fmt.Sprintf("addr(%.1f,%.1f)", lat, lng)
}

func TestPicker_ClickSequence(t *testing.T) {
	rec := &Recorder{}
	picker := NewPicker(rec, coordGeocoder{})

	var pickupAddr, dropoffAddr string
	picker.OnPickup = func(a string) { pickupAddr = a }
	picker.OnDropoff = func(a string) { dropoffAddr = a }

	// First click selects the pickup, later clicks the dropoff
	picker.Click(context.Background(), 30.0, 31.2)
	assert.NotNil(t, picker.Pickup())
	assert.Nil(t, picker.Dropoff())
	assert.Equal(t, "addr(30.0,31.2)", pickupAddr)

	picker.Click(context.Background(), 31.2, 29.9)
	assert.NotNil(t, picker.Dropoff())
	assert.Equal(t, "addr(31.2,29.9)", dropoffAddr)

	assert.Len(t, rec.Markers, 2)
	assert.Equal(t, MarkerPickup, rec.Markers[0].Kind)
	assert.Equal(t, MarkerDropoff, rec.Markers[1].Kind)

	// Re-clicking in dropoff mode replaces the dropoff only
	picker.Click(context.Background(), 25.7, 32.6)
	assert.Equal(t, 32.6, picker.Dropoff().Lng)
	assert.Equal(t, 31.2, picker.Pickup().Lng)
}

func TestPicker_ModeSwitch(t *testing.T) {
	rec := &Recorder{}
	picker := NewPicker(rec, coordGeocoder{})

	picker.Click(context.Background(), 1, 1)
	picker.SelectPickup()
	picker.Click(context.Background(), 2, 2)

	assert.Equal(t, 2.0, picker.Pickup().Lat)
	assert.Nil(t, picker.Dropoff())
}

func TestPicker_Reset(t *testing.T) {
	rec := &Recorder{}
	picker := NewPicker(rec, coordGeocoder{})

	picker.Click(context.Background(), 1, 1)
	picker.Click(context.Background(), 2, 2)
	picker.Reset()

	assert.Nil(t, picker.Pickup())
	assert.Nil(t, picker.Dropoff())
	assert.Empty(t, rec.Markers)

	// Back in pickup mode after a reset
	picker.Click(context.Background(), 3, 3)
	assert.NotNil(t, picker.Pickup())
	assert.Nil(t, picker.Dropoff())
}
