package mapview

import (
	"context"

	"github.com/me4war/meshwar-client/internal/models"
)

// ReverseGeocoder resolves a clicked coordinate to a display address.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) string
}

// Picker drives pickup/dropoff selection on a map: the first click places the
// pickup marker, later clicks place the dropoff until the mode is switched or
// reset. Each click is reverse-geocoded and the address handed to the bound
// form field via the callbacks.
type Picker struct {
	m        Map
	geocoder ReverseGeocoder

	selectingPickup bool
	pickup          *models.Location
	dropoff         *models.Location

	OnPickup  func(address string)
	OnDropoff func(address string)
}

// NewPicker starts in pickup-selection mode.
func NewPicker(m Map, geocoder ReverseGeocoder) *Picker {
	return &Picker{m: m, geocoder: geocoder, selectingPickup: true}
}

// Click handles a map click at the given coordinate.
func (p *Picker) Click(ctx context.Context, lat, lng float64) {
	address := p.geocoder.Reverse(ctx, lat, lng)
	loc := &models.Location{Lat: lat, Lng: lng}

	if p.selectingPickup {
		p.pickup = loc
		p.m.PlaceMarker(MarkerPickup, lat, lng, address)
		if p.OnPickup != nil {
			p.OnPickup(address)
		}
		p.selectingPickup = false
		return
	}

	p.dropoff = loc
	p.m.PlaceMarker(MarkerDropoff, lat, lng, address)
	if p.OnDropoff != nil {
		p.OnDropoff(address)
	}
}

// SelectPickup makes the next click place the pickup marker.
func (p *Picker) SelectPickup() { p.selectingPickup = true }

// SelectDropoff makes the next click place the dropoff marker.
func (p *Picker) SelectDropoff() { p.selectingPickup = false }

// Pickup returns the selected pickup location, nil when unset.
func (p *Picker) Pickup() *models.Location { return p.pickup }

// Dropoff returns the selected dropoff location, nil when unset.
func (p *Picker) Dropoff() *models.Location { return p.dropoff }

// Reset clears both locations and returns to pickup-selection mode.
func (p *Picker) Reset() {
	p.pickup = nil
	p.dropoff = nil
	p.selectingPickup = true
	p.m.ClearMarkers()
}
