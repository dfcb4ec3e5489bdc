package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "state.json")

	s, err := NewFileStore(path)
	assert.NoError(t, err)
	assert.NoError(t, s.Set("token", "abc"))
	assert.NoError(t, s.Set("isVerifiedDriver", "true"))

	// Reopening reads the same values back
	reopened, err := NewFileStore(path)
	assert.NoError(t, err)
	v, ok := reopened.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
	v, ok = reopened.Get("isVerifiedDriver")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestFileStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFileStore(path)
	assert.NoError(t, err)

	assert.NoError(t, s.Set("k", "v"))
	assert.NoError(t, s.Delete("k"))
	_, ok := s.Get("k")
	assert.False(t, ok)

	// Deleting an absent key is a no-op
	assert.NoError(t, s.Delete("missing"))

	reopened, err := NewFileStore(path)
	assert.NoError(t, err)
	_, ok = reopened.Get("k")
	assert.False(t, ok)
}

func TestFileStore_MissingFile(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))
	assert.NoError(t, err)
	_, ok := s.Get("anything")
	assert.False(t, ok)
}

func TestLocal_Session(t *testing.T) {
	local := NewLocal(NewMemStore())

	_, ok := local.Token()
	assert.False(t, ok)
	assert.False(t, local.VerifiedDriver())

	assert.NoError(t, local.SetToken("tok"))
	assert.NoError(t, local.SetVerifiedDriver(true))

	token, ok := local.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
	assert.True(t, local.VerifiedDriver())

	local.ClearSession()
	_, ok = local.Token()
	assert.False(t, ok)
	assert.False(t, local.VerifiedDriver())
}

func TestLocal_Bookings(t *testing.T) {
	local := NewLocal(NewMemStore())

	_, ok := local.BookingID("t1")
	assert.False(t, ok)

	assert.NoError(t, local.RememberBooking("t1", "b1"))
	assert.NoError(t, local.RememberBooking("t2", "b2"))

	id, ok := local.BookingID("t1")
	assert.True(t, ok)
	assert.Equal(t, "b1", id)

	// Bookings are keyed per trip
	id, ok = local.BookingID("t2")
	assert.True(t, ok)
	assert.Equal(t, "b2", id)

	assert.NoError(t, local.ForgetBooking("t1"))
	_, ok = local.BookingID("t1")
	assert.False(t, ok)
	_, ok = local.BookingID("t2")
	assert.True(t, ok)
}

func TestLocal_Ratings(t *testing.T) {
	local := NewLocal(NewMemStore())

	assert.False(t, local.HasRated("u1", "t1"))
	assert.NoError(t, local.MarkRated("u1", "t1"))
	assert.True(t, local.HasRated("u1", "t1"))

	// The mark is scoped to the user and trip pair
	assert.False(t, local.HasRated("u2", "t1"))
	assert.False(t, local.HasRated("u1", "t2"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "booking:t1", BookingKey("t1"))
	assert.Equal(t, "rated:u1:t1", RatedKey("u1", "t1"))
}
