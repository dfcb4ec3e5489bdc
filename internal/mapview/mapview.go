// Package mapview treats the map widget as an external collaborator behind a
// small interface; any concrete mapping frontend can implement it.
package mapview

import (
	"sync"

	"github.com/me4war/meshwar-client/internal/models"
)

// MarkerKind distinguishes the two route markers.
type MarkerKind int

const (
	MarkerPickup MarkerKind = iota
	MarkerDropoff
)

// Map is the surface the client needs from a map widget.
type Map interface {
	PlaceMarker(kind MarkerKind, lat, lng float64, label string)
	CenterOn(lat, lng float64, zoom int)
	ClearMarkers()
}

// NullMap discards every call, for headless use.
type NullMap struct{}

func (NullMap) PlaceMarker(MarkerKind, float64, float64, string) {}
func (NullMap) CenterOn(float64, float64, int)                   {}
func (NullMap) ClearMarkers()                                    {}

// Marker records one PlaceMarker call.
type Marker struct {
	Kind  MarkerKind
	Lat   float64
	Lng   float64
	Label string
}

// Recorder captures map calls for tests.
type Recorder struct {
	mu      sync.Mutex
	Markers []Marker
	Centers []models.Location
}

func (r *Recorder) PlaceMarker(kind MarkerKind, lat, lng float64, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Markers = append(r.Markers, Marker{Kind: kind, Lat: lat, Lng: lng, Label: label})
}

func (r *Recorder) CenterOn(lat, lng float64, zoom int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Centers = append(r.Centers, models.Location{Lat: lat, Lng: lng})
}

func (r *Recorder) ClearMarkers() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Markers = nil
}
