package models

// Location is a geographical point.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
