package models

import "time"

// SuggestedLocation is a resolved point of a suggested route.
type SuggestedLocation struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
}

// TripSuggestion is a passenger-authored desired route.
type TripSuggestion struct {
	ID                     string            `json:"id"`
	UserName               string            `json:"userName"`
	Departure              SuggestedLocation `json:"departure"`
	Destination            SuggestedLocation `json:"destination"`
	SeatCount              int               `json:"seatCount"`
	SuggestedPrice         float64           `json:"suggestedPrice"`
	PreferredDepartureTime time.Time         `json:"preferredDepartureTime"`
	Description            string            `json:"description"`
	Classifications        int               `json:"classifications"`
}

// CreateTripSuggestionRequest is the JSON body for creating a suggestion.
type CreateTripSuggestionRequest struct {
	Departure              SuggestedLocation `json:"departure"`
	Destination            SuggestedLocation `json:"destination"`
	SeatCount              int               `json:"seatCount"`
	SuggestedPrice         float64           `json:"suggestedPrice"`
	PreferredDepartureTime string            `json:"preferredDepartureTime"`
	Description            string            `json:"description"`
}
