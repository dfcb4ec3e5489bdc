package models

import "time"

// TripStatus is the integer status code reported by the server.
type TripStatus int

const (
	TripScheduled  TripStatus = 1
	TripInProgress TripStatus = 2
	TripCompleted  TripStatus = 3
	TripCancelled  TripStatus = 4
)

// String returns the status name for logging and display.
func (s TripStatus) String() string {
	switch s {
	case TripScheduled:
		return "scheduled"
	case TripInProgress:
		return "in-progress"
	case TripCompleted:
		return "completed"
	case TripCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s TripStatus) Terminal() bool {
	return s == TripCompleted || s == TripCancelled
}

// Trip is the full trip aggregate returned by GetTripById.
type Trip struct {
	ID                    string     `json:"id"`
	DriverID              string     `json:"driverId"`
	DriverName            string     `json:"driverName"`
	DepartureCity         string     `json:"departureCity"`
	DestinationCity       string     `json:"destinationCity"`
	DepartureLatitude     float64    `json:"departureLatitude"`
	DepartureLongitude    float64    `json:"departureLongitude"`
	DestinationLatitude   float64    `json:"destinationLatitude"`
	DestinationLongitude  float64    `json:"destinationLongitude"`
	DepartureTime         time.Time  `json:"departureTime"`
	SeatsAvailable        int        `json:"seatsAvailable"`
	Price                 float64    `json:"price"`
	Notes                 string     `json:"notes"`
	CarID                 string     `json:"carId"`
	AutoAcceptBooking     bool       `json:"autoAcceptBooking"`
	Status                TripStatus `json:"tripStatus"`
	ConfirmedPassengerIDs []string   `json:"confirmedPassengerIds"`
}

// CreateTripRequest is the JSON body of POST /Trip/CreateTrip.
type CreateTripRequest struct {
	DepartureCity        string  `json:"departureCity"`
	DestinationCity      string  `json:"destinationCity"`
	DepartureLatitude    float64 `json:"departureLatitude"`
	DepartureLongitude   float64 `json:"departureLongitude"`
	DestinationLatitude  float64 `json:"destinationLatitude"`
	DestinationLongitude float64 `json:"destinationLongitude"`
	DepartureTime        string  `json:"departureTime"`
	SeatsAvailable       int     `json:"seatsAvailable"`
	Price                float64 `json:"price"`
	Notes                string  `json:"notes"`
	CarID                string  `json:"carId"`
	AutoAcceptBooking    bool    `json:"autoAcceptBooking"`
}

// TripCard is the listing shape returned by GetAllTrips.
type TripCard struct {
	TripID          string     `json:"tripId"`
	DepartureCity   string     `json:"departureCity"`
	DestinationCity string     `json:"destinationCity"`
	CarType         string     `json:"carType"`
	DepartureTime   time.Time  `json:"departureTime"`
	AvailableSeats  int        `json:"availableSeats"`
	Price           float64    `json:"price"`
	DriverName      string     `json:"driverName"`
	DriverImageURL  string     `json:"driverImageUrl"`
	Rate            float64    `json:"rate"`
	DriverGender    string     `json:"driverGender"`
	TripStatus      TripStatus `json:"tripStatus"`
}
