package models

// Booking status strings as the server localizes them.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a passenger's seat reservation on a trip.
type Booking struct {
	ID            string  `json:"id"`
	TripID        string  `json:"tripId"`
	PassengerID   string  `json:"passengerId"`
	PassengerName string  `json:"passengerName"`
	SeatsBooked   int     `json:"seatsBooked"`
	PricePerSeat  float64 `json:"pricePerSeat"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
}

// CreateBookingRequest is the JSON body of POST /Booking/CreateBooking.
type CreateBookingRequest struct {
	TripID      string  `json:"tripId"`
	SeatsBooked int     `json:"seatsBooked"`
	TotalPrice  float64 `json:"totalPrice"`
}

// CreateReviewRequest is the JSON body of POST /Review/CreateReview.
type CreateReviewRequest struct {
	TripID     string  `json:"tripId"`
	ReviewerID string  `json:"reviewerId"`
	RevieweeID string  `json:"revieweeId"`
	Rate       float64 `json:"rate"`
	Comment    string  `json:"comment,omitempty"`
}
