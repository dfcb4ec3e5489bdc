package api

import (
	"context"
	"net/url"

	"github.com/me4war/meshwar-client/internal/models"
)

// CreateBooking books seats on a trip. The caller records the returned
// booking id in the local store to poll status later.
func (c *Client) CreateBooking(ctx context.Context, tripID string, seats int, totalPrice float64) (*models.Booking, error) {
	req := models.CreateBookingRequest{TripID: tripID, SeatsBooked: seats, TotalPrice: totalPrice}
	var booking models.Booking
	if err := c.postJSON(ctx, "/Booking/CreateBooking", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// PendingBookings lists bookings awaiting the driver's decision.
func (c *Client) PendingBookings(ctx context.Context, tripID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.getJSON(ctx, "/Booking/GetPendingBookings/"+tripID, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingByID fetches one booking.
func (c *Client) BookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := c.getJSON(ctx, "/Booking/GetBookingById/"+bookingID, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// AcceptBooking accepts a pending booking as the trip's driver.
func (c *Client) AcceptBooking(ctx context.Context, bookingID string) error {
	body := struct {
		BookingID string `json:"bookingId"`
	}{BookingID: bookingID}
	return c.putJSON(ctx, "/Booking/AcceptBookingRequest", nil, body, nil)
}

// CancelBookingByDriver rejects or cancels a booking as the driver.
func (c *Client) CancelBookingByDriver(ctx context.Context, bookingID, tripID string) error {
	params := url.Values{}
	params.Set("bookingId", bookingID)
	params.Set("tripId", tripID)
	return c.putJSON(ctx, "/Booking/CancelBookingByDriver", params, nil, nil)
}

// BookingStatus fetches the localized status string of a booking.
func (c *Client) BookingStatus(ctx context.Context, bookingID string) (string, error) {
	params := url.Values{}
	params.Set("bookingId", bookingID)
	var status string
	if err := c.getJSON(ctx, "/Booking/GetBookingStatus", params, &status); err != nil {
		return "", err
	}
	return status, nil
}

// CancelBookingAsPassenger cancels the caller's own booking.
func (c *Client) CancelBookingAsPassenger(ctx context.Context, bookingID, passengerID string) error {
	body := struct {
		BookingID   string `json:"bookingId"`
		PassengerID string `json:"passengerId"`
	}{BookingID: bookingID, PassengerID: passengerID}
	return c.putJSON(ctx, "/Booking/CancelBookingAsPassenger", nil, body, nil)
}

// CreateReview submits a rating after a completed trip.
func (c *Client) CreateReview(ctx context.Context, req models.CreateReviewRequest) error {
	return c.postJSON(ctx, "/Review/CreateReview", req, nil)
}
