package api

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/me4war/meshwar-client/internal/models"
)

// TripFilter narrows the GetAllTrips listing. Zero values are omitted.
type TripFilter struct {
	Page            int
	PageSize        int
	DepartureCity   string
	DestinationCity string
	DepartureDate   time.Time
	DriverGender    string
	Status          *models.TripStatus
}

// SearchTrips lists trips matching the filter.
func (c *Client) SearchTrips(ctx context.Context, filter TripFilter) ([]models.TripCard, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	params := url.Values{}
	params.Set("PageNumber", strconv.Itoa(filter.Page))
	params.Set("PageSize", strconv.Itoa(filter.PageSize))
	if filter.DepartureCity != "" {
		params.Set("DepartureCity", filter.DepartureCity)
	}
	if filter.DestinationCity != "" {
		params.Set("DestinationCity", filter.DestinationCity)
	}
	if !filter.DepartureDate.IsZero() {
		params.Set("DepartureDate", filter.DepartureDate.Format("2006-01-02"))
	}
	if filter.DriverGender != "" {
		params.Set("DriverGender", filter.DriverGender)
	}
	if filter.Status != nil {
		params.Set("TripStatus", strconv.Itoa(int(*filter.Status)))
	}

	var trips []models.TripCard
	if err := c.getJSON(ctx, "/Trip/GetAllTrips", params, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// CreateTrip creates a driver trip and returns the created aggregate.
func (c *Client) CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error) {
	var trip models.Trip
	if err := c.postJSON(ctx, "/Trip/CreateTrip", req, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// TripByID fetches the full trip aggregate.
func (c *Client) TripByID(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	if err := c.getJSON(ctx, "/Trip/GetTripById/"+tripID, nil, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

type tripIDBody struct {
	TripID string `json:"tripId"`
}

// StartTrip transitions a scheduled trip to in-progress.
func (c *Client) StartTrip(ctx context.Context, tripID string) error {
	return c.putJSON(ctx, "/Trip/StartTrip/"+tripID, nil, tripIDBody{TripID: tripID}, nil)
}

// CompleteTrip transitions an in-progress trip to completed.
func (c *Client) CompleteTrip(ctx context.Context, tripID string) error {
	return c.putJSON(ctx, "/Trip/CompleteTrip/"+tripID, nil, tripIDBody{TripID: tripID}, nil)
}

// UpdateTripSeats changes the number of available seats.
func (c *Client) UpdateTripSeats(ctx context.Context, tripID string, seatsAvailable int) error {
	body := struct {
		TripID         string `json:"tripId"`
		SeatsAvailable int    `json:"seatsAvailable"`
	}{TripID: tripID, SeatsAvailable: seatsAvailable}
	return c.putJSON(ctx, "/Trip/UpdateTrip/"+tripID, nil, body, nil)
}

// CancelTrip cancels a trip as its driver.
func (c *Client) CancelTrip(ctx context.Context, tripID string) error {
	return c.putJSON(ctx, "/Trip/CancelTrip", nil, tripIDBody{TripID: tripID}, nil)
}

// TripAggregate is a trip plus the dependent collections that must be
// resynchronized after every status transition.
type TripAggregate struct {
	Trip            *models.Trip
	PendingBookings []models.Booking
}

// RefreshTrip re-fetches the trip and its pending bookings from the server
// rather than trusting local optimistic mutation. A pending-bookings failure
// degrades to an empty list so the trip itself still surfaces.
func (c *Client) RefreshTrip(ctx context.Context, tripID string) (*TripAggregate, error) {
	trip, err := c.TripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	pending, err := c.PendingBookings(ctx, tripID)
	if err != nil {
		pending = nil
	}
	return &TripAggregate{Trip: trip, PendingBookings: pending}, nil
}
