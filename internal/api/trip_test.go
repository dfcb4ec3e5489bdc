package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/me4war/meshwar-client/internal/models"
)

func TestClient_SearchTripsParams(t *testing.T) {
	status := models.TripScheduled
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Trip/GetAllTrips", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("PageNumber"))
		assert.Equal(t, "5", q.Get("PageSize"))
		assert.Equal(t, "القاهرة", q.Get("DepartureCity"))
		assert.Equal(t, "أسوان", q.Get("DestinationCity"))
		assert.Equal(t, "2026-09-15", q.Get("DepartureDate"))
		assert.Equal(t, "female", q.Get("DriverGender"))
		assert.Equal(t, "1", q.Get("TripStatus"))
		fmt.Fprint(w, `{"status":200,"data":[{"tripId":"t1","departureCity":"القاهرة"}]}`)
	})

	trips, err := client.SearchTrips(context.Background(), TripFilter{
		Page:            2,
		PageSize:        5,
		DepartureCity:   "القاهرة",
		DestinationCity: "أسوان",
		DepartureDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DriverGender:    "female",
		Status:          &status,
	})
	assert.NoError(t, err)
	assert.Len(t, trips, 1)
	assert.Equal(t, "t1", trips[0].TripID)
}

func TestClient_SearchTripsDefaults(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("PageNumber"))
		assert.Equal(t, "10", q.Get("PageSize"))
		// Zero-valued filters are omitted entirely
		assert.False(t, q.Has("DepartureCity"))
		assert.False(t, q.Has("DepartureDate"))
		assert.False(t, q.Has("TripStatus"))
		fmt.Fprint(w, `{"status":200,"data":[]}`)
	})

	_, err := client.SearchTrips(context.Background(), TripFilter{})
	assert.NoError(t, err)
}

func TestClient_TripTransitions(t *testing.T) {
	var gotPath, gotMethod string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		fmt.Fprint(w, `{"status":200}`)
	})

	assert.NoError(t, client.StartTrip(context.Background(), "t1"))
	assert.Equal(t, "/Trip/StartTrip/t1", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)

	assert.NoError(t, client.CompleteTrip(context.Background(), "t1"))
	assert.Equal(t, "/Trip/CompleteTrip/t1", gotPath)

	assert.NoError(t, client.CancelTrip(context.Background(), "t1"))
	assert.Equal(t, "/Trip/CancelTrip", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
}

func TestClient_RefreshTrip(t *testing.T) {
	t.Run("joins trip and pending bookings", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/Trip/GetTripById/t1":
				fmt.Fprint(w, `{"status":200,"data":{"id":"t1","tripStatus":1,"seatsAvailable":2}}`)
			case "/Booking/GetPendingBookings/t1":
				fmt.Fprint(w, `{"status":200,"data":[{"id":"b1","tripId":"t1","status":"pending"}]}`)
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		})

		agg, err := client.RefreshTrip(context.Background(), "t1")
		assert.NoError(t, err)
		assert.Equal(t, "t1", agg.Trip.ID)
		assert.Equal(t, models.TripScheduled, agg.Trip.Status)
		assert.Len(t, agg.PendingBookings, 1)
	})

	t.Run("pending failure degrades to empty", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/Trip/GetTripById/t1":
				fmt.Fprint(w, `{"status":200,"data":{"id":"t1","tripStatus":2}}`)
			default:
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprint(w, `{"status":403,"message":"not the driver"}`)
			}
		})

		agg, err := client.RefreshTrip(context.Background(), "t1")
		assert.NoError(t, err)
		assert.NotNil(t, agg.Trip)
		assert.Empty(t, agg.PendingBookings)
	})

	t.Run("trip failure aborts", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status":404,"message":"لم يتم العثور على الرحلة"}`)
		})

		agg, err := client.RefreshTrip(context.Background(), "missing")
		assert.Error(t, err)
		assert.Nil(t, agg)
	})
}

func TestClient_BookingCalls(t *testing.T) {
	t.Run("cancel by driver uses query params", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Booking/CancelBookingByDriver", r.URL.Path)
			assert.Equal(t, "b1", r.URL.Query().Get("bookingId"))
			assert.Equal(t, "t1", r.URL.Query().Get("tripId"))
			fmt.Fprint(w, `{"status":200}`)
		})
		assert.NoError(t, client.CancelBookingByDriver(context.Background(), "b1", "t1"))
	})

	t.Run("booking status decodes a bare string", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "b1", r.URL.Query().Get("bookingId"))
			fmt.Fprint(w, `{"status":200,"data":"confirmed"}`)
		})
		status, err := client.BookingStatus(context.Background(), "b1")
		assert.NoError(t, err)
		assert.Equal(t, models.BookingConfirmed, status)
	})
}
