package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_DriverOverview(t *testing.T) {
	t.Run("joins all five sub-requests", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/Driver/GetDriverProfile":
				fmt.Fprint(w, `{"status":200,"data":{"id":"d1","driverName":"Khaled","driverImageUrl":"/uploads/k.png","rating":4.5}}`)
			case "/Driver/GetDriverCurrentTrips":
				assert.Equal(t, "1", r.URL.Query().Get("page"))
				fmt.Fprint(w, `{"status":200,"data":[{"tripId":"t1"}]}`)
			case "/Driver/GetDriverHistoryTrips":
				fmt.Fprint(w, `{"status":200,"data":[{"tripId":"t0"},{"tripId":"t-1"}]}`)
			case "/Driver/GetDriverVerificationDocuments":
				fmt.Fprint(w, `{"status":200,"data":[{"id":"doc1","isVerified":true}]}`)
			case "/Driver/GetDriverVehicleDetails":
				fmt.Fprint(w, `{"status":200,"data":{"id":"v1","model":"Corolla","imageURLs":["cars/v1.png"]}}`)
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		})

		overview, err := client.DriverOverview(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "Khaled", overview.Profile.DriverName)
		assert.Len(t, overview.CurrentTrips, 1)
		assert.Len(t, overview.HistoryTrips, 2)
		assert.Len(t, overview.Documents, 1)
		assert.Equal(t, "Corolla", overview.Vehicle.Model)

		// Relative upload paths come back absolutized
		assert.Equal(t, "http://assets.example.com/uploads/k.png", overview.Profile.DriverImageURL)
		assert.Equal(t, "http://assets.example.com/cars/v1.png", overview.Vehicle.ImageURLs[0])
	})

	t.Run("sub-request failures degrade to neutral defaults", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/Driver/GetDriverProfile" {
				fmt.Fprint(w, `{"status":200,"data":{"id":"d1","driverName":"Khaled"}}`)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"status":500,"message":"boom"}`)
		})

		overview, err := client.DriverOverview(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "Khaled", overview.Profile.DriverName)
		assert.Empty(t, overview.CurrentTrips)
		assert.Empty(t, overview.HistoryTrips)
		assert.Empty(t, overview.Documents)
		assert.Nil(t, overview.Vehicle)
	})

	t.Run("profile failure is fatal", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/Driver/GetDriverProfile" {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"status":401,"message":"unauthorized"}`)
				return
			}
			fmt.Fprint(w, `{"status":200,"data":[]}`)
		})

		overview, err := client.DriverOverview(context.Background())
		assert.Error(t, err)
		assert.Nil(t, overview)
	})
}

func TestClient_PassengerOverview(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Passenger/GetPassengerProfile":
			fmt.Fprint(w, `{"status":200,"data":{"id":"p1","name":"Mona","profileImageUrl":"imgs/m.png"}}`)
		case "/Passenger/GetPassengerCurrentTrips":
			fmt.Fprint(w, `{"status":200,"data":[{"tripId":"t9"}]}`)
		case "/Passenger/GetPassengerHistoryTrips":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"status":500}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	overview, err := client.PassengerOverview(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Mona", overview.Profile.Name)
	assert.Equal(t, "http://assets.example.com/imgs/m.png", overview.Profile.ProfileImageURL)
	assert.Len(t, overview.CurrentTrips, 1)
	assert.Empty(t, overview.HistoryTrips)
}
