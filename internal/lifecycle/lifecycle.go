// Package lifecycle decides which trip actions the current viewer may take.
// The server owns the transitions; these gates only keep the client from
// issuing calls the server would reject.
package lifecycle

import (
	"strings"

	"github.com/me4war/meshwar-client/internal/models"
)

// Role is the viewer's relationship to a trip.
type Role struct {
	IsDriver             bool
	IsConfirmedPassenger bool
	HasRecordedBooking   bool
}

// Actions enumerates what the viewer may currently do with a trip.
type Actions struct {
	Start         bool
	Complete      bool
	Cancel        bool
	CancelBooking bool
	EditSeats     bool
	Book          bool
	Rate          bool
}

// IsDriver reports whether userID drives the trip. Ids are matched
// case-insensitively, as the server mixes id casings across endpoints.
func IsDriver(trip *models.Trip, userID string) bool {
	return userID != "" && strings.EqualFold(trip.DriverID, userID)
}

// IsConfirmedPassenger reports whether userID holds a confirmed seat.
func IsConfirmedPassenger(trip *models.Trip, userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range trip.ConfirmedPassengerIDs {
		if strings.EqualFold(id, userID) {
			return true
		}
	}
	return false
}

// RoleFor derives the viewer's role. recordedBookingID is the booking id the
// local store remembers for this trip, "" when none.
func RoleFor(trip *models.Trip, userID, recordedBookingID string) Role {
	return Role{
		IsDriver:             IsDriver(trip, userID),
		IsConfirmedPassenger: IsConfirmedPassenger(trip, userID),
		HasRecordedBooking:   recordedBookingID != "",
	}
}

// Evaluate computes the permitted actions for a viewer. After any action that
// mutates the trip the caller must re-fetch the aggregate; dependent
// collections (pending bookings, confirmed passengers) are not mirrored
// locally.
func Evaluate(trip *models.Trip, userID, recordedBookingID string) Actions {
	role := RoleFor(trip, userID, recordedBookingID)
	status := trip.Status

	return Actions{
		Start:         role.IsDriver && status == models.TripScheduled,
		Complete:      role.IsDriver && status == models.TripInProgress,
		Cancel:        role.IsDriver && !status.Terminal(),
		CancelBooking: role.IsConfirmedPassenger && role.HasRecordedBooking && !status.Terminal(),
		EditSeats:     role.IsDriver && status == models.TripScheduled,
		Book: !role.IsDriver &&
			status == models.TripScheduled &&
			trip.SeatsAvailable > 0 &&
			!(role.IsConfirmedPassenger && role.HasRecordedBooking),
		Rate: status == models.TripCompleted && (role.IsDriver || role.IsConfirmedPassenger),
	}
}
