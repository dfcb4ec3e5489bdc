package store

import "strconv"

// Fixed keys mirroring the web client's localStorage entries.
const (
	KeyToken          = "token"
	KeyVerifiedDriver = "isVerifiedDriver"
)

// BookingKey builds the composite key that records which booking id belongs
// to a trip, so a passenger can re-check booking status after a restart.
func BookingKey(tripID string) string {
	return "booking:" + tripID
}

// RatedKey builds the composite key marking that a user already rated a trip.
func RatedKey(userID, tripID string) string {
	return "rated:" + userID + ":" + tripID
}

// Local wraps a Store with the typed accessors the rest of the client uses.
type Local struct {
	KV Store
}

// NewLocal wraps kv.
func NewLocal(kv Store) *Local {
	return &Local{KV: kv}
}

// Token returns the persisted bearer token.
func (l *Local) Token() (string, bool) {
	return l.KV.Get(KeyToken)
}

// SetToken persists the bearer token.
func (l *Local) SetToken(token string) error {
	return l.KV.Set(KeyToken, token)
}

// VerifiedDriver returns the persisted verified-driver flag.
func (l *Local) VerifiedDriver() bool {
	v, ok := l.KV.Get(KeyVerifiedDriver)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// SetVerifiedDriver persists the verified-driver flag.
func (l *Local) SetVerifiedDriver(verified bool) error {
	return l.KV.Set(KeyVerifiedDriver, strconv.FormatBool(verified))
}

// ClearSession removes the token and the verified-driver flag.
func (l *Local) ClearSession() {
	_ = l.KV.Delete(KeyToken)
	_ = l.KV.Delete(KeyVerifiedDriver)
}

// BookingID returns the recorded booking id for a trip, if any.
func (l *Local) BookingID(tripID string) (string, bool) {
	return l.KV.Get(BookingKey(tripID))
}

// RememberBooking records the booking id created for a trip.
func (l *Local) RememberBooking(tripID, bookingID string) error {
	return l.KV.Set(BookingKey(tripID), bookingID)
}

// ForgetBooking drops the recorded booking id for a trip.
func (l *Local) ForgetBooking(tripID string) error {
	return l.KV.Delete(BookingKey(tripID))
}

// MarkRated records that userID rated tripID.
func (l *Local) MarkRated(userID, tripID string) error {
	return l.KV.Set(RatedKey(userID, tripID), "true")
}

// HasRated reports whether userID already rated tripID.
func (l *Local) HasRated(userID, tripID string) bool {
	_, ok := l.KV.Get(RatedKey(userID, tripID))
	return ok
}
