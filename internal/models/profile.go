package models

// DriverProfile is the data payload of GET /Driver/GetDriverProfile.
type DriverProfile struct {
	ID             string  `json:"id"`
	DriverName     string  `json:"driverName"`
	PhoneNumber    string  `json:"phoneNumber"`
	Description    string  `json:"description"`
	DriverImageURL string  `json:"driverImageUrl"`
	Rating         float64 `json:"rating"`
	IsVerified     bool    `json:"isVerified"`
}

// PassengerProfile is the data payload of GET /Passenger/GetPassengerProfile.
type PassengerProfile struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PhoneNumber     string  `json:"phoneNumber"`
	ProfileImageURL string  `json:"profileImageUrl"`
	Rating          float64 `json:"rating"`
}

// AdminUserRow is one row of the admin passenger/driver listings.
type AdminUserRow struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phoneNumber"`
	ProfileImageURL string  `json:"profileImageUrl"`
	Rating          float64 `json:"rating"`
	IsVerified      bool    `json:"isVerified"`
}

// AdminDriverDetails is the payload of GET /Admin/GetDriverDetailsById.
type AdminDriverDetails struct {
	Profile   DriverProfile          `json:"profile"`
	Vehicle   *Vehicle               `json:"vehicle"`
	Documents []VerificationDocument `json:"documents"`
}
