package models

// Vehicle holds a driver's registered car details.
type Vehicle struct {
	ID          string   `json:"id"`
	DriverID    string   `json:"driverId"`
	Model       string   `json:"model"`
	Color       string   `json:"color"`
	PlateNumber string   `json:"plateNumber"`
	SeatsNumber int      `json:"seatsNumber"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageURLs"`
}

// VerificationDocument is one uploaded driver document and its review state.
type VerificationDocument struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	IsVerified bool   `json:"isVerified"`
	Comment    string `json:"comment"`
}
