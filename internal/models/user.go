package models

// Gender codes used by the registration endpoint.
type Gender int

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

// User is the identity derived from the bearer token claims.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// LoginRequest is the JSON body of POST /Account/Login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the data payload of a successful login response.
type LoginResult struct {
	Token            string `json:"token"`
	IsVerifiedDriver bool   `json:"isVerifiedDriver"`
}

// RegisterRequest carries the fields of the RegisterUser multipart form.
type RegisterRequest struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Gender      Gender
}

// DriverVerifyStatus mirrors the GetDriverVerifiyStatus payload.
type DriverVerifyStatus struct {
	IsVerified bool   `json:"isVerified"`
	Status     string `json:"status"`
}
