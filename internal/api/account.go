package api

import (
	"context"
	"strconv"

	"github.com/me4war/meshwar-client/internal/models"
)

// Login authenticates against POST /Account/Login and returns the token
// payload. A server-side rejection comes back as *APIError.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var result models.LoginResult
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.postJSON(ctx, "/Account/Login", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterUser creates a passenger account via the RegisterUser multipart form.
func (c *Client) RegisterUser(ctx context.Context, req models.RegisterRequest) error {
	form := NewForm().
		Field("Name", req.Name).
		Field("Email", req.Email).
		Field("Password", req.Password).
		Field("PhoneNumber", req.PhoneNumber).
		Field("Gender", strconv.Itoa(int(req.Gender)))
	return c.sendForm(ctx, "POST", "/Account/RegisterUser", form, nil)
}

// RegisterDriver submits the assembled driver-verification form in a single
// call to POST /Account/RegisterDriver.
func (c *Client) RegisterDriver(ctx context.Context, form *Form) error {
	return c.sendForm(ctx, "POST", "/Account/RegisterDriver", form, nil)
}

// DriverVerifyStatus fetches the caller's verification status. The endpoint
// path keeps the server's historical spelling.
func (c *Client) DriverVerifyStatus(ctx context.Context) (*models.DriverVerifyStatus, error) {
	var status models.DriverVerifyStatus
	if err := c.getJSON(ctx, "/Driver/GetDriverVerifiyStatus", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
