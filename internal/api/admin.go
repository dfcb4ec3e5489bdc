package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/me4war/meshwar-client/internal/models"
)

func adminPageParams(page, pageSize int) url.Values {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	return params
}

// AdminPassengers lists passengers, optionally filtered by a search term.
func (c *Client) AdminPassengers(ctx context.Context, page, pageSize int, search string) ([]models.AdminUserRow, error) {
	params := adminPageParams(page, pageSize)
	if strings.TrimSpace(search) != "" {
		params.Set("search", search)
	}
	var rows []models.AdminUserRow
	if err := c.getJSON(ctx, "/Admin/GetAllPassengers", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// AdminDrivers lists drivers.
func (c *Client) AdminDrivers(ctx context.Context, page, pageSize int) ([]models.AdminUserRow, error) {
	var rows []models.AdminUserRow
	if err := c.getJSON(ctx, "/Admin/GetAllDrivers", adminPageParams(page, pageSize), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// AdminDriverDetails fetches one driver's profile, vehicle and documents.
func (c *Client) AdminDriverDetails(ctx context.Context, driverID string) (*models.AdminDriverDetails, error) {
	params := url.Values{}
	params.Set("DriverId", driverID)
	var details models.AdminDriverDetails
	if err := c.getJSON(ctx, "/Admin/GetDriverDetailsById", params, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// AdminVerifyDriver approves a driver's verification request.
func (c *Client) AdminVerifyDriver(ctx context.Context, driverID string) error {
	params := url.Values{}
	params.Set("Id", driverID)
	return c.putJSON(ctx, "/Admin/VerifyDriverById", params, nil, nil)
}

// AdminVerifyDocument approves a single uploaded document.
func (c *Client) AdminVerifyDocument(ctx context.Context, documentID string) error {
	params := url.Values{}
	params.Set("Id", documentID)
	return c.putJSON(ctx, "/Admin/VerifyDocumentById", params, nil, nil)
}
