package api

import (
	"context"
	"strings"

	"github.com/me4war/meshwar-client/internal/models"
)

// CreateSuggestion publishes a passenger-authored desired route.
func (c *Client) CreateSuggestion(ctx context.Context, req models.CreateTripSuggestionRequest) (*models.TripSuggestion, error) {
	var suggestion models.TripSuggestion
	if err := c.postJSON(ctx, "/TripSuggestion/CreateTripSuggestion", req, &suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// EditSuggestion updates an existing suggestion, classifications included.
func (c *Client) EditSuggestion(ctx context.Context, suggestion models.TripSuggestion) error {
	return c.putJSON(ctx, "/TripSuggestion/EditTripSuggestion", nil, suggestion, nil)
}

// DeleteSuggestion removes a suggestion.
func (c *Client) DeleteSuggestion(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/TripSuggestion/DeleteTripSuggestion/"+id, nil, "", nil, nil)
}

// SuggestionByID fetches one suggestion.
func (c *Client) SuggestionByID(ctx context.Context, id string) (*models.TripSuggestion, error) {
	var suggestion models.TripSuggestion
	if err := c.getJSON(ctx, "/TripSuggestion/GetTripSuggestionById/"+id, nil, &suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// AllSuggestions lists every published suggestion.
func (c *Client) AllSuggestions(ctx context.Context) ([]models.TripSuggestion, error) {
	var suggestions []models.TripSuggestion
	if err := c.getJSON(ctx, "/TripSuggestion/GetAllTripSuggestions", nil, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// MySuggestions lists the suggestions owned by username. Ownership is
// decided client-side by a case-insensitive username match; the server does
// not filter this listing.
func (c *Client) MySuggestions(ctx context.Context, username string) ([]models.TripSuggestion, error) {
	all, err := c.AllSuggestions(ctx)
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, nil
	}
	var mine []models.TripSuggestion
	for _, s := range all {
		if strings.EqualFold(s.UserName, username) {
			mine = append(mine, s)
		}
	}
	return mine, nil
}
