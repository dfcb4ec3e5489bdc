// Package geocode resolves free-text addresses and map coordinates through
// the public Nominatim endpoints. Everything here is best-effort: the
// surrounding forms must never block or fail on a geocoding problem.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// unknownPlace is the localized fallback for missing city/country fields.
const unknownPlace = "غير محدد"

// Result is one resolved location.
type Result struct {
	DisplayName string
	Lat         float64
	Lng         float64
	City        string
	Country     string
}

// Client queries a Nominatim-compatible service.
type Client struct {
	baseURL string
	lang    string
	http    *http.Client
}

// New creates a geocoding client. lang is the accept-language hint sent with
// every query.
func New(baseURL, lang string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		lang:    lang,
		http:    &http.Client{Timeout: timeout},
	}
}

type nominatimAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Country string `json:"country"`
}

func (a nominatimAddress) city() string {
	switch {
	case a.City != "":
		return a.City
	case a.Town != "":
		return a.Town
	case a.Village != "":
		return a.Village
	default:
		return unknownPlace
	}
}

func (a nominatimAddress) country() string {
	if a.Country != "" {
		return a.Country
	}
	return unknownPlace
}

type nominatimPlace struct {
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	DisplayName string           `json:"display_name"`
	Address     nominatimAddress `json:"address"`
}

// Search forward-geocodes free text and returns the best match, or nil when
// nothing matched.
func (c *Client) Search(ctx context.Context, query string) (*Result, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")
	params.Set("accept-language", c.lang)

	var places []nominatimPlace
	if err := c.get(ctx, "/search", params, &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, nil
	}

	place := places[0]
	lat, _ := strconv.ParseFloat(place.Lat, 64)
	lng, _ := strconv.ParseFloat(place.Lon, 64)
	return &Result{
		DisplayName: place.DisplayName,
		Lat:         lat,
		Lng:         lng,
		City:        place.Address.city(),
		Country:     place.Address.country(),
	}, nil
}

// Reverse resolves a coordinate to a display address. Any failure yields the
// raw coordinate pair instead of an error.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) string {
	result, err := c.ReverseFull(ctx, lat, lng)
	if err != nil || result.DisplayName == "" {
		return CoordinateLabel(lat, lng)
	}
	return result.DisplayName
}

// ReverseFull is Reverse with the structured address attached. On failure the
// result still carries the coordinate-pair display name.
func (c *Client) ReverseFull(ctx context.Context, lat, lng float64) (Result, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lng))
	params.Set("accept-language", c.lang)

	fallback := Result{
		DisplayName: CoordinateLabel(lat, lng),
		Lat:         lat,
		Lng:         lng,
		City:        unknownPlace,
		Country:     unknownPlace,
	}

	var place nominatimPlace
	if err := c.get(ctx, "/reverse", params, &place); err != nil {
		log.WithError(err).Debug("reverse geocoding failed")
		return fallback, err
	}
	if place.DisplayName == "" {
		return fallback, nil
	}
	return Result{
		DisplayName: place.DisplayName,
		Lat:         lat,
		Lng:         lng,
		City:        place.Address.city(),
		Country:     place.Address.country(),
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding service returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	return nil
}

// CoordinateLabel renders the raw coordinate pair used as a fallback display
// string.
func CoordinateLabel(lat, lng float64) string {
	return formatCoord(lat) + ", " + formatCoord(lng)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
