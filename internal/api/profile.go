package api

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/me4war/meshwar-client/internal/models"
)

func pageParams(page, size int) url.Values {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))
	return params
}

// DriverProfile fetches the caller's driver profile.
func (c *Client) DriverProfile(ctx context.Context) (*models.DriverProfile, error) {
	var profile models.DriverProfile
	if err := c.getJSON(ctx, "/Driver/GetDriverProfile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DriverCurrentTrips lists the caller's scheduled and running trips.
func (c *Client) DriverCurrentTrips(ctx context.Context, page, size int) ([]models.TripCard, error) {
	var trips []models.TripCard
	if err := c.getJSON(ctx, "/Driver/GetDriverCurrentTrips", pageParams(page, size), &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// DriverHistoryTrips lists the caller's finished trips.
func (c *Client) DriverHistoryTrips(ctx context.Context, page, size int) ([]models.TripCard, error) {
	var trips []models.TripCard
	if err := c.getJSON(ctx, "/Driver/GetDriverHistoryTrips", pageParams(page, size), &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// DriverVerificationDocuments lists the caller's uploaded documents.
func (c *Client) DriverVerificationDocuments(ctx context.Context) ([]models.VerificationDocument, error) {
	var docs []models.VerificationDocument
	if err := c.getJSON(ctx, "/Driver/GetDriverVerificationDocuments", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// DriverVehicleDetails fetches the caller's registered vehicle.
func (c *Client) DriverVehicleDetails(ctx context.Context) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.getJSON(ctx, "/Driver/GetDriverVehicleDetails", nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// EditDriverProfileRequest carries the editable driver profile fields.
type EditDriverProfileRequest struct {
	DriverName   string
	PhoneNumber  string
	Description  string
	ProfileImage *models.File
}

// EditDriverProfile updates the caller's driver profile.
func (c *Client) EditDriverProfile(ctx context.Context, req EditDriverProfileRequest) error {
	form := NewForm().
		Field("DriverName", req.DriverName).
		Field("PhoneNumber", req.PhoneNumber).
		Field("Description", req.Description)
	if req.ProfileImage != nil {
		form.File("ProfileImage", *req.ProfileImage)
	}
	return c.sendForm(ctx, "PUT", "/Driver/EditDriverProfile", form, nil)
}

// UpdateVehicleRequest carries the editable vehicle fields.
type UpdateVehicleRequest struct {
	ID          string
	DriverID    string
	Model       string
	Color       string
	PlateNumber string
	SeatsNumber int
	Description string
	Images      []models.File
}

// UpdateVehicleDetails updates the caller's vehicle.
func (c *Client) UpdateVehicleDetails(ctx context.Context, req UpdateVehicleRequest) error {
	form := NewForm().
		Field("Id", req.ID).
		Field("DriverId", req.DriverID).
		Field("Model", req.Model).
		Field("Color", req.Color).
		Field("PlateNumber", req.PlateNumber).
		Field("SeatsNumber", strconv.Itoa(req.SeatsNumber)).
		Field("Description", req.Description).
		Files("VehicleImageUrls", req.Images)
	return c.sendForm(ctx, "PUT", "/Driver/UpdateVehicleDetails", form, nil)
}

// PassengerProfile fetches the caller's passenger profile.
func (c *Client) PassengerProfile(ctx context.Context) (*models.PassengerProfile, error) {
	var profile models.PassengerProfile
	if err := c.getJSON(ctx, "/Passenger/GetPassengerProfile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// PassengerCurrentTrips lists the caller's upcoming and running trips.
func (c *Client) PassengerCurrentTrips(ctx context.Context, page, size int) ([]models.TripCard, error) {
	var trips []models.TripCard
	if err := c.getJSON(ctx, "/Passenger/GetPassengerCurrentTrips", pageParams(page, size), &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// PassengerHistoryTrips lists the caller's finished trips.
func (c *Client) PassengerHistoryTrips(ctx context.Context, page, size int) ([]models.TripCard, error) {
	var trips []models.TripCard
	if err := c.getJSON(ctx, "/Passenger/GetPassengerHistoryTrips", pageParams(page, size), &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// UpdatePassengerProfileRequest carries the editable passenger fields.
type UpdatePassengerProfileRequest struct {
	Name         string
	PhoneNumber  string
	ProfileImage *models.File
}

// UpdatePassengerProfile updates the caller's passenger profile.
func (c *Client) UpdatePassengerProfile(ctx context.Context, req UpdatePassengerProfileRequest) error {
	form := NewForm().
		Field("Name", req.Name).
		Field("PhoneNumber", req.PhoneNumber)
	if req.ProfileImage != nil {
		form.File("ProfileImage", *req.ProfileImage)
	}
	return c.sendForm(ctx, "PUT", "/Passenger/UpdatePassengerProfile", form, nil)
}

// DriverOverview joins the five sub-requests that populate a driver's full
// profile view. Sub-request failures substitute neutral defaults so one
// failing call does not abort the whole view; only the profile itself is
// mandatory.
type DriverOverview struct {
	Profile      *models.DriverProfile
	CurrentTrips []models.TripCard
	HistoryTrips []models.TripCard
	Documents    []models.VerificationDocument
	Vehicle      *models.Vehicle
}

// DriverOverview fetches the aggregate concurrently and returns once all
// sub-requests have settled.
func (c *Client) DriverOverview(ctx context.Context) (*DriverOverview, error) {
	var (
		wg       sync.WaitGroup
		overview DriverOverview
		profErr  error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		overview.Profile, profErr = c.DriverProfile(ctx)
	}()
	go func() {
		defer wg.Done()
		trips, err := c.DriverCurrentTrips(ctx, 1, 10)
		if err != nil {
			log.WithError(err).Debug("driver current trips unavailable")
			return
		}
		overview.CurrentTrips = trips
	}()
	go func() {
		defer wg.Done()
		trips, err := c.DriverHistoryTrips(ctx, 1, 10)
		if err != nil {
			log.WithError(err).Debug("driver history trips unavailable")
			return
		}
		overview.HistoryTrips = trips
	}()
	go func() {
		defer wg.Done()
		docs, err := c.DriverVerificationDocuments(ctx)
		if err != nil {
			log.WithError(err).Debug("driver documents unavailable")
			return
		}
		overview.Documents = docs
	}()
	go func() {
		defer wg.Done()
		vehicle, err := c.DriverVehicleDetails(ctx)
		if err != nil {
			log.WithError(err).Debug("driver vehicle unavailable")
			return
		}
		overview.Vehicle = vehicle
	}()
	wg.Wait()

	if profErr != nil {
		return nil, profErr
	}
	c.absolutizeDriverOverview(&overview)
	return &overview, nil
}

func (c *Client) absolutizeDriverOverview(o *DriverOverview) {
	if o.Profile != nil && o.Profile.DriverImageURL != "" {
		o.Profile.DriverImageURL = c.ToAbsoluteURL(o.Profile.DriverImageURL)
	}
	if o.Vehicle != nil {
		for i, u := range o.Vehicle.ImageURLs {
			o.Vehicle.ImageURLs[i] = c.ToAbsoluteURL(u)
		}
	}
}

// PassengerOverview joins the three sub-requests of a passenger profile view.
type PassengerOverview struct {
	Profile      *models.PassengerProfile
	CurrentTrips []models.TripCard
	HistoryTrips []models.TripCard
}

// PassengerOverview fetches the aggregate concurrently; trip-list failures
// degrade to empty lists.
func (c *Client) PassengerOverview(ctx context.Context) (*PassengerOverview, error) {
	var (
		wg       sync.WaitGroup
		overview PassengerOverview
		profErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		overview.Profile, profErr = c.PassengerProfile(ctx)
	}()
	go func() {
		defer wg.Done()
		trips, err := c.PassengerCurrentTrips(ctx, 1, 10)
		if err != nil {
			log.WithError(err).Debug("passenger current trips unavailable")
			return
		}
		overview.CurrentTrips = trips
	}()
	go func() {
		defer wg.Done()
		trips, err := c.PassengerHistoryTrips(ctx, 1, 10)
		if err != nil {
			log.WithError(err).Debug("passenger history trips unavailable")
			return
		}
		overview.HistoryTrips = trips
	}()
	wg.Wait()

	if profErr != nil {
		return nil, profErr
	}
	if overview.Profile != nil && overview.Profile.ProfileImageURL != "" {
		overview.Profile.ProfileImageURL = c.ToAbsoluteURL(overview.Profile.ProfileImageURL)
	}
	return &overview, nil
}
