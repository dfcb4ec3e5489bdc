package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/me4war/meshwar-client/internal/models"
	"github.com/me4war/meshwar-client/internal/wizard"
)

// departureLayouts are accepted by the -depart flag, most specific first.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDeparture(raw string) (time.Time, error) {
	for _, layout := range departureLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid -depart %q, want e.g. 2006-01-02 15:04", raw)
}

func (a *app) createTrip(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-trip", flag.ContinueOnError)
	from := fs.String("from", "", "departure city")
	to := fs.String("to", "", "destination city")
	depart := fs.String("depart", "", "departure time")
	seats := fs.Int("seats", 1, "available seats")
	price := fs.Float64("price", 0, "price per seat")
	carID := fs.String("car", "", "car id")
	notes := fs.String("notes", "", "optional notes")
	manualAccept := fs.Bool("manual-accept", false, "review each booking instead of auto-accepting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := wizard.NewTripWizard()
	w.Form.StartCity = *from
	w.Form.DestinationCity = *to
	w.Form.SeatsAvailable = *seats
	w.Form.Price = *price
	w.Form.CarID = *carID
	w.Form.Notes = *notes
	w.Form.AutoAcceptBooking = !*manualAccept
	if *depart != "" {
		parsed, err := parseDeparture(*depart)
		if err != nil {
			return err
		}
		w.Form.DepartureDateTime = parsed
	}

	// Best effort: pin both ends of the route so the trip shows on the map
	if result, err := a.geo.Search(ctx, *from); err == nil && result != nil {
		w.Form.Pickup = &models.Location{Lat: result.Lat, Lng: result.Lng}
	}
	if result, err := a.geo.Search(ctx, *to); err == nil && result != nil {
		w.Form.Dropoff = &models.Location{Lat: result.Lat, Lng: result.Lng}
	}

	req, err := w.BuildRequest()
	if err != nil {
		return fmt.Errorf("%w: missing %s", err, strings.Join(missingTripFields(w), ", "))
	}

	trip, err := a.client.CreateTrip(ctx, *req)
	if err != nil {
		return err
	}
	fmt.Printf("trip %s created: %s -> %s, %d seats at %.2f EGP\n",
		trip.ID, trip.DepartureCity, trip.DestinationCity, trip.SeatsAvailable, trip.Price)
	return nil
}

func missingTripFields(w *wizard.TripWizard) []string {
	var missing []string
	for _, f := range []string{"StartCity", "DestinationCity", "DepartureDateTime", "SeatsAvailable", "Price", "CarID"} {
		if w.Stepper().Touched(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

func readUploads(paths string) ([]models.File, error) {
	if paths == "" {
		return nil, nil
	}
	var files []models.File
	for _, p := range strings.Split(paths, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		files = append(files, models.File{Name: filepath.Base(p), Content: content})
	}
	return files, nil
}

func (a *app) verifyDriver(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify-driver", flag.ContinueOnError)
	license := fs.String("license", "", "driving license image path")
	carLicense := fs.String("car-license", "", "vehicle registration image path")
	identity := fs.String("identity", "", "identity document image path")
	images := fs.String("images", "", "comma-separated vehicle image paths")
	vehicleMake := fs.String("make", "", "vehicle make")
	model := fs.String("model", "", "vehicle model")
	color := fs.String("color", "", "vehicle color")
	seats := fs.Int("seats", 0, "vehicle seat count")
	plate := fs.String("plate", "", "plate number")
	desc := fs.String("desc", "", "vehicle description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := wizard.NewVerifyWizard()
	for field, path := range map[*wizard.FileField]string{
		w.License:    *license,
		w.CarLicense: *carLicense,
		w.DriverID:   *identity,
	} {
		files, err := readUploads(path)
		if err != nil {
			return err
		}
		for _, f := range files {
			field.Add(f)
		}
	}
	vehicleImages, err := readUploads(*images)
	if err != nil {
		return err
	}
	for _, f := range vehicleImages {
		w.VehicleImages.Add(f)
	}
	w.Vehicle = wizard.VehicleForm{
		Make:        *vehicleMake,
		Model:       *model,
		Color:       *color,
		Seats:       *seats,
		PlateNumber: *plate,
		Description: *desc,
	}

	form, err := w.BuildForm(a.session.CurrentUserID())
	if err != nil {
		return err
	}
	if err := a.client.RegisterDriver(ctx, form); err != nil {
		return err
	}
	fmt.Println("verification request submitted, awaiting review")
	return nil
}

func (a *app) suggest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)
	from := fs.String("from", "", "departure address")
	to := fs.String("to", "", "destination address")
	seats := fs.Int("seats", 1, "seats wanted")
	price := fs.Float64("price", 0, "suggested price per seat")
	depart := fs.String("depart", "", "preferred departure time")
	desc := fs.String("desc", "", "description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" || *depart == "" {
		return fmt.Errorf("suggest requires -from, -to and -depart")
	}
	when, err := parseDeparture(*depart)
	if err != nil {
		return err
	}

	departure, err := a.suggestedLocation(ctx, *from)
	if err != nil {
		return err
	}
	destination, err := a.suggestedLocation(ctx, *to)
	if err != nil {
		return err
	}

	suggestion, err := a.client.CreateSuggestion(ctx, models.CreateTripSuggestionRequest{
		Departure:              departure,
		Destination:            destination,
		SeatCount:              *seats,
		SuggestedPrice:         *price,
		PreferredDepartureTime: when.UTC().Format(time.RFC3339),
		Description:            *desc,
	})
	if err != nil {
		return err
	}
	fmt.Printf("suggestion %s published\n", suggestion.ID)
	return nil
}

func (a *app) suggestedLocation(ctx context.Context, address string) (models.SuggestedLocation, error) {
	result, err := a.geo.Search(ctx, address)
	if err != nil {
		return models.SuggestedLocation{}, err
	}
	if result == nil {
		return models.SuggestedLocation{}, fmt.Errorf("address %q could not be resolved", address)
	}
	return models.SuggestedLocation{
		Description: address,
		Address:     result.DisplayName,
		Latitude:    result.Lat,
		Longitude:   result.Lng,
		City:        result.City,
		Country:     result.Country,
	}, nil
}

func (a *app) adminPassengers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin-passengers", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 10, "page size")
	search := fs.String("search", "", "optional name or email filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rows, err := a.client.AdminPassengers(ctx, *page, *size, *search)
	if err != nil {
		return err
	}
	printAdminRows(rows)
	return nil
}

func (a *app) adminDrivers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin-drivers", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 10, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rows, err := a.client.AdminDrivers(ctx, *page, *size)
	if err != nil {
		return err
	}
	printAdminRows(rows)
	return nil
}

func printAdminRows(rows []models.AdminUserRow) {
	if len(rows) == 0 {
		fmt.Println("no results")
		return
	}
	for _, r := range rows {
		verified := ""
		if r.IsVerified {
			verified = "  verified"
		}
		fmt.Printf("%s  %s  %s  %s  %.1f%s\n", r.ID, r.Name, r.Email, r.PhoneNumber, r.Rating, verified)
	}
}

func (a *app) adminDriver(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin-driver", flag.ContinueOnError)
	id := fs.String("id", "", "driver id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("admin-driver requires -id")
	}

	details, err := a.client.AdminDriverDetails(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("driver:  %s (rating %.1f, verified=%t)\n",
		details.Profile.DriverName, details.Profile.Rating, details.Profile.IsVerified)
	if details.Vehicle != nil {
		fmt.Printf("vehicle: %s %s, plate %s, %d seats\n",
			details.Vehicle.Color, details.Vehicle.Model, details.Vehicle.PlateNumber, details.Vehicle.SeatsNumber)
	}
	for _, doc := range details.Documents {
		fmt.Printf("document %s  %s  verified=%t\n", doc.ID, doc.Type, doc.IsVerified)
	}
	return nil
}

func (a *app) adminVerify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin-verify", flag.ContinueOnError)
	driverID := fs.String("driver", "", "driver id to approve")
	documentID := fs.String("document", "", "document id to approve")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *driverID != "":
		if err := a.client.AdminVerifyDriver(ctx, *driverID); err != nil {
			return err
		}
		fmt.Println("driver verified")
	case *documentID != "":
		if err := a.client.AdminVerifyDocument(ctx, *documentID); err != nil {
			return err
		}
		fmt.Println("document verified")
	default:
		return fmt.Errorf("admin-verify requires -driver or -document")
	}
	return nil
}
