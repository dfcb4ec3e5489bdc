package wizard

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/me4war/meshwar-client/internal/models"
)

var ErrIncompleteForm = errors.New("form is incomplete")

// TripForm holds every field of the trip-creation wizard. Steps validate
// disjoint subsets; no field depends on another step's data.
type TripForm struct {
	StartCity         string    `validate:"required"`
	DestinationCity   string    `validate:"required"`
	DepartureDateTime time.Time `validate:"required"`
	SeatsAvailable    int       `validate:"required,min=1"`
	Price             float64   `validate:"required,min=1"`
	CarID             string    `validate:"required"`
	Notes             string
	AutoAcceptBooking bool

	Pickup  *models.Location
	Dropoff *models.Location
}

// TripWizard is the three-step trip creation flow: route, timing and
// pricing, final review.
type TripWizard struct {
	Form     TripForm
	stepper  *Stepper
	validate *validator.Validate
}

// NewTripWizard starts a trip-creation wizard with auto-accept enabled, the
// web client's default.
func NewTripWizard() *TripWizard {
	w := &TripWizard{
		Form:     TripForm{SeatsAvailable: 1, AutoAcceptBooking: true},
		validate: validator.New(),
	}
	w.stepper = NewStepper(
		Step{
			Title:  "تفاصيل الرحلة",
			Fields: []string{"StartCity", "DestinationCity"},
			Validate: func() error {
				return w.validate.StructPartial(w.Form, "StartCity", "DestinationCity")
			},
		},
		Step{
			Title:  "التوقيت والسعر",
			Fields: []string{"DepartureDateTime", "SeatsAvailable", "Price", "CarID"},
			Validate: func() error {
				return w.validate.StructPartial(w.Form, "DepartureDateTime", "SeatsAvailable", "Price", "CarID")
			},
		},
		Step{
			Title:  "المراجعة النهائية",
			Fields: nil,
			Validate: func() error {
				return w.validate.Struct(w.Form)
			},
		},
	)
	return w
}

// Stepper exposes the step navigation.
func (w *TripWizard) Stepper() *Stepper { return w.stepper }

// TotalPrice is the review-step summary value.
func (w *TripWizard) TotalPrice() float64 {
	return float64(w.Form.SeatsAvailable) * w.Form.Price
}

// BuildRequest assembles the CreateTrip payload. It refuses while any step is
// invalid, marking all fields touched; no network call is made.
func (w *TripWizard) BuildRequest() (*models.CreateTripRequest, error) {
	if !w.stepper.Submittable() {
		w.stepper.TouchAll()
		return nil, ErrIncompleteForm
	}

	req := &models.CreateTripRequest{
		DepartureCity:     w.Form.StartCity,
		DestinationCity:   w.Form.DestinationCity,
		DepartureTime:     w.Form.DepartureDateTime.UTC().Format(time.RFC3339),
		SeatsAvailable:    w.Form.SeatsAvailable,
		Price:             w.Form.Price,
		Notes:             w.Form.Notes,
		AutoAcceptBooking: w.Form.AutoAcceptBooking,
		CarID:             w.Form.CarID,
	}
	if w.Form.Pickup != nil {
		req.DepartureLatitude = w.Form.Pickup.Lat
		req.DepartureLongitude = w.Form.Pickup.Lng
	}
	if w.Form.Dropoff != nil {
		req.DestinationLatitude = w.Form.Dropoff.Lat
		req.DestinationLongitude = w.Form.Dropoff.Lng
	}
	return req, nil
}

// AddNote appends a preset note, separating from any existing text.
func (w *TripWizard) AddNote(note string) {
	if w.Form.Notes == "" {
		w.Form.Notes = note
		return
	}
	w.Form.Notes = w.Form.Notes + ". " + note
}
