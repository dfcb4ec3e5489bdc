package wizard

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/me4war/meshwar-client/internal/api"
)

var ErrUnknownUser = errors.New("current user id is required")

// VehicleForm holds the scalar vehicle fields of step 5.
type VehicleForm struct {
	Make        string `validate:"required"`
	Model       string `validate:"required"`
	Color       string `validate:"required"`
	Seats       int    `validate:"required,min=1"`
	PlateNumber string `validate:"required"`
	Description string
}

// VerifyWizard is the six-step driver-verification flow: driving license,
// vehicle registration, identity document, vehicle photos, vehicle details,
// final review. Submission is one multipart request.
type VerifyWizard struct {
	License       *FileField
	CarLicense    *FileField
	DriverID      *FileField
	VehicleImages *FileField
	Vehicle       VehicleForm

	stepper  *Stepper
	validate *validator.Validate
}

// NewVerifyWizard starts the verification wizard at step 1.
func NewVerifyWizard() *VerifyWizard {
	w := &VerifyWizard{
		License:       NewFileField(),
		CarLicense:    NewFileField(),
		DriverID:      NewFileField(),
		VehicleImages: NewFileField(),
		validate:      validator.New(),
	}
	w.stepper = NewStepper(
		Step{
			Title:    "رخصة القيادة",
			Fields:   []string{"licenseFile"},
			Validate: w.License.Require,
		},
		Step{
			Title:    "رخصة السيارة",
			Fields:   []string{"carLicenseFile"},
			Validate: w.CarLicense.Require,
		},
		Step{
			Title:    "هوية السائق",
			Fields:   []string{"driverIdFile"},
			Validate: w.DriverID.Require,
		},
		Step{
			Title:    "صور المركبة",
			Fields:   []string{"vehicleImages"},
			Validate: w.VehicleImages.Require,
		},
		Step{
			Title:  "بيانات المركبة",
			Fields: []string{"vehicleMake", "vehicleModel", "vehicleColor", "vehicleSeats", "plateNumber"},
			Validate: func() error {
				return w.validate.Struct(w.Vehicle)
			},
		},
		Step{
			Title: "المراجعة النهائية",
		},
	)
	return w
}

// Stepper exposes the step navigation.
func (w *VerifyWizard) Stepper() *Stepper { return w.stepper }

// BuildForm assembles the single multipart payload for RegisterDriver. The
// field names mirror the backend command object property paths. It refuses
// while any step is invalid or the user id is unknown.
func (w *VerifyWizard) BuildForm(userID string) (*api.Form, error) {
	if !w.stepper.Submittable() {
		w.stepper.TouchAll()
		return nil, ErrIncompleteForm
	}
	if userID == "" {
		return nil, ErrUnknownUser
	}

	form := api.NewForm().
		Field("ApplicationUserId", userID).
		Field("DriverDescription", w.Vehicle.Description).
		Field("VehicleDetailsCommand.DriverId", userID).
		Field("VehicleDetailsCommand.Model", w.Vehicle.Model).
		Field("VehicleDetailsCommand.Color", w.Vehicle.Color).
		Field("VehicleDetailsCommand.PlateNumber", w.Vehicle.PlateNumber).
		Field("VehicleDetailsCommand.SeatsNumber", strconv.Itoa(w.Vehicle.Seats)).
		Field("VehicleDetailsCommand.Description", w.Vehicle.Description).
		Files("VehicleDetailsCommand.VehicleImageUrls", w.VehicleImages.Files()).
		Field("AddVerificationDocuments.Comment", w.Vehicle.Description).
		Files("AddVerificationDocuments.DriverLicense", w.License.Files()).
		Files("AddVerificationDocuments.Identity", w.DriverID.Files()).
		Files("AddVerificationDocuments.VehicleRegistration", w.CarLicense.Files())
	return form, nil
}
