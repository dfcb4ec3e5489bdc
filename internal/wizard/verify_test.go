package wizard

import (
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/me4war/meshwar-client/internal/models"
)

func completeVerifyWizard(w *VerifyWizard) {
	w.License.Add(models.File{Name: "license.jpg", Content: []byte("L")})
	w.CarLicense.Add(models.File{Name: "car-license.jpg", Content: []byte("C")})
	w.DriverID.Add(models.File{Name: "id.jpg", Content: []byte("I")})
	w.VehicleImages.Add(models.File{Name: "front.jpg", Content: []byte("F")})
	w.VehicleImages.Add(models.File{Name: "back.jpg", Content: []byte("B")})
	w.Vehicle = VehicleForm{
		Make:        "Toyota",
		Model:       "Corolla",
		Color:       "white",
		Seats:       4,
		PlateNumber: "س ص ع 123",
		Description: "حالة ممتازة",
	}
}

func TestVerifyWizard_StepOrder(t *testing.T) {
	w := NewVerifyWizard()
	s := w.Stepper()

	assert.Equal(t, 6, s.Total())
	assert.Equal(t, "رخصة القيادة", s.Title())

	// Each document step refuses until its file is present
	assert.False(t, s.Advance())
	assert.True(t, s.Touched("licenseFile"))

	w.License.Add(models.File{Name: "license.jpg"})
	assert.True(t, s.Advance())
	assert.Equal(t, "رخصة السيارة", s.Title())
}

func TestVerifyWizard_BuildForm(t *testing.T) {
	t.Run("incomplete wizard refuses", func(t *testing.T) {
		w := NewVerifyWizard()
		form, err := w.BuildForm("user-1")
		assert.ErrorIs(t, err, ErrIncompleteForm)
		assert.Nil(t, form)
	})

	t.Run("unknown user refuses", func(t *testing.T) {
		w := NewVerifyWizard()
		completeVerifyWizard(w)
		form, err := w.BuildForm("")
		assert.ErrorIs(t, err, ErrUnknownUser)
		assert.Nil(t, form)
	})

	t.Run("assembles the backend command field names", func(t *testing.T) {
		w := NewVerifyWizard()
		completeVerifyWizard(w)

		form, err := w.BuildForm("user-1")
		assert.NoError(t, err)

		contentType, body, err := form.Encode()
		assert.NoError(t, err)

		_, params, err := mime.ParseMediaType(contentType)
		assert.NoError(t, err)
		reader := multipart.NewReader(body, params["boundary"])

		fields := map[string][]string{}
		files := map[string][]string{}
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			assert.NoError(t, err)
			name := part.FormName()
			if part.FileName() != "" {
				files[name] = append(files[name], part.FileName())
				continue
			}
			value, _ := io.ReadAll(part)
			fields[name] = append(fields[name], string(value))
		}

		assert.Equal(t, []string{"user-1"}, fields["ApplicationUserId"])
		assert.Equal(t, []string{"user-1"}, fields["VehicleDetailsCommand.DriverId"])
		assert.Equal(t, []string{"Corolla"}, fields["VehicleDetailsCommand.Model"])
		assert.Equal(t, []string{"white"}, fields["VehicleDetailsCommand.Color"])
		assert.Equal(t, []string{"س ص ع 123"}, fields["VehicleDetailsCommand.PlateNumber"])
		assert.Equal(t, []string{"4"}, fields["VehicleDetailsCommand.SeatsNumber"])
		assert.Equal(t, []string{"حالة ممتازة"}, fields["DriverDescription"])
		assert.Equal(t, []string{"حالة ممتازة"}, fields["AddVerificationDocuments.Comment"])

		assert.Equal(t, []string{"license.jpg"}, files["AddVerificationDocuments.DriverLicense"])
		assert.Equal(t, []string{"id.jpg"}, files["AddVerificationDocuments.Identity"])
		assert.Equal(t, []string{"car-license.jpg"}, files["AddVerificationDocuments.VehicleRegistration"])
		assert.Equal(t, []string{"front.jpg", "back.jpg"}, files["VehicleDetailsCommand.VehicleImageUrls"])
	})
}
