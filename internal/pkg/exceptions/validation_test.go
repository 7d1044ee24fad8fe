package exceptions

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	PatientName string `validate:"required"`
	Email       string `validate:"required,email"`
	Limit       int    `validate:"gte=1,lte=100"`
}

func TestBuildFieldErrors(t *testing.T) {
	validate := validator.New()

	t.Run("Every Failing Field Is Listed", func(t *testing.T) {
		err := validate.Struct(&samplePayload{Email: "not-an-email", Limit: 101})
		assert.Error(t, err)

		fieldErrors := BuildFieldErrors(err)

		assert.Len(t, fieldErrors, 3)
		assert.Equal(t, "patientname", fieldErrors[0].Field)
		assert.Equal(t, "is required", fieldErrors[0].Message)
		assert.Equal(t, "email", fieldErrors[1].Field)
		assert.Equal(t, "must be a valid email address", fieldErrors[1].Message)
		assert.Equal(t, "limit", fieldErrors[2].Field)
		assert.Equal(t, "must be less than or equal to 100", fieldErrors[2].Message)
	})

	t.Run("Non Validator Error", func(t *testing.T) {
		assert.Nil(t, BuildFieldErrors(assert.AnError))
	})
}

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(&samplePayload{Email: "ok@example.com", Limit: 10})
	assert.Error(t, err, "patient name is still missing")

	message := FormatFirstValidationError(err)

	assert.Equal(t, "patientname is required", message)
}

func TestErrInputValidation(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(&samplePayload{Limit: 0})

	customErr := ErrInputValidation(err)

	assert.Equal(t, 422, customErr.StatusCode)
	assert.NotEmpty(t, customErr.FieldErrors)
}
