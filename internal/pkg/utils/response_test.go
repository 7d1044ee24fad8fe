package utils

import (
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/exceptions"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildSuccessResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	BuildSuccessResponse(rr, constvars.StatusOK, "done", map[string]string{"key": "value"})

	assert.Equal(t, constvars.StatusOK, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
}

func TestBuildPlainTextResponse(t *testing.T) {
	rr := httptest.NewRecorder()

	BuildPlainTextResponse(rr, constvars.MIMETextPlainCharsetUTF8, "User-agent: *")

	assert.Equal(t, constvars.StatusOK, rr.Code)
	assert.Equal(t, constvars.MIMETextPlainCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
	assert.Equal(t, "User-agent: *", rr.Body.String())
}

func TestBuildErrorResponse(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Custom Error", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(logger, rr, exceptions.ErrArticleNotFound(nil))

		assert.Equal(t, constvars.StatusNotFound, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientArticleNotFound, body["message"])
	})

	t.Run("Validation Error Carries Field List", func(t *testing.T) {
		type payload struct {
			Email string `validate:"required,email"`
		}
		err := ValidateStruct(&payload{})
		assert.Error(t, err)

		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrInputValidation(err))

		assert.Equal(t, constvars.StatusUnprocessableEntity, rr.Code)

		var body struct {
			Errors []exceptions.FieldError `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Len(t, body.Errors, 1)
		assert.Equal(t, "email", body.Errors[0].Field)
	})

	t.Run("Unknown Error Falls Back To 500", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(logger, rr, assert.AnError)

		assert.Equal(t, constvars.StatusInternalServerError, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
	})
}
