package exceptions

import (
	"mediportal-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BuildFieldErrors turns validator errors into the per-field list embedded in
// a validation failure response. Non-validator errors yield an empty list.
func BuildFieldErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldName(fieldErr),
			Message: tagMessage(fieldErr),
		})
	}
	return fieldErrors
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return fieldName(firstErr) + " " + tagMessage(firstErr)
	}
	return constvars.ErrClientCannotProcessRequest
}

func fieldName(fieldErr validator.FieldError) string {
	return strings.ToLower(fieldErr.Field())
}

func tagMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			return strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		}
		return strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
	return customMessage
}
