package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a validator error into an ErrorDetail with
// one entry per failed field.
func HandleValidationError(err error) *ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
	}

	validationErrors := NewValidationErrors()
	for _, fieldError := range fieldErrors {
		validationErrors.AddError(fieldError.Field(), formatFieldError(fieldError))
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").WithDetails(validationErrors.Errors)
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "eqfield":
		return e.Field() + " must match " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
