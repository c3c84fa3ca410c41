package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a binding or validator error into an ErrorDetail.
// Field errors are listed under details, keyed by field name.
func HandleValidationError(err error) *ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe)] = FormatFieldError(fe)
	}

	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").WithDetails(fields)
	if len(verrs) == 1 {
		detail = detail.WithField(fieldName(verrs[0]))
	}
	return detail
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	name := fieldName(e)
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "min":
		return name + " must be at least " + e.Param()
	case "max":
		return name + " must be at most " + e.Param()
	case "gt":
		return name + " must be greater than " + e.Param()
	case "oneof":
		return name + " must be one of: " + e.Param()
	case "hhmm":
		return name + " must be a time in HH:MM format"
	case "isodate":
		return name + " must be a date in YYYY-MM-DD format"
	case "weekparity":
		return name + " must be one of: even, odd, every"
	default:
		return name + " validation failed: " + e.Tag()
	}
}

// fieldName is the json name once the tag name func is registered on the validator
func fieldName(e validator.FieldError) string {
	return e.Field()
}
