package dto

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError identifies a single invalid field in a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope returned by every endpoint.
// The errors list is present only when field-level detail exists.
type ErrorResponse struct {
	Status    int          `json:"status"`
	Message   string       `json:"message"`
	Errors    []FieldError `json:"errors,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewErrorResponse creates an error envelope stamped with the current time.
func NewErrorResponse(status int, message string, fieldErrors ...FieldError) *ErrorResponse {
	return &ErrorResponse{
		Status:    status,
		Message:   message,
		Errors:    fieldErrors,
		Timestamp: time.Now(),
	}
}

// BindingFieldErrors converts a gin binding failure into the envelope's field
// error list. Validator failures report every offending field at once; other
// binding failures (malformed JSON) produce a single body-level entry.
func BindingFieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: bindingMessage(fe),
		})
	}
	return fieldErrors
}

// bindingMessage creates a human-readable message for a validator failure.
func bindingMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "numeric":
		return e.Field() + " must contain only digits"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
