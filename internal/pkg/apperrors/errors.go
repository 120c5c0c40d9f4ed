package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure raised below the HTTP boundary wraps exactly one
// of these sentinels; the boundary responder maps the kind to a status code.
var (
	// ErrNotFound means a referenced or addressed row does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict means a uniqueness constraint was violated, either by the
	// advisory pre-check or by the database itself.
	ErrConflict = errors.New("conflict")
	// ErrValidationFailed means one or more field-shape checks failed.
	ErrValidationFailed = errors.New("validation failed")
	// ErrMissingParameter means a required query parameter was omitted.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrTypeMismatch means a parameter could not be coerced to its expected type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// FieldError names a single offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries a kind sentinel, a caller-facing message and optional
// per-field details. It unwraps to its kind so errors.Is matching works.
type Error struct {
	Kind    error
	Message string
	Fields  []FieldError
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewNotFound creates a NotFound error with a formatted message.
func NewNotFound(format string, args ...interface{}) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewConflict creates a Conflict error with a formatted message.
func NewConflict(format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// NewValidation creates a ValidationFailed error carrying the aggregated
// field errors of a single request.
func NewValidation(fields ...FieldError) error {
	return &Error{Kind: ErrValidationFailed, Message: "Validation failed", Fields: fields}
}

// NewMissingParameter reports an omitted required parameter by name.
func NewMissingParameter(name string) error {
	return &Error{
		Kind:    ErrMissingParameter,
		Message: "Missing required parameter",
		Fields:  []FieldError{{Field: name, Message: "Parameter is required"}},
	}
}

// NewTypeMismatch reports a parameter that could not be coerced to its
// expected type.
func NewTypeMismatch(name, expected string) error {
	return &Error{
		Kind:    ErrTypeMismatch,
		Message: "Type mismatch",
		Fields:  []FieldError{{Field: name, Message: fmt.Sprintf("Should be of type %s", expected)}},
	}
}

// FieldsOf extracts the field errors from err, if it carries any.
func FieldsOf(err error) []FieldError {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
