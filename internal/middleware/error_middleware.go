package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caprinak/StudentManagement/internal/app/models/dto"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
	"github.com/caprinak/StudentManagement/internal/pkg/logger"
)

// HandleAPIError is the single boundary responder: every handler funnels its
// failures here, and no layer below formats a response. The error's kind
// selects the status code; its message and field errors fill the envelope.
func HandleAPIError(c *gin.Context, err error) {
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		// Operators get the full detail; the caller gets a generic message.
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(status, dto.NewErrorResponse(status, "An unexpected error occurred"))
		return
	}

	c.JSON(status, dto.NewErrorResponse(status, err.Error(), fieldErrors(err)...))
}

// HandleBindingError responds to a failed request body bind with the
// aggregated field errors so one request reports all shape violations.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		http.StatusBadRequest,
		"Validation failed",
		dto.BindingFieldErrors(err)...,
	))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrMissingParameter),
		errors.Is(err, apperrors.ErrTypeMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fieldErrors(err error) []dto.FieldError {
	fields := apperrors.FieldsOf(err)
	if len(fields) == 0 {
		return nil
	}
	out := make([]dto.FieldError, len(fields))
	for i, f := range fields {
		out[i] = dto.FieldError{Field: f.Field, Message: f.Message}
	}
	return out
}
