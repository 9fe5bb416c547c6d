package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/findup-dz/findup-api/internal/app/models/dto"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
	"github.com/findup-dz/findup-api/internal/pkg/logger"
)

// exposeInternalErrors controls whether 500 responses carry the real error
// message. Enabled in development only; see SetExposeInternalErrors.
var exposeInternalErrors bool

// SetExposeInternalErrors toggles raw error messages in 500 responses.
// Production keeps this off so internals never leak to clients.
func SetExposeInternalErrors(expose bool) {
	exposeInternalErrors = expose
}

// statusForError maps a service error to an HTTP status. Duplicate
// relationships are client mistakes (400); a duplicate email on registration
// is a state conflict (409).
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrAlreadyApplied):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrFormationNotFound),
		errors.Is(err, apperrors.ErrJobNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageForError picks the client-facing message. Sentinels and CustomError
// messages pass through; unexpected errors are masked unless internal error
// exposure is on.
func messageForError(err error, status int) string {
	if status != http.StatusInternalServerError {
		// Login failures share one message regardless of whether the
		// email or the password was wrong.
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return "Invalid email or password"
		}
		return err.Error()
	}
	if exposeInternalErrors {
		return err.Error()
	}
	return "An unexpected error occurred"
}

// HandleAPIError writes the standard error body for a service error.
func HandleAPIError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
	}
	c.JSON(status, dto.NewErrorResponse(messageForError(err, status)))
}
