package response

import (
	"errors"
	"net/http"

	"github.com/opspulse/opspulse-backend-go/internal/domain/entry"
	"github.com/opspulse/opspulse-backend-go/internal/domain/export"
	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
	"github.com/opspulse/opspulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Entry domain errors
	case errors.Is(err, entry.ErrInvalidDate):
		BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, entry.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Team domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")

	// Export domain errors
	case errors.Is(err, export.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format, expected csv, excel or json", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
