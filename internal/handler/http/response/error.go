package response

import (
	"errors"
	"net/http"

	"github.com/salesops-id/salesops-backend-go/internal/domain/attendance"
	"github.com/salesops-id/salesops-backend-go/internal/domain/auth"
	"github.com/salesops-id/salesops-backend-go/internal/domain/lead"
	"github.com/salesops-id/salesops-backend-go/internal/domain/profile"
	"github.com/salesops-id/salesops-backend-go/internal/domain/report"
	"github.com/salesops-id/salesops-backend-go/internal/domain/slik"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, profile.ErrEmailTaken):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidCategory):
		BadRequest(w, "Invalid leave category", nil)

	// Slik domain errors
	case errors.Is(err, slik.ErrInvalidJSON):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, slik.ErrExtractionFailed):
		BadGateway(w, "KTP field extraction failed")
	case errors.Is(err, slik.ErrSlikNotFound):
		NotFound(w, "Slik verification not found")

	// Report domain errors
	case errors.Is(err, report.ErrLeadReportNotFound):
		NotFound(w, "Lead report not found")
	case errors.Is(err, report.ErrAdReportNotFound):
		NotFound(w, "Ad report not found")

	// Lead domain errors
	case errors.Is(err, lead.ErrLeadNotFound):
		NotFound(w, "Lead not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
