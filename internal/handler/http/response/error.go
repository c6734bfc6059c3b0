package response

import (
	"errors"
	"net/http"

	"github.com/teppen-ops/venue-backend/internal/domain/auth"
	"github.com/teppen-ops/venue-backend/internal/domain/dailyreport"
	"github.com/teppen-ops/venue-backend/internal/domain/expense"
	"github.com/teppen-ops/venue-backend/internal/domain/staff"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
	"github.com/teppen-ops/venue-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrGoogleLoginDisabled):
		BadRequest(w, "Google login is not configured", nil)
	case errors.Is(err, auth.ErrOperatorNotFound):
		NotFound(w, "Operator not found")
	case errors.Is(err, auth.ErrEmailTaken):
		Conflict(w, "Email already registered")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffIDTaken):
		Conflict(w, "Staff ID already in use")

	// Entry and report errors
	case errors.Is(err, staffresult.ErrResultNotFound):
		NotFound(w, "Staff daily result not found")
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, dailyreport.ErrReportNotFound):
		NotFound(w, "Daily report not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
