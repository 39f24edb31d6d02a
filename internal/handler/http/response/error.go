package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/budgetitem"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/ledger"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/rate"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")

	// Master data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, rate.ErrRateNotFound):
		NotFound(w, "Master rate not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateHoliday):
		Conflict(w, "A holiday with this name already exists on this date")
	case errors.Is(err, budgetitem.ErrBudgetItemNotFound):
		NotFound(w, "Budget item not found")
	case errors.Is(err, ledger.ErrLedgerNotFound):
		NotFound(w, "Ledger not found")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
