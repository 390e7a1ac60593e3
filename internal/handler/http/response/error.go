package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/worklane/timekeeping-backend-go/internal/domain/auth"
	"github.com/worklane/timekeeping-backend-go/internal/domain/employee"
	"github.com/worklane/timekeeping-backend-go/internal/domain/timerecord"
	"github.com/worklane/timekeeping-backend-go/internal/domain/user"
	"github.com/worklane/timekeeping-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotRegistered):
		NotFound(w, "No account registered for this email")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Time record domain errors
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")

	// Default. ErrInvalidState lands here on purpose: a record in an
	// impossible state is data corruption, not a client mistake.
	default:
		slog.Error("Unhandled domain error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
