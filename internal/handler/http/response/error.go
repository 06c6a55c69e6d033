package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/validator"
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
	// Employee id allocation errors
	case errors.Is(err, employee.ErrManagerSlotTaken):
		Conflict(w, "Department already has a manager")
	case errors.Is(err, employee.ErrEmployeeIDTaken):
		Conflict(w, "Employee id is already assigned, retry the request")
	case errors.Is(err, employee.ErrRangeExhausted):
		Conflict(w, "Department employee id range is exhausted")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, employee.ErrInvalidDepartment),
		errors.Is(err, employee.ErrInvalidRoleClass):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidTimeOfDay):
		BadRequest(w, err.Error(), nil)

	// System config errors
	case errors.Is(err, sysconfig.ErrConfigUnavailable):
		ServiceUnavailable(w, "System configuration is unavailable")
	case errors.Is(err, sysconfig.ErrConfigWriteFailed):
		InternalServerError(w, "Failed to save system configuration")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
