package employee

import (
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/validator"
)

type NextEmployeeIDRequest struct {
	DepartmentID  int64
	Role          string
	ExcludeUserID *int64
}

func (r *NextEmployeeIDRequest) Validate() (RoleClass, error) {
	var errs validator.ValidationErrors

	if r.DepartmentID <= 0 || r.DepartmentID > MaxDepartmentID {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a positive department id",
		})
	}

	class, err := ParseRoleClass(r.Role)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be manager or member",
		})
	}

	if r.ExcludeUserID != nil && *r.ExcludeUserID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "exclude_user_id",
			Message: "exclude_user_id must be positive",
		})
	}

	if len(errs) > 0 {
		return "", errs
	}
	return class, nil
}

type NextEmployeeIDResponse struct {
	DepartmentID int64     `json:"department_id"`
	Role         RoleClass `json:"role"`
	EmployeeID   int64     `json:"employee_id"`
}

// AssignEmployeeIDRequest moves a user into a department. An empty Role derives
// the class from the user's stored role.
type AssignEmployeeIDRequest struct {
	UserID       int64  `json:"-"`
	DepartmentID int64  `json:"department_id"`
	Role         string `json:"role,omitempty"`
}

func (r *AssignEmployeeIDRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be positive",
		})
	}

	if r.DepartmentID <= 0 || r.DepartmentID > MaxDepartmentID {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a positive department id",
		})
	}

	if !validator.IsEmpty(r.Role) {
		if _, err := ParseRoleClass(r.Role); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be manager or member",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignEmployeeIDResponse struct {
	UserID       int64     `json:"user_id"`
	DepartmentID int64     `json:"department_id"`
	Role         RoleClass `json:"role"`
	EmployeeID   int64     `json:"employee_id"`
	Changed      bool      `json:"changed"`
}
