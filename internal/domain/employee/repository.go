package employee

import (
	"context"
	"time"
)

// EmployeeRepository reads and writes the allocator's view of users
type EmployeeRepository interface {
	// MaxEmployeeIDInRange returns the highest employee id in [lo, hi] held by the department, nil when none.
	// A non-nil excludingUserID leaves that user's own row out of the scan.
	MaxEmployeeIDInRange(ctx context.Context, departmentID, lo, hi int64, excludingUserID *int64) (*int64, error)

	// ExistsEmployeeID reports whether anyone in the department other than excludingUserID holds id
	ExistsEmployeeID(ctx context.Context, departmentID, id int64, excludingUserID *int64) (bool, error)

	GetByUserID(ctx context.Context, userID int64) (Employee, error)

	DepartmentExists(ctx context.Context, departmentID int64) (bool, error)

	// UpdateEmployeeID moves the user into departmentID with employeeID
	UpdateEmployeeID(ctx context.Context, userID, departmentID, employeeID int64) error

	// WithDepartmentLock runs fn in a transaction that holds the department's allocation lock
	WithDepartmentLock(ctx context.Context, departmentID int64, fn func(ctx context.Context) error) error
}

// HeadcountRepository counts employees for reporting
type HeadcountRepository interface {
	CountActiveEmployees(ctx context.Context, excludingRole string) (int64, error)

	// CountActiveEmployeesCreatedBefore counts employees that already existed at before
	CountActiveEmployeesCreatedBefore(ctx context.Context, excludingRole string, before time.Time) (int64, error)
}
