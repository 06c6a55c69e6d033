package employee

import "context"

// EmployeeService owns department-scoped employee id allocation
type EmployeeService interface {
	// AllocateEmployeeID previews the next id for class in the department without persisting or locking.
	// Ids that get stored are allocated by AssignEmployeeID.
	AllocateEmployeeID(ctx context.Context, departmentID int64, class RoleClass, excludingUserID *int64) (int64, error)

	NextEmployeeID(ctx context.Context, req NextEmployeeIDRequest) (NextEmployeeIDResponse, error)

	// AssignEmployeeID allocates and stores an id for one user. Other employees are never renumbered.
	AssignEmployeeID(ctx context.Context, req AssignEmployeeIDRequest) (AssignEmployeeIDResponse, error)
}
