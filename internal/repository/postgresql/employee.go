package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// employeeIDLockNamespace is the first key of the two-key advisory lock taken per department
const employeeIDLockNamespace = 7301

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// MaxEmployeeIDInRange implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) MaxEmployeeIDInRange(ctx context.Context, departmentID, lo, hi int64, excludingUserID *int64) (*int64, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT MAX(employee_id)
		FROM users
		WHERE department_id = $1
			AND employee_id BETWEEN $2 AND $3
			AND ($4::bigint IS NULL OR user_id <> $4)
	`

	var highest *int64
	if err := q.QueryRow(ctx, query, departmentID, lo, hi, excludingUserID).Scan(&highest); err != nil {
		return nil, fmt.Errorf("failed to scan employee ids of department %d: %w", departmentID, err)
	}
	return highest, nil
}

// ExistsEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsEmployeeID(ctx context.Context, departmentID, id int64, excludingUserID *int64) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE department_id = $1
				AND employee_id = $2
				AND ($3::bigint IS NULL OR user_id <> $3)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, departmentID, id, excludingUserID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee id %d: %w", id, err)
	}
	return exists, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT user_id, full_name, role, department_id, employee_id, created_at
		FROM users
		WHERE user_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&emp.UserID, &emp.FullName, &emp.Role, &emp.DepartmentID, &emp.EmployeeID, &emp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return emp, nil
}

// DepartmentExists implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DepartmentExists(ctx context.Context, departmentID int64) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM departments WHERE department_id = $1)`, departmentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check department %d: %w", departmentID, err)
	}
	return exists, nil
}

// UpdateEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateEmployeeID(ctx context.Context, userID, departmentID, employeeID int64) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE users
		SET department_id = $1, employee_id = $2
		WHERE user_id = $3
	`

	tag, err := q.Exec(ctx, query, departmentID, employeeID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmployeeIDTaken
		}
		return fmt.Errorf("failed to update employee id of user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// WithDepartmentLock implements employee.EmployeeRepository.
// The advisory lock is released when the transaction ends.
func (e *employeeRepositoryImpl) WithDepartmentLock(ctx context.Context, departmentID int64, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, e.db)

		// pg_advisory_xact_lock(int, int) keys are int4, fold the id into that range
		key := int32(departmentID % (1 << 31))
		if _, err := q.Exec(txCtx, `SELECT pg_advisory_xact_lock($1, $2)`, int32(employeeIDLockNamespace), key); err != nil {
			return fmt.Errorf("failed to lock department %d: %w", departmentID, err)
		}

		return fn(txCtx)
	})
}
