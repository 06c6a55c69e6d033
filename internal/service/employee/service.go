package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/metrics"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository

	// one mutex per department id, serializing scan and write inside this process
	locks sync.Map
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: repo,
	}
}

func (s *EmployeeServiceImpl) departmentLock(departmentID int64) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(departmentID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// withDepartment serializes fn against every other allocation in the department,
// in process through the mutex and across processes through the repository lock.
func (s *EmployeeServiceImpl) withDepartment(ctx context.Context, departmentID int64, fn func(ctx context.Context) error) error {
	mu := s.departmentLock(departmentID)
	mu.Lock()
	defer mu.Unlock()

	return s.EmployeeRepository.WithDepartmentLock(ctx, departmentID, fn)
}

// nextID is the bump pointer: the manager slot is the namespace base, members take max+1.
// Ids are never reclaimed, so gaps left by departures stay empty.
func (s *EmployeeServiceImpl) nextID(ctx context.Context, departmentID int64, class employee.RoleClass, excludingUserID *int64) (int64, error) {
	r := employee.RangeFor(departmentID)

	if class == employee.RoleClassManager {
		taken, err := s.EmployeeRepository.ExistsEmployeeID(ctx, departmentID, r.Base, excludingUserID)
		if err != nil {
			return 0, fmt.Errorf("failed to check manager slot: %w", err)
		}
		if taken {
			return 0, employee.ErrManagerSlotTaken
		}
		return r.Base, nil
	}

	highest, err := s.EmployeeRepository.MaxEmployeeIDInRange(ctx, departmentID, r.Base+1, r.Last, excludingUserID)
	if err != nil {
		return 0, fmt.Errorf("failed to scan department ids: %w", err)
	}

	candidate := r.Base + 1
	if highest != nil {
		candidate = *highest + 1
	}
	if candidate > r.Last {
		return 0, employee.ErrRangeExhausted
	}
	return candidate, nil
}

func validateDepartment(departmentID int64) error {
	if departmentID <= 0 || departmentID > employee.MaxDepartmentID {
		return fmt.Errorf("%w: %d", employee.ErrInvalidDepartment, departmentID)
	}
	return nil
}

func (s *EmployeeServiceImpl) ensureDepartment(ctx context.Context, departmentID int64) error {
	exists, err := s.EmployeeRepository.DepartmentExists(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("failed to look up department: %w", err)
	}
	if !exists {
		return employee.ErrDepartmentNotFound
	}
	return nil
}

func recordAllocation(class employee.RoleClass, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, employee.ErrManagerSlotTaken):
		result = "conflict"
	case errors.Is(err, employee.ErrRangeExhausted):
		result = "exhausted"
	default:
		result = "error"
	}
	metrics.EmployeeIDAllocations.WithLabelValues(string(class), result).Inc()
}

// AllocateEmployeeID implements employee.EmployeeService.
// It previews the next free id without the department lock, so the id is not reserved.
// Ids that get stored go through AssignEmployeeID, which scans and updates under the lock.
func (s *EmployeeServiceImpl) AllocateEmployeeID(ctx context.Context, departmentID int64, class employee.RoleClass, excludingUserID *int64) (int64, error) {
	if err := validateDepartment(departmentID); err != nil {
		return 0, err
	}
	if class != employee.RoleClassManager && class != employee.RoleClassMember {
		return 0, fmt.Errorf("%w: %q", employee.ErrInvalidRoleClass, class)
	}

	id, err := s.previewID(ctx, departmentID, class, excludingUserID)
	recordAllocation(class, err)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *EmployeeServiceImpl) previewID(ctx context.Context, departmentID int64, class employee.RoleClass, excludingUserID *int64) (int64, error) {
	if err := s.ensureDepartment(ctx, departmentID); err != nil {
		return 0, err
	}
	return s.nextID(ctx, departmentID, class, excludingUserID)
}

// NextEmployeeID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) NextEmployeeID(ctx context.Context, req employee.NextEmployeeIDRequest) (employee.NextEmployeeIDResponse, error) {
	class, err := req.Validate()
	if err != nil {
		return employee.NextEmployeeIDResponse{}, err
	}

	id, err := s.AllocateEmployeeID(ctx, req.DepartmentID, class, req.ExcludeUserID)
	if err != nil {
		return employee.NextEmployeeIDResponse{}, err
	}

	return employee.NextEmployeeIDResponse{
		DepartmentID: req.DepartmentID,
		Role:         class,
		EmployeeID:   id,
	}, nil
}

// AssignEmployeeID implements employee.EmployeeService.
// The user's own row is left out of the scan, so re-running for an unchanged
// department and role keeps the current id.
func (s *EmployeeServiceImpl) AssignEmployeeID(ctx context.Context, req employee.AssignEmployeeIDRequest) (employee.AssignEmployeeIDResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.AssignEmployeeIDResponse{}, err
	}

	resp := employee.AssignEmployeeIDResponse{
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
	}

	var class employee.RoleClass
	err := s.withDepartment(ctx, req.DepartmentID, func(ctx context.Context) error {
		if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
			return err
		}

		emp, err := s.EmployeeRepository.GetByUserID(ctx, req.UserID)
		if err != nil {
			return err
		}

		class, err = resolveClass(req.Role, emp.Role)
		if err != nil {
			return err
		}
		resp.Role = class

		if emp.DepartmentID != nil && *emp.DepartmentID == req.DepartmentID && emp.EmployeeID != nil &&
			employee.RangeFor(req.DepartmentID).Fits(*emp.EmployeeID, class) {
			resp.EmployeeID = *emp.EmployeeID
			return nil
		}

		id, err := s.nextID(ctx, req.DepartmentID, class, &req.UserID)
		if err != nil {
			return err
		}
		if err := s.EmployeeRepository.UpdateEmployeeID(ctx, req.UserID, req.DepartmentID, id); err != nil {
			return fmt.Errorf("failed to store employee id: %w", err)
		}

		resp.EmployeeID = id
		resp.Changed = true
		return nil
	})
	if class != "" {
		recordAllocation(class, err)
	}
	if err != nil {
		return employee.AssignEmployeeIDResponse{}, err
	}

	if resp.Changed {
		slog.Info("employee id assigned",
			"user_id", req.UserID,
			"department_id", req.DepartmentID,
			"role", class,
			"employee_id", resp.EmployeeID,
		)
	}
	return resp, nil
}

// resolveClass prefers an explicit class and otherwise derives it from the stored role
func resolveClass(requested, storedRole string) (employee.RoleClass, error) {
	if storedRole == employee.RoleSuperAdmin {
		return "", fmt.Errorf("%w: super admins have no employee id", employee.ErrInvalidRoleClass)
	}
	if requested != "" {
		return employee.ParseRoleClass(requested)
	}
	class, _ := employee.RoleClassForRole(storedRole)
	return class, nil
}
