package employee

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
)

func int64Ptr(v int64) *int64 { return &v }

// fakeEmployeeRepo keeps users in memory and enforces employee id uniqueness like the unique index
type fakeEmployeeRepo struct {
	mu          sync.Mutex
	departments map[int64]bool
	users       map[int64]employee.Employee
	lockCalls   map[int64]int
	scanErr     error
}

func newFakeEmployeeRepo(departments ...int64) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{
		departments: make(map[int64]bool),
		users:       make(map[int64]employee.Employee),
		lockCalls:   make(map[int64]int),
	}
	for _, d := range departments {
		repo.departments[d] = true
	}
	return repo
}

func (f *fakeEmployeeRepo) addUser(userID int64, role string, departmentID, employeeID *int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[userID] = employee.Employee{
		UserID:       userID,
		Role:         role,
		DepartmentID: departmentID,
		EmployeeID:   employeeID,
	}
}

func (f *fakeEmployeeRepo) user(userID int64) employee.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[userID]
}

func (f *fakeEmployeeRepo) inDepartment(u employee.Employee, departmentID int64, excludingUserID *int64) bool {
	if u.DepartmentID == nil || *u.DepartmentID != departmentID || u.EmployeeID == nil {
		return false
	}
	return excludingUserID == nil || *excludingUserID != u.UserID
}

func (f *fakeEmployeeRepo) MaxEmployeeIDInRange(ctx context.Context, departmentID, lo, hi int64, excludingUserID *int64) (*int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	var highest *int64
	for _, u := range f.users {
		if !f.inDepartment(u, departmentID, excludingUserID) {
			continue
		}
		id := *u.EmployeeID
		if id < lo || id > hi {
			continue
		}
		if highest == nil || id > *highest {
			highest = int64Ptr(id)
		}
	}
	return highest, nil
}

func (f *fakeEmployeeRepo) ExistsEmployeeID(ctx context.Context, departmentID, id int64, excludingUserID *int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if f.inDepartment(u, departmentID, excludingUserID) && *u.EmployeeID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return u, nil
}

func (f *fakeEmployeeRepo) DepartmentExists(ctx context.Context, departmentID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.departments[departmentID], nil
}

func (f *fakeEmployeeRepo) UpdateEmployeeID(ctx context.Context, userID, departmentID, employeeID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.UserID != userID && u.EmployeeID != nil && *u.EmployeeID == employeeID {
			return employee.ErrEmployeeIDTaken
		}
	}
	u, ok := f.users[userID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	u.DepartmentID = int64Ptr(departmentID)
	u.EmployeeID = int64Ptr(employeeID)
	f.users[userID] = u
	return nil
}

func (f *fakeEmployeeRepo) WithDepartmentLock(ctx context.Context, departmentID int64, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	f.lockCalls[departmentID]++
	f.mu.Unlock()
	return fn(ctx)
}
