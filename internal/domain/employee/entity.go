package employee

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Roles stored on users.role
const (
	RoleSuperAdmin = "super_admin"
	RoleHRManager  = "hr_manager"
	RoleEmployee   = "employee"
)

// RoleClass is the only part of the role taxonomy the id allocator cares about
type RoleClass string

const (
	RoleClassManager RoleClass = "manager"
	RoleClassMember  RoleClass = "member"
)

func ParseRoleClass(s string) (RoleClass, error) {
	switch c := RoleClass(strings.ToLower(strings.TrimSpace(s))); c {
	case RoleClassManager, RoleClassMember:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoleClass, s)
}

// RoleClassForRole maps a stored role onto an allocator class.
// Super admins sit outside every department namespace and report false.
func RoleClassForRole(role string) (RoleClass, bool) {
	switch role {
	case RoleSuperAdmin:
		return "", false
	case RoleHRManager:
		return RoleClassManager, true
	default:
		return RoleClassMember, true
	}
}

// NamespaceSize is the number of ids reserved per department
const NamespaceSize = 10000

// MaxDepartmentID keeps the top of every namespace inside int64
const MaxDepartmentID = math.MaxInt64/NamespaceSize - 1

type Employee struct {
	UserID       int64
	FullName     string
	Role         string
	DepartmentID *int64
	EmployeeID   *int64
	CreatedAt    time.Time
}

type Department struct {
	ID   int64
	Name string
}

// IDRange is the reserved block of one department.
// Base is the manager slot, members occupy [Base+1, Last].
type IDRange struct {
	Base int64
	Last int64
}

func RangeFor(departmentID int64) IDRange {
	base := departmentID * NamespaceSize
	return IDRange{Base: base, Last: base + NamespaceSize - 1}
}

// Fits reports whether id is a valid id for class inside the range
func (r IDRange) Fits(id int64, class RoleClass) bool {
	if class == RoleClassManager {
		return id == r.Base
	}
	return id > r.Base && id <= r.Last
}
