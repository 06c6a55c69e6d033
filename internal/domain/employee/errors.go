package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrInvalidDepartment  = errors.New("department id is out of range")
	ErrInvalidRoleClass   = errors.New("role must be manager or member")
	ErrManagerSlotTaken   = errors.New("department already has a manager")
	ErrRangeExhausted     = errors.New("department employee id range is exhausted")
	ErrEmployeeIDTaken    = errors.New("employee id is already assigned")
)
