package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidTimeOfDay   = errors.New("invalid time of day, expected HH:MM or HH:MM:SS")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
