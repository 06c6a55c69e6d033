package sysconfig

import "time"

// Well-known configuration keys
const (
	KeyWorkStartTime           = "work_start_time"
	KeyWorkEndTime             = "work_end_time"
	KeyLateThreshold           = "late_threshold"
	KeyEarlyDepartureThreshold = "early_departure_threshold"
	KeyLunchStartTime          = "lunch_start_time"
	KeyLunchEndTime            = "lunch_end_time"
	KeyGracePeriodMinutes      = "grace_period_minutes"
	KeyMaxLatePeriodMinutes    = "max_late_period_minutes"
	KeyRecognitionThreshold    = "recognition_threshold"
	KeyMinTrainingImages       = "min_training_images"
	KeyEmailNotifications      = "email_notifications"
	KeyDailyReports            = "daily_reports"
	KeyWeeklyReports           = "weekly_reports"
	KeyTimezone                = "timezone"
	KeyCompanyName             = "company_name"
	KeyAttendanceEnabled       = "attendance_enabled"
)

// Fallback thresholds when neither the threshold key nor the work hours key is set
const (
	DefaultLateThreshold           = "09:00:00"
	DefaultEarlyDepartureThreshold = "17:00:00"
)

// Kind describes how a value is interpreted by callers
type Kind string

const (
	KindString    Kind = "string"
	KindTimeOfDay Kind = "time_of_day"
	KindInteger   Kind = "integer"
	KindFloat     Kind = "float"
	KindBoolean   Kind = "boolean"
)

// Entry is one row of system_configs
type Entry struct {
	Key         string
	Value       string
	Description *string
	UpdatedAt   time.Time
}

// EntryValue is the shape returned by GetAll, keyed by config key
type EntryValue struct {
	Value       string  `json:"value"`
	Description *string `json:"description"`
}

// KindOf returns the kind of a well-known key; unknown keys are plain strings
func KindOf(key string) Kind {
	switch key {
	case KeyWorkStartTime, KeyWorkEndTime, KeyLateThreshold, KeyEarlyDepartureThreshold,
		KeyLunchStartTime, KeyLunchEndTime:
		return KindTimeOfDay
	case KeyGracePeriodMinutes, KeyMaxLatePeriodMinutes, KeyMinTrainingImages:
		return KindInteger
	case KeyRecognitionThreshold:
		return KindFloat
	case KeyEmailNotifications, KeyDailyReports, KeyWeeklyReports, KeyAttendanceEnabled:
		return KindBoolean
	default:
		return KindString
	}
}
