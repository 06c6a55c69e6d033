package fixtures

import (
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// ==========================================
// DEFAULT SYSTEM CONFIGS
// ==========================================

// GetDefaultSystemConfigs returns the settings a fresh installation starts with.
// late_threshold and early_departure_threshold mirror the default work hours.
func GetDefaultSystemConfigs() []sysconfig.Entry {
	return []sysconfig.Entry{
		// Working hours
		{Key: sysconfig.KeyWorkStartTime, Value: "09:00:00", Description: strPtr("Work start time (HH:MM:SS)")},
		{Key: sysconfig.KeyWorkEndTime, Value: "17:00:00", Description: strPtr("Work end time (HH:MM:SS)")},
		{Key: sysconfig.KeyLateThreshold, Value: sysconfig.DefaultLateThreshold, Description: strPtr("Check-ins after this time are late (HH:MM:SS)")},
		{Key: sysconfig.KeyEarlyDepartureThreshold, Value: sysconfig.DefaultEarlyDepartureThreshold, Description: strPtr("Check-outs before this time are early departures (HH:MM:SS)")},
		{Key: sysconfig.KeyLunchStartTime, Value: "12:00:00", Description: strPtr("Lunch break start time (HH:MM:SS)")},
		{Key: sysconfig.KeyLunchEndTime, Value: "13:00:00", Description: strPtr("Lunch break end time (HH:MM:SS)")},

		// Lateness policy
		{Key: sysconfig.KeyGracePeriodMinutes, Value: "5", Description: strPtr("Grace period for late arrival (minutes)")},
		{Key: sysconfig.KeyMaxLatePeriodMinutes, Value: "60", Description: strPtr("Maximum late period before marked as absent (minutes)")},

		// Face recognition
		{Key: sysconfig.KeyRecognitionThreshold, Value: "0.85", Description: strPtr("Face recognition confidence threshold")},
		{Key: sysconfig.KeyMinTrainingImages, Value: "2", Description: strPtr("Minimum training images required per employee")},

		// Notifications and reports
		{Key: sysconfig.KeyEmailNotifications, Value: "true", Description: strPtr("Enable email notifications for late arrivals")},
		{Key: sysconfig.KeyDailyReports, Value: "true", Description: strPtr("Enable daily attendance reports")},
		{Key: sysconfig.KeyWeeklyReports, Value: "false", Description: strPtr("Enable weekly summary reports")},

		// General
		{Key: sysconfig.KeyTimezone, Value: "Asia/Ho_Chi_Minh", Description: strPtr("System timezone")},
		{Key: sysconfig.KeyCompanyName, Value: "Smart Face Attendance System", Description: strPtr("Company name")},
		{Key: sysconfig.KeyAttendanceEnabled, Value: "true", Description: strPtr("Enable or disable attendance capture")},
	}
}
