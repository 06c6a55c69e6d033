package dashboard

import "strings"

// ========== DAILY STATS ==========

// DailyStats is the tally for one attendance day.
// Absent is derived from presence: employees without any record for the day.
type DailyStats struct {
	OnTime         int64
	Late           int64
	Absent         int64
	EarlyDeparture int64
	Present        int64
	// RecordedAbsent counts records stored with status 'absent'. Informational only.
	RecordedAbsent int64
}

// ========== DASHBOARD STATS (today vs yesterday) ==========

type DashboardStatsResponse struct {
	TotalEmployees       int64   `json:"totalEmployees"`
	EmployeesAdded       int64   `json:"employeesAdded"`
	OnTime               int64   `json:"onTime"`
	OnTimeChange         float64 `json:"onTimeChange"`
	LateArrival          int64   `json:"lateArrival"`
	LateArrivalChange    float64 `json:"lateArrivalChange"`
	Absent               int64   `json:"absent"`
	AbsentChange         float64 `json:"absentChange"`
	EarlyDeparture       int64   `json:"earlyDeparture"`
	EarlyDepartureChange float64 `json:"earlyDepartureChange"`
	TimeOff              int64   `json:"timeOff"`
	TimeOffChange        float64 `json:"timeOffChange"`
	RecordedAbsent       int64   `json:"recordedAbsent"`
	RecordedAbsentChange float64 `json:"recordedAbsentChange"`
	Date                 string  `json:"date"` // Format: "YYYY-MM-DD"
}

// ========== ATTENDANCE SERIES ==========

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod is case-insensitive; anything unrecognised is daily
func ParsePeriod(s string) Period {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodWeekly, PeriodMonthly:
		return p
	default:
		return PeriodDaily
	}
}

// Point is one day of the attendance rate chart
type Point struct {
	Label string `json:"label"` // Short weekday, e.g. "Mon"
	Date  string `json:"date"`  // Format: "YYYY-MM-DD"
	Value int    `json:"value"` // Attendance rate, 0-100
}

// SeriesResponse holds the current window and the equal-length window before it
type SeriesResponse struct {
	Period   Period  `json:"period"`
	Current  []Point `json:"current"`
	Previous []Point `json:"previous"`
}
