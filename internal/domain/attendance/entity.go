package attendance

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusOnTime         Status = "on_time"
	StatusLate           Status = "late"
	StatusAbsent         Status = "absent"
	StatusEarlyDeparture Status = "early_departure"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOnTime, StatusLate, StatusAbsent, StatusEarlyDeparture:
		return true
	}
	return false
}

// Record is one employee's attendance for one logical day.
// CheckOut is always nil when CheckIn is nil.
type Record struct {
	ID         int64
	UserID     int64
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     *Status
	RecordDate time.Time
}

// Thresholds are the time-of-day cut-offs consulted by the classifier
type Thresholds struct {
	Late           TimeOfDay `json:"late_threshold"`
	EarlyDeparture TimeOfDay `json:"early_departure_threshold"`
}

// Classification is the primary status plus the independent early departure facet
type Classification struct {
	Status         Status `json:"status"`
	EarlyDeparture bool   `json:"earlyDeparture"`
}

// TimeOfDay is a wall clock time at whole-second resolution, stored as seconds since midnight.
type TimeOfDay int

const secondsPerDay = 24 * 60 * 60

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// ParseTimeOfDay accepts HH:MM:SS or HH:MM
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// MustParseTimeOfDay is ParseTimeOfDay for constants; it panics on malformed input.
func MustParseTimeOfDay(s string) TimeOfDay {
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return tod
}

// TimeOfDayOf drops the date and any sub-second part of t, using t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

func (t TimeOfDay) String() string {
	s := int(t) % secondsPerDay
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DateOf truncates t to its calendar day, expressed as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
