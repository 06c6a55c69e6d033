package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
)

// Classify derives the primary status and the early departure facet of one record.
// Times are compared on their clock value only; a check-in exactly at the late
// threshold is on time and a check-out exactly at the early threshold is not early.
func Classify(checkIn, checkOut *time.Time, th attendance.Thresholds) attendance.Classification {
	if checkIn == nil {
		return attendance.Classification{Status: attendance.StatusAbsent}
	}

	c := attendance.Classification{Status: attendance.StatusOnTime}
	if attendance.TimeOfDayOf(*checkIn) > th.Late {
		c.Status = attendance.StatusLate
	}
	if checkOut != nil && attendance.TimeOfDayOf(*checkOut) < th.EarlyDeparture {
		c.EarlyDeparture = true
	}
	return c
}

// ClassifyRecord is Classify over a stored record
func ClassifyRecord(r attendance.Record, th attendance.Thresholds) attendance.Classification {
	return Classify(r.CheckIn, r.CheckOut, th)
}
