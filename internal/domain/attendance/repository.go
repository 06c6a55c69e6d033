package attendance

import (
	"context"
	"time"
)

// RecordRepository is the read side over attendance_records used by reporting.
// Every date argument is a logical attendance day; only its calendar date is used.
type RecordRepository interface {
	// CountRecords returns how many records exist for the date
	CountRecords(ctx context.Context, date time.Time) (int64, error)

	// DistinctUserIDsWithRecord returns the set of users holding any record for the date
	DistinctUserIDsWithRecord(ctx context.Context, date time.Time) (map[int64]struct{}, error)

	// RecordsForDate returns every record for the date
	RecordsForDate(ctx context.Context, date time.Time) ([]Record, error)

	// CountDistinctAttendees is COUNT(DISTINCT user_id) for the date
	CountDistinctAttendees(ctx context.Context, date time.Time) (int64, error)

	// ListUnstamped returns records with a check-in but no stored status
	ListUnstamped(ctx context.Context, date time.Time) ([]Record, error)

	// UpdateStatus overwrites the stored status of one record
	UpdateStatus(ctx context.Context, recordID int64, status Status) error
}
