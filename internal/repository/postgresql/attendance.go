package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Dates are sent as YYYY-MM-DD so the session time zone cannot shift the day
func recordDate(date time.Time) string {
	return date.Format(time.DateOnly)
}

const recordColumns = `record_id, user_id, check_in_time, check_out_time, status, record_date`

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var status *string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CheckIn, &rec.CheckOut, &status, &rec.RecordDate); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		if status != nil {
			s := attendance.Status(*status)
			rec.Status = &s
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}

// CountRecords implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) CountRecords(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM attendance_records WHERE record_date = $1::date`

	var count int64
	if err := q.QueryRow(ctx, query, recordDate(date)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}
	return count, nil
}

// DistinctUserIDsWithRecord implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) DistinctUserIDsWithRecord(ctx context.Context, date time.Time) (map[int64]struct{}, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT DISTINCT user_id FROM attendance_records WHERE record_date = $1::date`

	rows, err := q.Query(ctx, query, recordDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query present users: %w", err)
	}
	defer rows.Close()

	users := make(map[int64]struct{})
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan present user: %w", err)
		}
		users[userID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate present users: %w", err)
	}
	return users, nil
}

// RecordsForDate implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) RecordsForDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records WHERE record_date = $1::date ORDER BY record_id`

	rows, err := q.Query(ctx, query, recordDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	return scanRecords(rows)
}

// CountDistinctAttendees implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) CountDistinctAttendees(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(DISTINCT user_id) FROM attendance_records WHERE record_date = $1::date`

	var count int64
	if err := q.QueryRow(ctx, query, recordDate(date)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendees on %s: %w", recordDate(date), err)
	}
	return count, nil
}

// ListUnstamped implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) ListUnstamped(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE record_date = $1::date AND status IS NULL AND check_in_time IS NOT NULL
		ORDER BY record_id
	`

	rows, err := q.Query(ctx, query, recordDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query unstamped attendance: %w", err)
	}
	return scanRecords(rows)
}

// UpdateStatus implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) UpdateStatus(ctx context.Context, recordID int64, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE attendance_records SET status = $1 WHERE record_id = $2`

	tag, err := q.Exec(ctx, query, string(status), recordID)
	if err != nil {
		return fmt.Errorf("failed to update attendance status for record %d: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
