package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
)

const StampStatusJobName = "stamp_attendance_status"

// AttendanceJobs writes the classifier's verdict onto the day's records so
// the stored status column stays in step with the thresholds
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceService: attendanceService, now: time.Now}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(StampStatusJobName, interval, j.StampTodayStatuses)
}

func (j *AttendanceJobs) StampTodayStatuses(ctx context.Context) error {
	date := attendance.DateOf(j.now())

	stamped, err := j.attendanceService.StampPendingStatuses(ctx, date)
	if err != nil {
		return fmt.Errorf("stamp statuses for %s: %w", date.Format(time.DateOnly), err)
	}

	if stamped > 0 {
		slog.Info("Cron: Stamped attendance statuses", "date", date.Format(time.DateOnly), "count", stamped)
	}
	return nil
}
