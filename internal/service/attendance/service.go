package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
)

type AttendanceServiceImpl struct {
	attendance.RecordRepository
	config sysconfig.Store
}

func NewAttendanceService(recordRepo attendance.RecordRepository, config sysconfig.Store) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		RecordRepository: recordRepo,
		config:           config,
	}
}

// Classify implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Classify(ctx context.Context, req attendance.ClassifyRequest) (attendance.ClassifyResponse, error) {
	parsed, err := req.Validate()
	if err != nil {
		return attendance.ClassifyResponse{}, err
	}

	th := a.config.Thresholds(ctx)
	return attendance.ClassifyResponse{
		Classification: Classify(parsed.CheckIn, parsed.CheckOut, th),
		Thresholds:     th,
	}, nil
}

// StampPendingStatuses implements attendance.AttendanceService.
// Only the primary status is stored: early departure stays a derived facet.
func (a *AttendanceServiceImpl) StampPendingStatuses(ctx context.Context, date time.Time) (int, error) {
	records, err := a.RecordRepository.ListUnstamped(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to list unstamped records: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	th := a.config.Thresholds(ctx)

	stamped := 0
	for _, record := range records {
		if record.CheckIn == nil {
			continue
		}
		status := ClassifyRecord(record, th).Status
		if err := a.RecordRepository.UpdateStatus(ctx, record.ID, status); err != nil {
			slog.Warn("failed to stamp attendance status", "record_id", record.ID, "error", err)
			continue
		}
		stamped++
	}

	return stamped, nil
}
