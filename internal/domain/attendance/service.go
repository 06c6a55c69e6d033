package attendance

import (
	"context"
	"time"
)

// AttendanceService exposes status classification to the transport layer
type AttendanceService interface {
	// Classify applies the configured thresholds to a raw check-in/check-out pair
	Classify(ctx context.Context, req ClassifyRequest) (ClassifyResponse, error)

	// StampPendingStatuses writes on_time/late onto records for date that have a check-in but no status
	StampPendingStatuses(ctx context.Context, date time.Time) (int, error)
}
