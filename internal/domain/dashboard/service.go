package dashboard

import (
	"context"
	"time"
)

// DashboardService defines the interface for attendance reporting
type DashboardService interface {
	// GetDashboardStats compares today against yesterday for every status category
	GetDashboardStats(ctx context.Context, today, yesterday time.Time) (*DashboardStatsResponse, error)

	// GetSeries builds the attendance rate series ending today
	GetSeries(ctx context.Context, period Period, days int) (*SeriesResponse, error)

	// BuildSeries builds the attendance rate series relative to an explicit today
	BuildSeries(ctx context.Context, period Period, days int, today time.Time) (*SeriesResponse, error)
}
