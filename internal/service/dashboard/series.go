package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	defaultDailyDays = 7
	maxDailyDays     = 31
	maxMonthlyDays   = 30
	daysPerWeek      = 7
)

// window is a run of consecutive days starting at start
type window struct {
	start time.Time
	days  int
}

// seriesWindows picks the current window and the equal-length block right before it
func seriesWindows(period dashboard.Period, days int, today time.Time) (current, previous window) {
	today = attendance.DateOf(today)

	var n int
	var start time.Time
	switch period {
	case dashboard.PeriodWeekly:
		n = daysPerWeek
		// Monday of today's week, Sunday belongs to the week that started six days earlier
		offset := (int(today.Weekday()) + 6) % 7
		start = today.AddDate(0, 0, -offset)
	case dashboard.PeriodMonthly:
		n = clampDays(days, maxMonthlyDays, maxMonthlyDays)
		start = today.AddDate(0, 0, -(n - 1))
	default:
		n = clampDays(days, defaultDailyDays, maxDailyDays)
		start = today.AddDate(0, 0, -(n - 1))
	}

	current = window{start: start, days: n}
	previous = window{start: start.AddDate(0, 0, -n), days: n}
	return current, previous
}

func clampDays(days, def, limit int) int {
	if days <= 0 {
		return def
	}
	return min(days, limit)
}

// attendanceRate is the share of the headcount present, as a whole percentage
func attendanceRate(present, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(present) / float64(total)))
}

// GetSeries implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSeries(ctx context.Context, period dashboard.Period, days int) (*dashboard.SeriesResponse, error) {
	return s.BuildSeries(ctx, period, days, s.now())
}

// BuildSeries implements dashboard.DashboardService.
// The current headcount is read once and applied to every point of both windows, so
// historical points ignore employees who joined or left since. Only that read can fail the
// series; a failing point is reported as 0.
func (s *DashboardServiceImpl) BuildSeries(ctx context.Context, period dashboard.Period, days int, today time.Time) (*dashboard.SeriesResponse, error) {
	period = dashboard.ParsePeriod(string(period))

	total, err := s.HeadcountRepository.CountActiveEmployees(ctx, employee.RoleSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	current, previous := seriesWindows(period, days, today)

	return &dashboard.SeriesResponse{
		Period:   period,
		Current:  s.buildPoints(ctx, current, total),
		Previous: s.buildPoints(ctx, previous, total),
	}, nil
}

func (s *DashboardServiceImpl) buildPoints(ctx context.Context, w window, total int64) []dashboard.Point {
	points := make([]dashboard.Point, w.days)

	var g errgroup.Group
	g.SetLimit(seriesConcurrency)

	for i := range points {
		date := w.start.AddDate(0, 0, i)
		points[i] = dashboard.Point{
			Label: date.Weekday().String()[:3],
			Date:  date.Format(time.DateOnly),
		}

		g.Go(func() error {
			present, err := s.RecordRepository.CountDistinctAttendees(ctx, date)
			if err != nil {
				metrics.SeriesPointFailures.Inc()
				slog.Warn("attendance series point failed, reporting 0",
					"date", points[i].Date,
					"error", err,
				)
				return nil
			}
			points[i].Value = attendanceRate(present, total)
			return nil
		})
	}

	// Every goroutine swallows its own error
	_ = g.Wait()

	return points
}
