package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
	attendancesvc "github.com/cmlabs-hris/attendance-core-go/internal/service/attendance"
	"golang.org/x/sync/errgroup"
)

// PercentChange is the relative change from previous to current, rounded to one decimal.
// A zero baseline reports 100 when anything appeared and 0 when nothing did.
func PercentChange(previous, current int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	change := float64(current-previous) / float64(previous) * 100
	return math.Round(change*10) / 10
}

// ComputeDailyStats tallies every record of date. Absence is the set difference between
// the headcount and the users holding any record, so a record with only a check-in counts as present.
// The present set comes from the loaded records, so a busy day costs a count and one scan.
func (s *DashboardServiceImpl) ComputeDailyStats(ctx context.Context, date time.Time, th attendance.Thresholds, totalEmployees int64) (dashboard.DailyStats, error) {
	recordCount, err := s.RecordRepository.CountRecords(ctx, date)
	if err != nil {
		return dashboard.DailyStats{}, fmt.Errorf("failed to count attendance records: %w", err)
	}
	if recordCount == 0 {
		return dashboard.DailyStats{Absent: max(totalEmployees, 0)}, nil
	}

	records, err := s.RecordRepository.RecordsForDate(ctx, date)
	if err != nil {
		return dashboard.DailyStats{}, fmt.Errorf("failed to load attendance records: %w", err)
	}
	var stats dashboard.DailyStats
	present := make(map[int64]struct{}, len(records))
	for _, record := range records {
		present[record.UserID] = struct{}{}
		if record.Status != nil && *record.Status == attendance.StatusAbsent {
			stats.RecordedAbsent++
		}

		c := attendancesvc.ClassifyRecord(record, th)
		switch c.Status {
		case attendance.StatusOnTime:
			stats.OnTime++
		case attendance.StatusLate:
			stats.Late++
		}
		if c.EarlyDeparture {
			stats.EarlyDeparture++
		}
	}

	stats.Present = int64(len(present))
	stats.Absent = max(totalEmployees-stats.Present, 0)

	return stats, nil
}

// ComputeDashboardDelta computes both days concurrently and derives the change of every metric
func (s *DashboardServiceImpl) ComputeDashboardDelta(ctx context.Context, today, yesterday time.Time, th attendance.Thresholds, totalToday, totalYesterday int64) (*dashboard.DashboardStatsResponse, error) {
	var todayStats, yesterdayStats dashboard.DailyStats

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.ComputeDailyStats(gCtx, today, th, totalToday)
		if err != nil {
			return fmt.Errorf("today: %w", err)
		}
		todayStats = stats
		return nil
	})

	g.Go(func() error {
		stats, err := s.ComputeDailyStats(gCtx, yesterday, th, totalYesterday)
		if err != nil {
			return fmt.Errorf("yesterday: %w", err)
		}
		yesterdayStats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Time off has no source of its own; it is the presence-derived absence
	return &dashboard.DashboardStatsResponse{
		TotalEmployees:       totalToday,
		EmployeesAdded:       max(totalToday-totalYesterday, 0),
		OnTime:               todayStats.OnTime,
		OnTimeChange:         PercentChange(yesterdayStats.OnTime, todayStats.OnTime),
		LateArrival:          todayStats.Late,
		LateArrivalChange:    PercentChange(yesterdayStats.Late, todayStats.Late),
		Absent:               todayStats.Absent,
		AbsentChange:         PercentChange(yesterdayStats.Absent, todayStats.Absent),
		EarlyDeparture:       todayStats.EarlyDeparture,
		EarlyDepartureChange: PercentChange(yesterdayStats.EarlyDeparture, todayStats.EarlyDeparture),
		TimeOff:              todayStats.Absent,
		TimeOffChange:        PercentChange(yesterdayStats.Absent, todayStats.Absent),
		RecordedAbsent:       todayStats.RecordedAbsent,
		RecordedAbsentChange: PercentChange(yesterdayStats.RecordedAbsent, todayStats.RecordedAbsent),
		Date:                 today.Format(time.DateOnly),
	}, nil
}

// GetDashboardStats implements dashboard.DashboardService.
// Yesterday's headcount is everyone who already existed when today started.
func (s *DashboardServiceImpl) GetDashboardStats(ctx context.Context, today, yesterday time.Time) (*dashboard.DashboardStatsResponse, error) {
	th := s.config.Thresholds(ctx)

	var totalToday, totalYesterday int64

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.HeadcountRepository.CountActiveEmployees(gCtx, employee.RoleSuperAdmin)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		totalToday = n
		return nil
	})

	g.Go(func() error {
		n, err := s.HeadcountRepository.CountActiveEmployeesCreatedBefore(gCtx, employee.RoleSuperAdmin, attendance.DateOf(today))
		if err != nil {
			return fmt.Errorf("failed to count employees created before today: %w", err)
		}
		totalYesterday = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.ComputeDashboardDelta(ctx, today, yesterday, th, totalToday, totalYesterday)
}
