package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
)

var errQuery = errors.New("query failed")

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func clock(date, hms string) *time.Time {
	t, err := time.Parse(time.DateTime, date+" "+hms)
	if err != nil {
		panic(err)
	}
	return &t
}

func statusPtr(s attendance.Status) *attendance.Status { return &s }

// fakeRecords keys everything by YYYY-MM-DD
type fakeRecords struct {
	attendance.RecordRepository

	mu        sync.Mutex
	records   map[string][]attendance.Record
	attendees map[string]int64
	failDates map[string]bool
	queried   []string
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{
		records:   make(map[string][]attendance.Record),
		attendees: make(map[string]int64),
		failDates: make(map[string]bool),
	}
}

func (f *fakeRecords) check(date time.Time) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := date.Format(time.DateOnly)
	f.queried = append(f.queried, key)
	if f.failDates[key] {
		return key, errQuery
	}
	return key, nil
}

func (f *fakeRecords) CountRecords(ctx context.Context, date time.Time) (int64, error) {
	key, err := f.check(date)
	if err != nil {
		return 0, err
	}
	return int64(len(f.records[key])), nil
}

func (f *fakeRecords) RecordsForDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	key, err := f.check(date)
	if err != nil {
		return nil, err
	}
	return f.records[key], nil
}

func (f *fakeRecords) CountDistinctAttendees(ctx context.Context, date time.Time) (int64, error) {
	key, err := f.check(date)
	if err != nil {
		return 0, err
	}
	return f.attendees[key], nil
}

type fakeHeadcount struct {
	total         int64
	createdBefore int64
	err           error
	excluded      []string
	mu            sync.Mutex
}

func (f *fakeHeadcount) CountActiveEmployees(ctx context.Context, excludingRole string) (int64, error) {
	f.mu.Lock()
	f.excluded = append(f.excluded, excludingRole)
	f.mu.Unlock()
	return f.total, f.err
}

func (f *fakeHeadcount) CountActiveEmployeesCreatedBefore(ctx context.Context, excludingRole string, before time.Time) (int64, error) {
	return f.createdBefore, f.err
}

type thresholdStore struct {
	sysconfig.Store
	th attendance.Thresholds
}

func (s thresholdStore) Thresholds(ctx context.Context) attendance.Thresholds {
	return s.th
}

var defaultThresholds = attendance.Thresholds{
	Late:           attendance.MustParseTimeOfDay("09:00:00"),
	EarlyDeparture: attendance.MustParseTimeOfDay("17:00:00"),
}

func newTestService(records *fakeRecords, headcount *fakeHeadcount) *DashboardServiceImpl {
	return NewDashboardService(records, headcount, thresholdStore{th: defaultThresholds}).(*DashboardServiceImpl)
}
