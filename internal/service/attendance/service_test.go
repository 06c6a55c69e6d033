package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// thresholdStore serves fixed thresholds; other Store methods are unused here
type thresholdStore struct {
	sysconfig.Store
	th attendance.Thresholds
}

func (s thresholdStore) Thresholds(ctx context.Context) attendance.Thresholds {
	return s.th
}

type fakeRecordRepo struct {
	attendance.RecordRepository

	mu        sync.Mutex
	unstamped []attendance.Record
	listErr   error
	failIDs   map[int64]bool
	updated   map[int64]attendance.Status
}

func (f *fakeRecordRepo) ListUnstamped(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return f.unstamped, f.listErr
}

func (f *fakeRecordRepo) UpdateStatus(ctx context.Context, recordID int64, status attendance.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[recordID] {
		return errors.New("deadlock detected")
	}
	if f.updated == nil {
		f.updated = make(map[int64]attendance.Status)
	}
	f.updated[recordID] = status
	return nil
}

func strPtr(s string) *string { return &s }

func TestAttendanceService_Classify(t *testing.T) {
	svc := NewAttendanceService(&fakeRecordRepo{}, thresholdStore{th: defaultThresholds})

	resp, err := svc.Classify(context.Background(), attendance.ClassifyRequest{
		CheckIn:  strPtr("09:00"),
		CheckOut: strPtr("2024-03-01T16:59:59Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, resp.Status)
	assert.True(t, resp.EarlyDeparture)
	assert.Equal(t, defaultThresholds, resp.Thresholds)
}

func TestAttendanceService_Classify_NoCheckIn(t *testing.T) {
	svc := NewAttendanceService(&fakeRecordRepo{}, thresholdStore{th: defaultThresholds})

	resp, err := svc.Classify(context.Background(), attendance.ClassifyRequest{CheckIn: strPtr("  ")})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, resp.Status)
}

func TestAttendanceService_Classify_InvalidInput(t *testing.T) {
	svc := NewAttendanceService(&fakeRecordRepo{}, thresholdStore{th: defaultThresholds})

	_, err := svc.Classify(context.Background(), attendance.ClassifyRequest{
		CheckIn:  strPtr("quarter past nine"),
		CheckOut: strPtr("25:00"),
	})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
}

func TestAttendanceService_StampPendingStatuses(t *testing.T) {
	repo := &fakeRecordRepo{
		unstamped: []attendance.Record{
			{ID: 1, CheckIn: at("08:30:00.000")},
			{ID: 2, CheckIn: at("09:45:00.000")},
			{ID: 3, CheckIn: at("09:05:00.000")},
			{ID: 4},
		},
		failIDs: map[int64]bool{3: true},
	}
	svc := NewAttendanceService(repo, thresholdStore{th: defaultThresholds})

	n, err := svc.StampPendingStatuses(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, map[int64]attendance.Status{
		1: attendance.StatusOnTime,
		2: attendance.StatusLate,
	}, repo.updated)
}

func TestAttendanceService_StampPendingStatuses_ListError(t *testing.T) {
	repo := &fakeRecordRepo{listErr: errors.New("connection reset")}
	svc := NewAttendanceService(repo, thresholdStore{th: defaultThresholds})

	_, err := svc.StampPendingStatuses(context.Background(), time.Now())
	assert.ErrorContains(t, err, "connection reset")
}
