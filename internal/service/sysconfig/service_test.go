package sysconfig

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestService(repo *fakeConfigRepo, defaults []sysconfig.Entry) (sysconfig.SystemConfigService, sysconfig.Store) {
	store, _ := newTestStore(repo)
	return NewSystemConfigService(store, repo, defaults), store
}

func TestSystemConfigService_UpdateConfig_Success(t *testing.T) {
	ctx := context.Background()
	repo := newFakeConfigRepo(map[string]string{"late_threshold": "09:00:00"})
	svc, store := newTestService(repo, nil)

	store.Get(ctx, "late_threshold", "")

	resp, err := svc.UpdateConfig(ctx, sysconfig.UpdateConfigRequest{
		Key:         "late_threshold",
		Value:       "09:30",
		Description: strPtr("Late after"),
	})
	require.NoError(t, err)
	assert.True(t, resp.RequiresRefresh)
	assert.Equal(t, "09:30", store.Get(ctx, "late_threshold", ""))
	assert.Equal(t, "Late after", *repo.entries["late_threshold"].Description)
}

func TestSystemConfigService_UpdateConfig_ValidationError(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(newFakeConfigRepo(nil), nil)

	cases := []sysconfig.UpdateConfigRequest{
		{Key: "late_threshold", Value: "nine"},
		{Key: "grace_period_minutes", Value: "5.5"},
		{Key: "recognition_threshold", Value: "high"},
		{Key: "daily_reports", Value: "maybe"},
		{Key: "Bad-Key", Value: "x"},
		{Key: "company_name", Value: "   "},
	}
	for _, req := range cases {
		_, err := svc.UpdateConfig(ctx, req)
		var verrs validator.ValidationErrors
		assert.True(t, errors.As(err, &verrs), "expected validation error for %+v", req)
	}
}

func TestSystemConfigService_UpdateConfig_WriteFailed(t *testing.T) {
	repo := newFakeConfigRepo(nil)
	repo.upsertErr = errStoreDown
	svc, _ := newTestService(repo, nil)

	_, err := svc.UpdateConfig(context.Background(), sysconfig.UpdateConfigRequest{Key: "company_name", Value: "Acme"})
	assert.ErrorIs(t, err, sysconfig.ErrConfigWriteFailed)
}

func TestSystemConfigService_InitializeDefaults_KeepsExisting(t *testing.T) {
	ctx := context.Background()
	repo := newFakeConfigRepo(map[string]string{"work_start_time": "07:30:00"})
	defaults := []sysconfig.Entry{
		{Key: "work_start_time", Value: "09:00:00"},
		{Key: "work_end_time", Value: "17:00:00"},
	}
	svc, store := newTestService(repo, defaults)

	store.Get(ctx, "work_end_time", "")

	resp, err := svc.InitializeDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Inserted)
	assert.Equal(t, 2, resp.Total)

	assert.Equal(t, "07:30:00", store.Get(ctx, "work_start_time", ""))
	assert.Equal(t, "17:00:00", store.Get(ctx, "work_end_time", ""), "cache invalidated after seeding")
}

func TestSystemConfigService_ListConfigs(t *testing.T) {
	svc, _ := newTestService(newFakeConfigRepo(map[string]string{"a": "1", "b": "2"}), nil)

	resp, err := svc.ListConfigs(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Configs, 2)
}
