package sysconfig

import (
	"context"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
)

// Store is the cached read path over system configuration plus its write path
type Store interface {
	// Get returns the value for key or def when it is missing, empty, or the store is unreachable
	Get(ctx context.Context, key, def string) string

	// Set upserts key and invalidates the cache. It reports success instead of returning an error.
	Set(ctx context.Context, key, value string, description *string) bool

	// Invalidate drops the cached snapshot so the next read refreshes
	Invalidate()

	// GetAll returns every entry as {key: {value, description}}
	GetAll(ctx context.Context) (map[string]EntryValue, error)

	GetTimeOfDay(ctx context.Context, key string, def attendance.TimeOfDay) attendance.TimeOfDay
	GetInt(ctx context.Context, key string, def int) int
	GetBool(ctx context.Context, key string, def bool) bool
	GetFloat(ctx context.Context, key string, def float64) float64

	// Thresholds resolves the classifier thresholds with their fallbacks
	Thresholds(ctx context.Context) attendance.Thresholds
}

// SystemConfigService is the administrative surface used by the HTTP layer
type SystemConfigService interface {
	ListConfigs(ctx context.Context) (ListConfigsResponse, error)
	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (UpdateConfigResponse, error)
	InitializeDefaults(ctx context.Context) (InitializeDefaultsResponse, error)
	InvalidateCache(ctx context.Context)
}
