package sysconfig

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

type ConfigStoreImpl struct {
	repo  sysconfig.ConfigRepository
	cache *Cache
	group singleflight.Group
}

func NewConfigStore(repo sysconfig.ConfigRepository, cache *Cache) sysconfig.Store {
	return &ConfigStoreImpl{
		repo:  repo,
		cache: cache,
	}
}

// refreshTimeout bounds one shared reload of the snapshot
const refreshTimeout = 5 * time.Second

// snapshot serves the cached map or reloads it. Concurrent reloads within one generation share a single query.
// The shared query runs detached from the caller that started it, so a cancelled caller only fails itself.
func (s *ConfigStoreImpl) snapshot(ctx context.Context) (map[string]sysconfig.EntryValue, error) {
	if snap, ok := s.cache.Lookup(); ok {
		return snap, nil
	}

	generation := s.cache.Generation()
	ch := s.group.DoChan(strconv.FormatUint(generation, 10), func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		entries, err := s.repo.ReadAll(refreshCtx)
		if err != nil {
			metrics.ConfigCacheRefreshes.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: %v", sysconfig.ErrConfigUnavailable, err)
		}

		snap := make(map[string]sysconfig.EntryValue, len(entries))
		for _, entry := range entries {
			snap[entry.Key] = sysconfig.EntryValue{
				Value:       entry.Value,
				Description: entry.Description,
			}
		}
		s.cache.Replace(generation, snap)
		metrics.ConfigCacheRefreshes.WithLabelValues("ok").Inc()
		slog.Debug("system config cache refreshed", "entries", len(snap))
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", sysconfig.ErrConfigUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[string]sysconfig.EntryValue), nil
	}
}

// Get implements sysconfig.Store.
func (s *ConfigStoreImpl) Get(ctx context.Context, key, def string) string {
	snap, err := s.snapshot(ctx)
	if err != nil {
		slog.Warn("using default system config", "key", key, "error", err)
		return def
	}

	entry, ok := snap[key]
	if !ok || entry.Value == "" {
		return def
	}
	return entry.Value
}

// Set implements sysconfig.Store.
func (s *ConfigStoreImpl) Set(ctx context.Context, key, value string, description *string) bool {
	err := s.repo.Upsert(ctx, key, value, description)
	// Invalidate even on failure: the write may have landed before the error surfaced
	s.cache.Invalidate()
	if err != nil {
		slog.Error("failed to set system config", "key", key, "error", err)
		return false
	}
	return true
}

// Invalidate implements sysconfig.Store.
func (s *ConfigStoreImpl) Invalidate() {
	s.cache.Invalidate()
	slog.Info("system config cache cleared")
}

// GetAll implements sysconfig.Store.
func (s *ConfigStoreImpl) GetAll(ctx context.Context) (map[string]sysconfig.EntryValue, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return map[string]sysconfig.EntryValue{}, err
	}

	result := make(map[string]sysconfig.EntryValue, len(snap))
	for key, entry := range snap {
		result[key] = entry
	}
	return result, nil
}

// GetTimeOfDay implements sysconfig.Store.
func (s *ConfigStoreImpl) GetTimeOfDay(ctx context.Context, key string, def attendance.TimeOfDay) attendance.TimeOfDay {
	raw := s.Get(ctx, key, "")
	if raw == "" {
		return def
	}
	tod, err := attendance.ParseTimeOfDay(strings.TrimSpace(raw))
	if err != nil {
		slog.Warn("malformed time of day in system config", "key", key, "value", raw)
		return def
	}
	return tod
}

// GetInt implements sysconfig.Store.
func (s *ConfigStoreImpl) GetInt(ctx context.Context, key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s.Get(ctx, key, "")))
	if err != nil {
		return def
	}
	return n
}

// GetBool implements sysconfig.Store.
func (s *ConfigStoreImpl) GetBool(ctx context.Context, key string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s.Get(ctx, key, "")))
	if err != nil {
		return def
	}
	return b
}

// GetFloat implements sysconfig.Store.
func (s *ConfigStoreImpl) GetFloat(ctx context.Context, key string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s.Get(ctx, key, "")), 64)
	if err != nil {
		return def
	}
	return f
}

// Thresholds implements sysconfig.Store.
// late_threshold falls back to work_start_time, early_departure_threshold to work_end_time.
func (s *ConfigStoreImpl) Thresholds(ctx context.Context) attendance.Thresholds {
	late := attendance.MustParseTimeOfDay(sysconfig.DefaultLateThreshold)
	early := attendance.MustParseTimeOfDay(sysconfig.DefaultEarlyDepartureThreshold)

	late = s.GetTimeOfDay(ctx, sysconfig.KeyWorkStartTime, late)
	late = s.GetTimeOfDay(ctx, sysconfig.KeyLateThreshold, late)
	early = s.GetTimeOfDay(ctx, sysconfig.KeyWorkEndTime, early)
	early = s.GetTimeOfDay(ctx, sysconfig.KeyEarlyDepartureThreshold, early)

	return attendance.Thresholds{
		Late:           late,
		EarlyDeparture: early,
	}
}
