package sysconfig

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
)

type SystemConfigServiceImpl struct {
	store    sysconfig.Store
	repo     sysconfig.ConfigRepository
	defaults []sysconfig.Entry
}

func NewSystemConfigService(store sysconfig.Store, repo sysconfig.ConfigRepository, defaults []sysconfig.Entry) sysconfig.SystemConfigService {
	return &SystemConfigServiceImpl{
		store:    store,
		repo:     repo,
		defaults: defaults,
	}
}

// ListConfigs implements sysconfig.SystemConfigService.
func (s *SystemConfigServiceImpl) ListConfigs(ctx context.Context) (sysconfig.ListConfigsResponse, error) {
	configs, err := s.store.GetAll(ctx)
	if err != nil {
		return sysconfig.ListConfigsResponse{}, err
	}
	return sysconfig.ListConfigsResponse{Configs: configs}, nil
}

// UpdateConfig implements sysconfig.SystemConfigService.
func (s *SystemConfigServiceImpl) UpdateConfig(ctx context.Context, req sysconfig.UpdateConfigRequest) (sysconfig.UpdateConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return sysconfig.UpdateConfigResponse{}, err
	}

	if ok := s.store.Set(ctx, req.Key, req.Value, req.Description); !ok {
		return sysconfig.UpdateConfigResponse{}, fmt.Errorf("%w: %s", sysconfig.ErrConfigWriteFailed, req.Key)
	}

	slog.Info("system config changed", "key", req.Key, "value", req.Value, "kind", sysconfig.KindOf(req.Key))

	return sysconfig.UpdateConfigResponse{
		Key:             req.Key,
		Value:           req.Value,
		RequiresRefresh: true,
	}, nil
}

// InitializeDefaults implements sysconfig.SystemConfigService.
// Existing keys are left as they are.
func (s *SystemConfigServiceImpl) InitializeDefaults(ctx context.Context) (sysconfig.InitializeDefaultsResponse, error) {
	defer s.store.Invalidate()

	inserted := 0
	for _, entry := range s.defaults {
		ok, err := s.repo.InsertIfMissing(ctx, entry)
		if err != nil {
			return sysconfig.InitializeDefaultsResponse{Inserted: inserted, Total: len(s.defaults)},
				fmt.Errorf("%w: default %s: %v", sysconfig.ErrConfigWriteFailed, entry.Key, err)
		}
		if ok {
			inserted++
		}
	}

	slog.Info("default system configs initialized", "inserted", inserted, "total", len(s.defaults))

	return sysconfig.InitializeDefaultsResponse{
		Inserted: inserted,
		Total:    len(s.defaults),
	}, nil
}

// InvalidateCache implements sysconfig.SystemConfigService.
func (s *SystemConfigServiceImpl) InvalidateCache(ctx context.Context) {
	s.store.Invalidate()
}
