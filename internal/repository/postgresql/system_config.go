package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/sysconfig"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/database"
)

type systemConfigRepositoryImpl struct {
	db *database.DB
}

func NewSystemConfigRepository(db *database.DB) sysconfig.ConfigRepository {
	return &systemConfigRepositoryImpl{db: db}
}

// ReadAll implements sysconfig.ConfigRepository.
func (r *systemConfigRepositoryImpl) ReadAll(ctx context.Context) ([]sysconfig.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT config_key, config_value, description, updated_at
		FROM system_configs
		ORDER BY config_key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query system configs: %w", err)
	}
	defer rows.Close()

	var entries []sysconfig.Entry
	for rows.Next() {
		var e sysconfig.Entry
		if err := rows.Scan(&e.Key, &e.Value, &e.Description, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan system config: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate system configs: %w", err)
	}

	return entries, nil
}

// Upsert implements sysconfig.ConfigRepository.
func (r *systemConfigRepositoryImpl) Upsert(ctx context.Context, key, value string, description *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO system_configs (config_key, config_value, description, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (config_key) DO UPDATE
		SET config_value = EXCLUDED.config_value,
			description = COALESCE(EXCLUDED.description, system_configs.description),
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, key, value, description); err != nil {
		return fmt.Errorf("failed to upsert system config %s: %w", key, err)
	}
	return nil
}

// InsertIfMissing implements sysconfig.ConfigRepository.
func (r *systemConfigRepositoryImpl) InsertIfMissing(ctx context.Context, entry sysconfig.Entry) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO system_configs (config_key, config_value, description, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (config_key) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, entry.Key, entry.Value, entry.Description)
	if err != nil {
		return false, fmt.Errorf("failed to insert default system config %s: %w", entry.Key, err)
	}
	return tag.RowsAffected() == 1, nil
}
