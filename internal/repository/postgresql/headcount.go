package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-core-go/internal/pkg/database"
)

type headcountRepositoryImpl struct {
	db *database.DB
}

func NewHeadcountRepository(db *database.DB) employee.HeadcountRepository {
	return &headcountRepositoryImpl{db: db}
}

// CountActiveEmployees implements employee.HeadcountRepository.
func (r *headcountRepositoryImpl) CountActiveEmployees(ctx context.Context, excludingRole string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM users WHERE is_active AND role <> $1`

	var count int64
	if err := q.QueryRow(ctx, query, excludingRole).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

// CountActiveEmployeesCreatedBefore implements employee.HeadcountRepository.
func (r *headcountRepositoryImpl) CountActiveEmployeesCreatedBefore(ctx context.Context, excludingRole string, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM users WHERE is_active AND role <> $1 AND created_at < $2`

	var count int64
	if err := q.QueryRow(ctx, query, excludingRole, before).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees created before %s: %w", before.Format(time.DateOnly), err)
	}
	return count, nil
}
