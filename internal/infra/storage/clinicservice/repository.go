package clinicservice

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/dbmetrics"
	"github.com/smiledental/DCS-SchedulingService/pkg/psqlbuilder"
)

// Repository persists the clinic service catalog in PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new clinic service repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns catalog services ordered by id, optionally only active ones
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.ClinicService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name_th",
		"is_active",
	).
		From("services").
		OrderBy("id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.ClinicService, 0)
	for rows.Next() {
		var s domain.ClinicService
		if err := rows.Scan(&s.ID, &s.NameTH, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// CountExisting returns how many of the given service ids exist in the catalog.
// Used to validate booking service references.
func (r *Repository) CountExisting(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("services").
		Where("id = ANY(?)", pq.Array(ids)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountExisting - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountExisting - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
