package dentist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/dbmetrics"
	"github.com/smiledental/DCS-SchedulingService/pkg/psqlbuilder"
)

// Repository persists dentists in PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new dentist repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns dentists ordered by name, optionally only active ones
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Dentist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"code",
		"name",
		"phone",
		"is_active",
	).
		From("dentists").
		OrderBy("name ASC")

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

	dentists := make([]*domain.Dentist, 0)
	for rows.Next() {
		var d domain.Dentist
		if err := rows.Scan(&d.ID, &d.Code, &d.Name, &d.Phone, &d.Active); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		dentists = append(dentists, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return dentists, nil
}

// GetByID fetches a dentist by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Dentist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"name",
		"phone",
		"is_active",
	).
		From("dentists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Dentist
	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Code, &d.Name, &d.Phone, &d.Active)

	if err == sql.ErrNoRows {
		return nil, ErrDentistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan dentist: %v", ErrScanRow, err)
	}

	return &d, nil
}

// CountActive returns the number of active dentists, the multiplier of
// the aggregate capacity ceiling.
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("dentists").
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
