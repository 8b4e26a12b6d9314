package patient

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/dbmetrics"
	"github.com/smiledental/DCS-SchedulingService/pkg/psqlbuilder"
)

// Repository reads the patient directory in PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new patient repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Search finds patients whose HN, name or search text matches the term.
// Results are ordered by HN for stable paging.
func (r *Repository) Search(ctx context.Context, term string, limit, offset uint64) ([]*domain.PatientLite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pattern := "%" + psqlbuilder.EscapeLike(term) + "%"

	query, args, err := psqlbuilder.Select(
		"id",
		"hn",
		"name_th",
		"name_en",
		"phone",
	).
		From("patients").
		Where(squirrel.Or{
			squirrel.ILike{"hn": pattern},
			squirrel.ILike{"name_th": pattern},
			squirrel.ILike{"name_en": pattern},
			squirrel.ILike{"search_text": pattern},
		}).
		OrderBy("hn ASC").
		Limit(limit).
		Offset(offset).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	patients := make([]*domain.PatientLite, 0)
	for rows.Next() {
		var p domain.PatientLite
		if err := rows.Scan(&p.ID, &p.HN, &p.NameTH, &p.NameEN, &p.Phone); err != nil {
			return nil, fmt.Errorf("%w: Search - scan row: %v", ErrScanRow, err)
		}
		patients = append(patients, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %v", ErrScanRow, err)
	}

	return patients, nil
}

// GetLiteByID fetches a single patient directory entry by id
func (r *Repository) GetLiteByID(ctx context.Context, id int64) (*domain.PatientLite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"hn",
		"name_th",
		"name_en",
		"phone",
	).
		From("patients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLiteByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.PatientLite
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.HN, &p.NameTH, &p.NameEN, &p.Phone)

	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLiteByID - scan patient: %v", ErrScanRow, err)
	}

	return &p, nil
}
