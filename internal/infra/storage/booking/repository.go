package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/dbmetrics"
	"github.com/smiledental/DCS-SchedulingService/pkg/psqlbuilder"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// serviceNamesSubquery resolves the denormalized service name list for a
// booking row at query time.
const serviceNamesSubquery = `(SELECT COALESCE(array_agg(s.name_th ORDER BY s.name_th), '{}')
	FROM services s WHERE s.id = ANY(b.service_ids)) AS service_names`

// Repository persists bookings in PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking. When the context carries an active
// transaction it is used, so the caller can pair the insert with a
// FOR UPDATE read of the target cell.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_date",
			"booking_time",
			"dentist_id",
			"patient_id",
			"walkin_name_th",
			"walkin_name_en",
			"walkin_phone",
			"service_ids",
			"other_services",
			"note",
			"status",
			"is_deleted",
		).
		Values(
			b.BookingDate,
			b.BookingTime.Storage(),
			b.DentistID,
			b.Patient.PatientID,
			b.Patient.WalkinNameTH,
			b.Patient.WalkinNameEN,
			b.Patient.WalkinPhone,
			pq.Array(b.ServiceIDs),
			pq.Array(b.OtherServices),
			b.Note,
			b.Status,
			b.IsDeleted,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches the write-side booking entity
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_date",
		"booking_time",
		"dentist_id",
		"patient_id",
		"walkin_name_th",
		"walkin_name_en",
		"walkin_phone",
		"service_ids",
		"other_services",
		"note",
		"status",
		"is_deleted",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		b           domain.Booking
		bookingTime string
		serviceIDs  pq.Int64Array
		other       pq.StringArray
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.BookingDate,
		&bookingTime,
		&b.DentistID,
		&b.Patient.PatientID,
		&b.Patient.WalkinNameTH,
		&b.Patient.WalkinNameEN,
		&b.Patient.WalkinPhone,
		&serviceIDs,
		&other,
		&b.Note,
		&b.Status,
		&b.IsDeleted,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.BookingTime, err = timeslot.ParseStorage(bookingTime)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - parse booking_time: %v", ErrScanRow, err)
	}
	b.ServiceIDs = serviceIDs
	b.OtherServices = other
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// Update rewrites the mutable fields of a booking. Identity, patient
// binding and lifecycle flags are not touched here; lifecycle
// transitions go through Cancel and SoftDelete.
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", b.BookingDate).
		Set("booking_time", b.BookingTime.Storage()).
		Set("dentist_id", b.DentistID).
		Set("service_ids", pq.Array(b.ServiceIDs)).
		Set("other_services", pq.Array(b.OtherServices)).
		Set("note", b.Note).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel moves a booking to the cancelled status
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	return r.setField(ctx, id, "status", domain.StatusCancelled, "Cancel")
}

// SoftDelete marks a booking deleted without removing the row
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	return r.setField(ctx, id, "is_deleted", true, "SoftDelete")
}

func (r *Repository) setField(ctx context.Context, id int64, column string, value interface{}, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set(column, value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// projectionColumns is the shared column list for read projections.
var projectionColumns = []string{
	"b.id",
	"b.booking_date",
	"b.booking_time",
	"b.status",
	"b.is_deleted",
	"b.dentist_id",
	"d.name AS dentist_name",
	"d.code AS dentist_code",
	"b.patient_id",
	"p.hn",
	"p.name_th",
	"p.name_en",
	"b.walkin_name_th",
	"b.walkin_name_en",
	"b.walkin_phone",
	"b.service_ids",
	serviceNamesSubquery,
	"b.other_services",
	"b.note",
}

func projectionSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(projectionColumns...).
		From("bookings b").
		LeftJoin("dentists d ON d.id = b.dentist_id").
		LeftJoin("patients p ON p.id = b.patient_id")
}

// ListInRange returns the non-deleted bookings of a date range as read
// projections, ordered by (date, time). This is the cell-index source
// for the multi-day timetable; cancelled bookings are included so the
// view can badge them, capacity accounting filters them out later.
//
// Inside a transaction the rows are locked FOR UPDATE so the write path
// validates against the same notion of "bookings in cell" that readers
// see.
func (r *Repository) ListInRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := projectionSelect().
		Where(squirrel.GtOrEq{"b.booking_date": filter.DateFrom}).
		Where(squirrel.LtOrEq{"b.booking_date": filter.DateTo}).
		Where(squirrel.Eq{"b.is_deleted": false}).
		OrderBy("b.booking_date ASC, b.booking_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows, "ListInRange")
}

// ListFiltered returns one page of the management listing plus the total
// count of rows matching the same predicate.
func (r *Repository) ListFiltered(ctx context.Context, filter domain.BookingsFilter, limit, offset uint64) ([]*domain.ScheduleEntry, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	predicate := filteredPredicate(filter)

	selectBuilder := applyPredicate(projectionSelect(), predicate).
		OrderBy("b.booking_date ASC, b.booking_time ASC").
		Limit(limit).
		Offset(offset)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListFiltered - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListFiltered - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries, err := r.scanEntries(rows, "ListFiltered")
	if err != nil {
		return nil, 0, err
	}

	// Total must reflect the same predicate, independent of the page.
	countBuilder := applyPredicate(
		psqlbuilder.Select("COUNT(*)").
			From("bookings b").
			LeftJoin("dentists d ON d.id = b.dentist_id").
			LeftJoin("patients p ON p.id = b.patient_id"),
		predicate,
	)

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListFiltered - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListFiltered - scan count: %v", ErrScanRow, err)
	}

	return entries, total, nil
}

// ListForSummary returns the rows of the printable summary view,
// unpaginated, ordered by (date, time).
func (r *Repository) ListForSummary(ctx context.Context, filter domain.SummaryFilter) ([]*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := projectionSelect().
		Where(squirrel.GtOrEq{"b.booking_date": filter.DateFrom}).
		Where(squirrel.LtOrEq{"b.booking_date": filter.DateTo}).
		Where(squirrel.Eq{"b.is_deleted": false}).
		OrderBy("b.booking_date ASC, b.booking_time ASC")

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": domain.StatusBooked})
	}

	if filter.DentistID != nil {
		if filter.IncludeUnassigned {
			selectBuilder = selectBuilder.Where(squirrel.Or{
				squirrel.Eq{"b.dentist_id": *filter.DentistID},
				squirrel.Eq{"b.dentist_id": nil},
			})
		} else {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"b.dentist_id": *filter.DentistID})
		}
	} else if !filter.IncludeUnassigned {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.dentist_id": nil})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForSummary - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForSummary - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows, "ListForSummary")
}

// filteredPredicate builds the shared WHERE clauses of ListFiltered and
// its count query.
func filteredPredicate(filter domain.BookingsFilter) []squirrel.Sqlizer {
	predicate := []squirrel.Sqlizer{
		squirrel.GtOrEq{"b.booking_date": filter.DateFrom},
		squirrel.LtOrEq{"b.booking_date": filter.DateTo},
	}

	if !filter.IncludeDeleted {
		predicate = append(predicate, squirrel.Eq{"b.is_deleted": false})
	}
	if filter.DentistID != nil {
		predicate = append(predicate, squirrel.Eq{"b.dentist_id": *filter.DentistID})
	}
	if filter.Status != nil {
		predicate = append(predicate, squirrel.Eq{"b.status": *filter.Status})
	}
	if filter.SearchTerm != "" {
		pattern := "%" + psqlbuilder.EscapeLike(filter.SearchTerm) + "%"
		predicate = append(predicate, squirrel.Or{
			squirrel.ILike{"p.hn": pattern},
			squirrel.ILike{"b.walkin_name_th": pattern},
			squirrel.ILike{"b.walkin_name_en": pattern},
			squirrel.ILike{"p.search_text": pattern},
		})
	}

	return predicate
}

func applyPredicate(builder squirrel.SelectBuilder, predicate []squirrel.Sqlizer) squirrel.SelectBuilder {
	for _, clause := range predicate {
		builder = builder.Where(clause)
	}
	return builder
}

// scanEntries scans projection rows into schedule entries
func (r *Repository) scanEntries(rows *sql.Rows, op string) ([]*domain.ScheduleEntry, error) {
	entries := make([]*domain.ScheduleEntry, 0)

	for rows.Next() {
		var (
			e            domain.ScheduleEntry
			bookingTime  string
			serviceIDs   pq.Int64Array
			serviceNames pq.StringArray
			other        pq.StringArray
		)

		err := rows.Scan(
			&e.ID,
			&e.BookingDate,
			&bookingTime,
			&e.Status,
			&e.IsDeleted,
			&e.DentistID,
			&e.DentistName,
			&e.DentistCode,
			&e.PatientID,
			&e.HN,
			&e.PatientNameTH,
			&e.PatientNameEN,
			&e.WalkinNameTH,
			&e.WalkinNameEN,
			&e.WalkinPhone,
			&serviceIDs,
			&serviceNames,
			&other,
			&e.Note,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		e.BookingTime, err = timeslot.ParseStorage(bookingTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - parse booking_time: %v", ErrScanRow, op, err)
		}
		e.ServiceIDs = serviceIDs
		e.ServiceNames = serviceNames
		e.OtherServices = other

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return entries, nil
}
