package list_bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// UseCase serves the paginated management listing of bookings.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase creates a new list-bookings use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute returns one page of bookings ordered by (date, time) plus the
// total row count under the same filter.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListBookings: from=%s to=%s dentist=%v status=%v search=%q page=%d size=%d",
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat),
		req.DentistID, req.Status, req.SearchTerm, req.Page, req.PageSize)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListBookings: validation failed: %v", err)
		return nil, err
	}

	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = domain.DefaultPageSize
	}

	filter := domain.BookingsFilter{
		DateFrom:       truncateToDate(req.DateFrom),
		DateTo:         truncateToDate(req.DateTo),
		DentistID:      req.DentistID,
		SearchTerm:     normalizeSearchTerm(req.SearchTerm),
		IncludeDeleted: req.IncludeDeleted,
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		filter.Status = &status
	}

	limit := uint64(pageSize)
	offset := uint64(req.Page) * limit

	entries, total, err := uc.bookingRepo.ListFiltered(ctx, filter, limit, offset)
	if err != nil {
		uc.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	rows := make([]BookingRow, len(entries))
	for i, e := range entries {
		rows[i] = toRow(e)
	}

	uc.logger.Info("ListBookings: page=%d returned %d of %d bookings", req.Page, len(rows), total)

	return &Response{
		Bookings: rows,
		Page:     req.Page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
