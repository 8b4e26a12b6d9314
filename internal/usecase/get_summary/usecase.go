package get_summary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// UseCase builds the printable day-sheet: every matching booking,
// grouped by date or by dentist, rows ordered by (date, time).
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase creates a new get-summary use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute returns the grouped summary for the requested window.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSummary: from=%s to=%s dentist=%v cancelled=%v unassigned=%v groupBy=%q",
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat),
		req.DentistID, req.IncludeCancelled, req.IncludeUnassigned, req.GroupBy)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSummary: validation failed: %v", err)
		return nil, err
	}

	groupBy := req.GroupBy
	if groupBy == "" {
		groupBy = GroupByDate
	}

	entries, err := uc.bookingRepo.ListForSummary(ctx, domain.SummaryFilter{
		DateFrom:          truncateToDate(req.DateFrom),
		DateTo:            truncateToDate(req.DateTo),
		DentistID:         req.DentistID,
		IncludeCancelled:  req.IncludeCancelled,
		IncludeUnassigned: req.IncludeUnassigned,
	})
	if err != nil {
		uc.logger.Error("GetSummary: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	groups := groupEntries(entries, groupBy)

	uc.logger.Info("GetSummary: %d bookings in %d groups", len(entries), len(groups))

	return &Response{
		GroupBy: groupBy,
		Groups:  groups,
		Total:   len(entries),
	}, nil
}

// groupEntries buckets rows under their group key. Rows arrive ordered
// by (date, time) and keep that order inside each group; group keys are
// sorted lexicographically.
func groupEntries(entries []*domain.ScheduleEntry, groupBy string) []Group {
	buckets := make(map[string][]Row)
	for _, e := range entries {
		key := e.BookingDate.Format(domain.DateFormat)
		if groupBy == GroupByDentist {
			key = e.DentistLabel()
		}
		buckets[key] = append(buckets[key], toRow(e))
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]Group, len(keys))
	for i, key := range keys {
		groups[i] = Group{Key: key, Rows: buckets[key]}
	}
	return groups
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
