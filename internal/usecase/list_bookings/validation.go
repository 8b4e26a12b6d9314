package list_bookings

import (
	"fmt"
	"strings"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	if req.DateTo.Before(req.DateFrom) {
		return fmt.Errorf("%w: dateTo before dateFrom", ErrInvalidDateRange)
	}

	if req.DentistID != nil && *req.DentistID <= 0 {
		return fmt.Errorf("%w: dentistID must be positive", ErrInvalidInput)
	}

	if req.Page < 0 {
		return fmt.Errorf("%w: page must not be negative", ErrInvalidInput)
	}
	if req.PageSize < 0 || req.PageSize > domain.MaxPageSize {
		return fmt.Errorf("%w: pageSize must be in [0, %d]", ErrInvalidInput, domain.MaxPageSize)
	}

	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return err
		}
	}

	return nil
}

func validateStatus(status string) error {
	switch domain.BookingStatus(status) {
	case domain.StatusBooked, domain.StatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
}

// normalizeSearchTerm trims the term and drops it below the minimum
// length, so a one-character query never becomes a directory scan.
func normalizeSearchTerm(term string) string {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < domain.MinSearchTermLength {
		return ""
	}
	return term
}
