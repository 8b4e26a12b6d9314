package get_schedule

import (
	"fmt"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	if req.DateTo.Before(req.DateFrom) {
		return fmt.Errorf("%w: dateTo before dateFrom", ErrInvalidDateRange)
	}

	days := int(req.DateTo.Sub(req.DateFrom).Hours()/24) + 1
	if days > domain.MaxScheduleRangeDays {
		return fmt.Errorf("%w: %d days exceeds %d", ErrRangeTooLarge, days, domain.MaxScheduleRangeDays)
	}

	if req.DentistID != nil && *req.DentistID <= 0 {
		return fmt.Errorf("%w: dentistID must be positive", ErrInvalidInput)
	}

	return nil
}
