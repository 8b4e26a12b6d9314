package get_summary

import "fmt"

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

	switch req.GroupBy {
	case "", GroupByDate, GroupByDentist:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGroupBy, req.GroupBy)
	}
}
