package update_booking

import (
	"fmt"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/strset"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// validateRequest validates the request fields against the slot grid.
func validateRequest(req *Request, grid timeslot.Grid) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := grid.Check(req.Time); err != nil {
		return fmt.Errorf("%w: %s", ErrOffGridTime, req.Time)
	}

	if req.DentistID != nil && *req.DentistID <= 0 {
		return fmt.Errorf("%w: dentistID must be positive", ErrInvalidInput)
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.Note != nil && len([]rune(*req.Note)) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}
	for _, svc := range req.OtherServices {
		if len([]rune(svc)) > domain.MaxOtherServiceLength {
			return fmt.Errorf("%w: free-text service exceeds %d characters", ErrInvalidInput, domain.MaxOtherServiceLength)
		}
	}

	serviceIDs, otherServices := normalizeServices(req.ServiceIDs, req.OtherServices)
	if len(serviceIDs) == 0 && len(otherServices) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	return nil
}

// normalizeServices deduplicates catalog ids (keeping order) and
// normalizes the free-text service list.
func normalizeServices(serviceIDs []int64, otherServices []string) ([]int64, []string) {
	ids := make([]int64, 0, len(serviceIDs))
	seen := make(map[int64]struct{}, len(serviceIDs))
	for _, id := range serviceIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, strset.NormalizeUnique(otherServices)
}
