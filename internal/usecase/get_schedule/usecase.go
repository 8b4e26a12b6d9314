package get_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// UseCase renders the multi-day timetable: one cell per grid slot per
// date, each cell carrying its bookings, its active count and the
// ceiling it is measured against.
type UseCase struct {
	bookingRepo  BookingRepository
	dentistRepo  DentistRepository
	settingsRepo SettingsRepository
	grid         timeslot.Grid
	logger       Logger
}

// NewUseCase creates a new get-schedule use case
func NewUseCase(
	bookingRepo BookingRepository,
	dentistRepo DentistRepository,
	settingsRepo SettingsRepository,
	grid timeslot.Grid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		dentistRepo:  dentistRepo,
		settingsRepo: settingsRepo,
		grid:         grid,
		logger:       logger,
	}
}

// Execute builds the timetable for the requested window.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: from=%s to=%s dentist=%v includeUnassigned=%v",
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat),
		req.DentistID, req.IncludeUnassigned)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	activeDentists, err := uc.dentistRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to count dentists: %v", err)
		return nil, fmt.Errorf("%w: failed to count dentists: %v", ErrInternal, err)
	}

	dateFrom := truncateToDate(req.DateFrom)
	dateTo := truncateToDate(req.DateTo)

	entries, err := uc.bookingRepo.ListInRange(ctx, domain.BookingsFilter{
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})
	if err != nil {
		uc.logger.Error("GetSchedule: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	mode := resolveMode(req.DentistID, req.IncludeUnassigned)
	snapshot := domain.CapacitySnapshot{ActiveDentists: activeDentists, Settings: *settings}
	index := buildCellIndex(entries, uc.grid)
	slots := uc.grid.Slots()
	capacity := cellCapacity(snapshot, mode)

	days := make([]Day, 0)
	for date := dateFrom; !date.After(dateTo); date = date.AddDate(0, 0, 1) {
		day := Day{
			Date:  date.Format(domain.DateFormat),
			Cells: make([]Cell, 0, len(slots)),
		}

		for _, slot := range slots {
			bucket := index[cellKey{date: day.Date, time: slot.Display()}]

			shown := make([]*domain.ScheduleEntry, 0, len(bucket))
			for _, e := range bucket {
				if inPool(e, mode, req.DentistID) {
					shown = append(shown, e)
				}
			}

			cell := Cell{
				Time:     slot.Display(),
				Capacity: capacity,
				Entries:  make([]Entry, 0, len(shown)),
			}

			if mode == modeDentistAndUnassigned {
				dentistPool, unassignedPool := splitPools(shown)
				cell.BookedCount = countActive(dentistPool)
				cell.Unassigned = &PoolReport{
					BookedCount: countActive(unassignedPool),
					Capacity:    snapshot.UnassignedCapacity(),
				}
			} else {
				cell.BookedCount = countActive(shown)
			}

			for _, e := range shown {
				cell.Entries = append(cell.Entries, toEntry(e))
			}

			day.Cells = append(day.Cells, cell)
		}

		days = append(days, day)
	}

	uc.logger.Info("GetSchedule: %d days, %d bookings", len(days), len(entries))

	return &Response{
		GridOpen:    uc.grid.Open.Display(),
		GridClose:   uc.grid.Close.Display(),
		StepMinutes: uc.grid.StepMinutes,
		Capacity: CapacityInfo{
			ActiveDentists:         activeDentists,
			SlotCapacityPerDentist: settings.SlotCapacityPerDentist,
			SlotCapacityUnassigned: settings.SlotCapacityUnassigned,
			AggregateCapacity:      snapshot.AggregateCapacity(),
		},
		Days: days,
	}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
