package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	bookingRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/booking"
	dentistRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/dentist"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// UseCase reschedules a booking: date, time, dentist, services and note
// can change; the patient binding and the lifecycle state cannot.
type UseCase struct {
	bookingRepo  BookingRepository
	dentistRepo  DentistRepository
	serviceRepo  ClinicServiceRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	grid         timeslot.Grid
	logger       Logger
}

// NewUseCase creates a new update-booking use case
func NewUseCase(
	bookingRepo BookingRepository,
	dentistRepo DentistRepository,
	serviceRepo ClinicServiceRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	grid timeslot.Grid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		dentistRepo:  dentistRepo,
		serviceRepo:  serviceRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		grid:         grid,
		logger:       logger,
	}
}

// Execute validates and applies the update inside a serializable
// transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d date=%s time=%s dentist=%v",
		req.ID, req.Date.Format(domain.DateFormat), req.Time, req.DentistID)

	if err := validateRequest(req, uc.grid); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	serviceIDs, otherServices := normalizeServices(req.ServiceIDs, req.OtherServices)

	if req.DentistID != nil {
		dentist, err := uc.dentistRepo.GetByID(ctx, *req.DentistID)
		if err != nil {
			if errors.Is(err, dentistRepo.ErrDentistNotFound) {
				uc.logger.Warn("UpdateBooking: dentist id=%d not found", *req.DentistID)
				return nil, ErrDentistNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get dentist id=%d: %v", *req.DentistID, err)
			return nil, fmt.Errorf("%w: failed to get dentist: %v", ErrInternal, err)
		}
		if !dentist.Active {
			uc.logger.Warn("UpdateBooking: dentist id=%d is inactive", dentist.ID)
		}
	}

	bookingDate := truncateToDate(req.Date)

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d is deleted", req.ID)
			return ErrBookingDeleted
		}

		existing, err := uc.serviceRepo.CountExisting(txCtx, serviceIDs)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to count services: %v", err)
			return fmt.Errorf("%w: failed to count services: %v", ErrInternal, err)
		}
		if existing != len(serviceIDs) {
			uc.logger.Warn("UpdateBooking: %d of %d service ids unknown", len(serviceIDs)-existing, len(serviceIDs))
			return ErrUnknownService
		}

		uc.logCellOccupancy(txCtx, req.ID, bookingDate, req.Time, req.DentistID)

		booking.BookingDate = bookingDate
		booking.BookingTime = req.Time
		booking.DentistID = req.DentistID
		booking.ServiceIDs = serviceIDs
		booking.OtherServices = otherServices
		booking.Note = req.Note

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		// Re-read for the fresh updated_at.
		result, err = uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to reload booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return toResponse(result), nil
}

// logCellOccupancy reads the target cell under lock and logs a warning
// when the relevant pool is at or over its ceiling. The booking being
// moved is excluded from the count. Failures are logged and swallowed.
func (uc *UseCase) logCellOccupancy(ctx context.Context, bookingID int64, date time.Time, slot timeslot.TimeOfDay, dentistID *int64) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Warn("UpdateBooking: occupancy check skipped, settings unavailable: %v", err)
		return
	}

	activeDentists, err := uc.dentistRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Warn("UpdateBooking: occupancy check skipped, dentist count unavailable: %v", err)
		return
	}

	entries, err := uc.bookingRepo.ListInRange(ctx, domain.BookingsFilter{
		DateFrom: date,
		DateTo:   date,
	})
	if err != nil {
		uc.logger.Warn("UpdateBooking: occupancy check skipped, cell read failed: %v", err)
		return
	}

	var poolCount int
	for _, e := range entries {
		if e.ID == bookingID || !e.IsActive() || !e.BookingTime.Equal(slot) {
			continue
		}
		if dentistID == nil {
			if e.DentistID == nil {
				poolCount++
			}
		} else if e.DentistID != nil && *e.DentistID == *dentistID {
			poolCount++
		}
	}

	snapshot := domain.CapacitySnapshot{ActiveDentists: activeDentists, Settings: *settings}

	poolCapacity := snapshot.UnassignedCapacity()
	if dentistID != nil {
		poolCapacity = snapshot.DentistCapacity()
	}

	if poolCount >= poolCapacity {
		uc.logger.Warn("UpdateBooking: cell %s %s pool at %d/%d, moving booking id=%d anyway",
			date.Format(domain.DateFormat), slot, poolCount, poolCapacity, bookingID)
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
