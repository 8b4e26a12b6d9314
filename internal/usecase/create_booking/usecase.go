package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	dentistRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/dentist"
	patientRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/patient"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
)

// UseCase creates an appointment on the slot grid. Capacity is
// advisory: an over-capacity cell is logged, never rejected, so the
// front desk keeps the final say.
type UseCase struct {
	bookingRepo  BookingRepository
	dentistRepo  DentistRepository
	serviceRepo  ClinicServiceRepository
	patientRepo  PatientRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	grid         timeslot.Grid
	logger       Logger
}

// NewUseCase creates a new create-booking use case
func NewUseCase(
	bookingRepo BookingRepository,
	dentistRepo DentistRepository,
	serviceRepo ClinicServiceRepository,
	patientRepo PatientRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	grid timeslot.Grid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		dentistRepo:  dentistRepo,
		serviceRepo:  serviceRepo,
		patientRepo:  patientRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		grid:         grid,
		logger:       logger,
	}
}

// Execute validates and creates the booking inside a serializable
// transaction so the occupancy it logs matches what was really stored.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s time=%s dentist=%v",
		req.Date.Format(domain.DateFormat), req.Time, req.DentistID)

	if err := validateRequest(req, uc.grid); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	serviceIDs, otherServices := normalizeServices(req.ServiceIDs, req.OtherServices)

	if req.DentistID != nil {
		dentist, err := uc.dentistRepo.GetByID(ctx, *req.DentistID)
		if err != nil {
			if errors.Is(err, dentistRepo.ErrDentistNotFound) {
				uc.logger.Warn("CreateBooking: dentist id=%d not found", *req.DentistID)
				return nil, ErrDentistNotFound
			}
			uc.logger.Error("CreateBooking: failed to get dentist id=%d: %v", *req.DentistID, err)
			return nil, fmt.Errorf("%w: failed to get dentist: %v", ErrInternal, err)
		}
		if !dentist.Active {
			uc.logger.Warn("CreateBooking: dentist id=%d is inactive", dentist.ID)
		}
	}

	if req.PatientID != nil {
		if _, err := uc.patientRepo.GetLiteByID(ctx, *req.PatientID); err != nil {
			if errors.Is(err, patientRepo.ErrPatientNotFound) {
				uc.logger.Warn("CreateBooking: patient id=%d not found", *req.PatientID)
				return nil, ErrPatientNotFound
			}
			uc.logger.Error("CreateBooking: failed to get patient id=%d: %v", *req.PatientID, err)
			return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
		}
	}

	bookingDate := truncateToDate(req.Date)

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.serviceRepo.CountExisting(txCtx, serviceIDs)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count services: %v", err)
			return fmt.Errorf("%w: failed to count services: %v", ErrInternal, err)
		}
		if existing != len(serviceIDs) {
			uc.logger.Warn("CreateBooking: %d of %d service ids unknown", len(serviceIDs)-existing, len(serviceIDs))
			return ErrUnknownService
		}

		uc.logCellOccupancy(txCtx, bookingDate, req.Time, req.DentistID)

		booking := &domain.Booking{
			BookingDate:   bookingDate,
			BookingTime:   req.Time,
			DentistID:     req.DentistID,
			Patient:       patientRef(req),
			ServiceIDs:    serviceIDs,
			OtherServices: otherServices,
			Note:          req.Note,
			Status:        domain.StatusBooked,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return toResponse(result), nil
}

// logCellOccupancy reads the target cell under lock and logs a warning
// when the relevant pool is at or over its ceiling. Failures here are
// logged and swallowed: occupancy reporting must not block the write.
func (uc *UseCase) logCellOccupancy(ctx context.Context, date time.Time, slot timeslot.TimeOfDay, dentistID *int64) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Warn("CreateBooking: occupancy check skipped, settings unavailable: %v", err)
		return
	}

	activeDentists, err := uc.dentistRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Warn("CreateBooking: occupancy check skipped, dentist count unavailable: %v", err)
		return
	}

	entries, err := uc.bookingRepo.ListInRange(ctx, domain.BookingsFilter{
		DateFrom: date,
		DateTo:   date,
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: occupancy check skipped, cell read failed: %v", err)
		return
	}

	var poolCount int
	for _, e := range entries {
		if !e.IsActive() || !e.BookingTime.Equal(slot) {
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
		uc.logger.Warn("CreateBooking: cell %s %s pool at %d/%d, booking anyway",
			date.Format(domain.DateFormat), slot, poolCount, poolCapacity)
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
