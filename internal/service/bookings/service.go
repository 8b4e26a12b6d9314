package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/booking"
	"github.com/smiledental/DCS-SchedulingService/internal/service/bookings/models"
)

// Service enforces the booking lifecycle: booked bookings can be
// cancelled, any non-deleted booking can be soft-deleted, and a
// soft-deleted booking accepts no further transitions.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates a new bookings service
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID fetches a booking by id
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel moves a booking from booked to cancelled. Cancelling an
// already cancelled booking is an error, not a no-op, so the caller
// learns its view of the booking was stale.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.IsDeleted {
		s.logger.Warn("Cancel: booking id=%d is deleted", id)
		return ErrBookingDeleted
	}
	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", id)
		return ErrAlreadyCancelled
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// SoftDelete marks a booking deleted. Deletion is allowed from both
// booked and cancelled, but is terminal: a deleted booking cannot be
// deleted again.
func (s *Service) SoftDelete(ctx context.Context, id int64) error {
	s.logger.Info("SoftDelete: deleting booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SoftDelete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("SoftDelete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: SoftDelete - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeDeleted() {
		s.logger.Warn("SoftDelete: booking id=%d is already deleted", id)
		return ErrBookingDeleted
	}

	if err := s.bookingRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("SoftDelete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: SoftDelete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SoftDelete: successfully deleted booking id=%d", id)
	return nil
}
