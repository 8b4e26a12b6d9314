package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	settingsRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/settings"
	"github.com/smiledental/DCS-SchedulingService/internal/service/settings/models"
)

// Service manages the clinic-wide slot capacity settings
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService creates a new settings service
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get fetches the current capacity settings
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: settings row not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(current), nil
}

// Update replaces both capacity values. Values apply to future capacity
// calculations immediately; existing bookings are never clamped.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: perDentist=%d unassigned=%d", req.SlotCapacityPerDentist, req.SlotCapacityUnassigned)

	if err := validateCapacity(req.SlotCapacityPerDentist); err != nil {
		s.logger.Warn("Update: invalid per-dentist capacity %d", req.SlotCapacityPerDentist)
		return nil, err
	}
	if err := validateCapacity(req.SlotCapacityUnassigned); err != nil {
		s.logger.Warn("Update: invalid unassigned capacity %d", req.SlotCapacityUnassigned)
		return nil, err
	}

	updated, err := s.settingsRepo.Update(ctx, &domain.BookingSettings{
		SlotCapacityPerDentist: req.SlotCapacityPerDentist,
		SlotCapacityUnassigned: req.SlotCapacityUnassigned,
	})
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved, updatedAt=%s", updated.UpdatedAt)
	return models.FromDomainSettings(updated), nil
}

func validateCapacity(v int) error {
	if v < domain.MinSlotCapacity || v > domain.MaxSlotCapacity {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidCapacity, v, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}
	return nil
}
