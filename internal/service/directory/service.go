package directory

import (
	"context"
	"errors"
	"fmt"

	dentistRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/dentist"
	"github.com/smiledental/DCS-SchedulingService/internal/service/directory/models"
)

// Service exposes the dentist roster and the clinic service catalog
type Service struct {
	dentistRepo DentistRepository
	serviceRepo ClinicServiceRepository
	logger      Logger
}

// NewService creates a new directory service
func NewService(dentistRepo DentistRepository, serviceRepo ClinicServiceRepository, logger Logger) *Service {
	return &Service{
		dentistRepo: dentistRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListDentists returns the dentist roster
func (s *Service) ListDentists(ctx context.Context, activeOnly bool) (*models.DentistListResponse, error) {
	dentists, err := s.dentistRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListDentists: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDentists - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDentistList(dentists), nil
}

// GetDentist fetches a single roster entry
func (s *Service) GetDentist(ctx context.Context, id int64) (*models.DentistResponse, error) {
	dentist, err := s.dentistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dentistRepo.ErrDentistNotFound) {
			s.logger.Warn("GetDentist: dentist id=%d not found", id)
			return nil, ErrDentistNotFound
		}
		s.logger.Error("GetDentist: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDentist - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainDentist(dentist)
	return &resp, nil
}

// ListServices returns the clinic service catalog
func (s *Service) ListServices(ctx context.Context, activeOnly bool) (*models.ClinicServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClinicServiceList(services), nil
}
