package patients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	patientRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/patient"
	"github.com/smiledental/DCS-SchedulingService/internal/service/patients/models"
)

// Service exposes the read-only patient directory used by booking forms
type Service struct {
	patientRepo PatientRepository
	logger      Logger
}

// NewService creates a new patients service
func NewService(patientRepo PatientRepository, logger Logger) *Service {
	return &Service{
		patientRepo: patientRepo,
		logger:      logger,
	}
}

// Search finds patients matching the term. Terms shorter than the
// minimum length are rejected so a one-character query never scans the
// whole directory.
func (s *Service) Search(ctx context.Context, term string, limit, offset uint64) (*models.PatientListResponse, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < domain.MinSearchTermLength {
		s.logger.Warn("Search: term %q below minimum length %d", term, domain.MinSearchTermLength)
		return nil, ErrSearchTermTooShort
	}

	patients, err := s.patientRepo.Search(ctx, term, limit, offset)
	if err != nil {
		s.logger.Error("Search: repository error for term=%q: %v", term, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: term=%q matched %d patients", term, len(patients))
	return models.FromDomainPatientList(patients), nil
}

// GetByID fetches a single directory entry
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PatientResponse, error) {
	p, err := s.patientRepo.GetLiteByID(ctx, id)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("GetByID: patient id=%d not found", id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainPatient(p)
	return &resp, nil
}
