package directory

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// DentistRepository is the storage contract for the dentist roster
type DentistRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Dentist, error)
	GetByID(ctx context.Context, id int64) (*domain.Dentist, error)
}

// ClinicServiceRepository is the storage contract for the service catalog
type ClinicServiceRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.ClinicService, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
