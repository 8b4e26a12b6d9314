package patients

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// PatientRepository is the storage contract for the patient directory
type PatientRepository interface {
	Search(ctx context.Context, term string, limit, offset uint64) ([]*domain.PatientLite, error)
	GetLiteByID(ctx context.Context, id int64) (*domain.PatientLite, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
