package search_patients

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/service/patients/models"
)

type PatientService interface {
	Search(ctx context.Context, term string, limit, offset uint64) (*models.PatientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
