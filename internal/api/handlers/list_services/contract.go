package list_services

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListServices(ctx context.Context, activeOnly bool) (*models.ClinicServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
