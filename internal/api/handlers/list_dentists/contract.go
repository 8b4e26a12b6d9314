package list_dentists

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListDentists(ctx context.Context, activeOnly bool) (*models.DentistListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
