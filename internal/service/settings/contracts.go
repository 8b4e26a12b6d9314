package settings

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// SettingsRepository is the storage contract for the settings singleton
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
	Update(ctx context.Context, s *domain.BookingSettings) (*domain.BookingSettings, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
