package get_schedule

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// BookingRepository supplies the projection rows of the timetable
type BookingRepository interface {
	ListInRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.ScheduleEntry, error)
}

// DentistRepository counts active dentists for the aggregate ceiling
type DentistRepository interface {
	CountActive(ctx context.Context) (int, error)
}

// SettingsRepository reads the capacity settings
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
