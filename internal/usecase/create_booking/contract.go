package create_booking

import (
	"context"
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// BookingRepository is the storage contract for creating bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListInRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.ScheduleEntry, error)
}

// DentistRepository resolves the assigned dentist
type DentistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Dentist, error)
	CountActive(ctx context.Context) (int, error)
}

// ClinicServiceRepository validates catalog service references
type ClinicServiceRepository interface {
	CountExisting(ctx context.Context, ids []int64) (int, error)
}

// PatientRepository resolves registered patients
type PatientRepository interface {
	GetLiteByID(ctx context.Context, id int64) (*domain.PatientLite, error)
}

// SettingsRepository reads the capacity settings
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

// TransactionManager runs the write inside a transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
