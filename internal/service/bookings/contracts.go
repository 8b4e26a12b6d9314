package bookings

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// BookingRepository is the storage contract for booking lifecycle operations
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
	SoftDelete(ctx context.Context, id int64) error
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
