package list_bookings

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// BookingRepository supplies one page of the management listing plus
// the total count under the same predicate
type BookingRepository interface {
	ListFiltered(ctx context.Context, filter domain.BookingsFilter, limit, offset uint64) ([]*domain.ScheduleEntry, int64, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
