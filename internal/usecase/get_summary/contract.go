package get_summary

import (
	"context"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
)

// BookingRepository supplies the unpaginated summary rows
type BookingRepository interface {
	ListForSummary(ctx context.Context, filter domain.SummaryFilter) ([]*domain.ScheduleEntry, error)
}

// Logger is the logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
