package get_summary

import (
	"context"

	getSummary "github.com/smiledental/DCS-SchedulingService/internal/usecase/get_summary"
)

type GetSummaryUseCase interface {
	Execute(ctx context.Context, req *getSummary.Request) (*getSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
