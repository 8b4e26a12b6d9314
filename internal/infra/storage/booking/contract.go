package booking

import (
	"context"
	"database/sql"

	"github.com/smiledental/DCS-SchedulingService/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner is implemented by *sql.DB wrappers that can open transactions
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
