package dentist

import "errors"

var (
	// ErrDentistNotFound is returned when a dentist does not exist
	ErrDentistNotFound = errors.New("dentist.repository: dentist not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("dentist.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("dentist.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("dentist.repository: failed to scan row")
)
