package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the id.
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotConflict is returned when the database exclusion constraint
	// rejects an overlapping active appointment. This is the concurrency
	// backstop behind the validator's own conflict check; callers translate
	// it into the same scheduling error the validator raises.
	ErrSlotConflict = errors.New("appointment.repository: overlapping active appointment")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
