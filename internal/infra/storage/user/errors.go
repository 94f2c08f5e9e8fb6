package user

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the id.
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrBuildQuery is returned when building the SQL statement fails.
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL statement fails.
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
