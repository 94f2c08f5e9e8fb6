package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist or is
	// deactivated.
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
