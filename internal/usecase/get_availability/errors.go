package get_availability

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist or is
	// not bookable.
	ErrServiceNotFound = errors.New("get_availability: service not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("get_availability: internal error")
)
