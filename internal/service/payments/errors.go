package payments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the linked appointment does
	// not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
