package transition_appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("transition_appointment: appointment not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("transition_appointment: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("transition_appointment: internal error")
)
