package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrNotReschedulable is returned when the appointment's status no
	// longer allows moving it. Only REQUESTED and VALIDATED appointments
	// can be rescheduled.
	ErrNotReschedulable = errors.New("reschedule_appointment: appointment can no longer be rescheduled")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
