package create_appointment

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist or is
	// not bookable.
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrEmployeeNotFound is returned when the employee does not exist, is
	// not staff, or is deactivated.
	ErrEmployeeNotFound = errors.New("create_appointment: employee not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("create_appointment: internal error")
)
