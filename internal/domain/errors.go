package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the errors.Is target for every
// InvalidTransitionError.
var ErrInvalidTransition = errors.New("domain: invalid status transition")

// InvalidTransitionError reports a status change that is not an edge of
// the lifecycle graph, naming both states.
type InvalidTransitionError struct {
	From AppointmentStatus
	To   AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// NewInvalidTransition builds the error for a rejected from → to change.
func NewInvalidTransition(from, to AppointmentStatus) error {
	return &InvalidTransitionError{From: from, To: to}
}

// ErrPaymentInsufficient is the errors.Is target for every
// PaymentInsufficientError.
var ErrPaymentInsufficient = errors.New("domain: payment below confirmation deposit")

// PaymentInsufficientError reports a confirmation attempt below the
// deposit threshold, carrying both amounts so callers can show the
// shortfall.
type PaymentInsufficientError struct {
	Required float64
	Paid     float64
	Currency string
}

func (e *PaymentInsufficientError) Error() string {
	return fmt.Sprintf("to confirm, at least 50%% of the service price must be paid: required %.2f %s, paid %.2f %s",
		e.Required, e.Currency, e.Paid, e.Currency)
}

func (e *PaymentInsufficientError) Is(target error) bool {
	return target == ErrPaymentInsufficient
}
