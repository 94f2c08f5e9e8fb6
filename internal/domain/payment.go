package domain

import "time"

// PaymentMethod is how a cash entry was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// PaymentEntry is a cash-register record. Entries optionally reference an
// appointment; the sum of entries for an appointment drives the
// confirmation deposit rule. Entries are append-only: cancellation of an
// appointment never mutates or deletes them (no-refund policy).
type PaymentEntry struct {
	ID              int64
	CreatedByUserID int64
	Method          PaymentMethod
	Amount          float64
	Concept         *string
	AppointmentID   *int64
	CreatedAt       time.Time
}

// PaymentSuggestion is the informational payout hint produced when an
// appointment is marked DONE: the remaining balance for the operator to
// reconcile. It does not constrain the transition.
type PaymentSuggestion struct {
	AppointmentID int64
	Amount        float64
	Method        PaymentMethod
	Concept       string
}
