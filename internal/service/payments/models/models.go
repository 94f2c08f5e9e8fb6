package models

import (
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// CreatePaymentRequest records money received at the desk. AppointmentID
// is optional: walk-in sales produce unlinked entries.
type CreatePaymentRequest struct {
	Actor         domain.Actor
	Method        string
	Amount        float64
	Concept       *string
	AppointmentID *int64
}

// PaymentResponse is the transport representation of a payment entry.
type PaymentResponse struct {
	ID              int64   `json:"id"`
	CreatedByUserID int64   `json:"createdByUserId"`
	Method          string  `json:"method"`
	Amount          float64 `json:"amount"`
	Concept         *string `json:"concept,omitempty"`
	AppointmentID   *int64  `json:"appointmentId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// PaymentListResponse lists the entries of one appointment with their
// running total.
type PaymentListResponse struct {
	Payments []*PaymentResponse `json:"payments"`
	Total    float64            `json:"total"`
}

// FromDomainPayment converts a domain payment entry.
func FromDomainPayment(entry *domain.PaymentEntry) *PaymentResponse {
	return &PaymentResponse{
		ID:              entry.ID,
		CreatedByUserID: entry.CreatedByUserID,
		Method:          string(entry.Method),
		Amount:          entry.Amount,
		Concept:         entry.Concept,
		AppointmentID:   entry.AppointmentID,
		CreatedAt:       entry.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainPaymentList converts a list of domain payment entries.
func FromDomainPaymentList(entries []*domain.PaymentEntry, total float64) *PaymentListResponse {
	out := make([]*PaymentResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromDomainPayment(e))
	}
	return &PaymentListResponse{Payments: out, Total: total}
}
