package create_payment

import (
	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/internal/service/payments/models"
)

// CreatePaymentRequest is the HTTP request model.
type CreatePaymentRequest struct {
	Method        string  `json:"method"` // CASH, CARD or TRANSFER
	Amount        float64 `json:"amount"`
	Concept       *string `json:"concept,omitempty"`
	AppointmentID *int64  `json:"appointmentId,omitempty"`
}

// ToServiceRequest converts the HTTP request to the service model.
func (r *CreatePaymentRequest) ToServiceRequest(actor domain.Actor) *models.CreatePaymentRequest {
	return &models.CreatePaymentRequest{
		Actor:         actor,
		Method:        r.Method,
		Amount:        r.Amount,
		Concept:       r.Concept,
		AppointmentID: r.AppointmentID,
	}
}
