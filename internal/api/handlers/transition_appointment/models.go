package transition_appointment

import (
	"time"

	transitionAppointment "github.com/m04kA/SPA-AppointmentService/internal/usecase/transition_appointment"
)

// PaymentSuggestionResponse is the payout hint returned when an
// appointment is completed.
type PaymentSuggestionResponse struct {
	AppointmentID int64   `json:"appointmentId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Concept       string  `json:"concept"`
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	EmployeeID int64   `json:"employeeId"`
	ServiceID  int64   `json:"serviceId"`
	StartAt    string  `json:"startAt"`
	EndAt      string  `json:"endAt"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`

	PaymentSuggestion *PaymentSuggestionResponse `json:"paymentSuggestion,omitempty"`
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *transitionAppointment.Response) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		EmployeeID: resp.EmployeeID,
		ServiceID:  resp.ServiceID,
		StartAt:    resp.StartAt.Format(time.RFC3339),
		EndAt:      resp.EndAt.Format(time.RFC3339),
		Status:     resp.Status,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.Suggestion != nil {
		out.PaymentSuggestion = &PaymentSuggestionResponse{
			AppointmentID: resp.Suggestion.AppointmentID,
			Amount:        resp.Suggestion.Amount,
			Method:        string(resp.Suggestion.Method),
			Concept:       resp.Suggestion.Concept,
		}
	}

	return out
}
