package create_appointment

import (
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/SPA-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest is the HTTP request model. The caller books by
// date and start time; the end is derived from the service duration.
type CreateAppointmentRequest struct {
	CustomerID  int64   `json:"customerId"`
	EmployeeID  int64   `json:"employeeId"`
	ServiceID   int64   `json:"serviceId"`
	StartAt     string  `json:"startAt"` // RFC 3339
	StepMinutes *int    `json:"stepMinutes,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	EmployeeID      int64   `json:"employeeId"`
	ServiceID       int64   `json:"serviceId"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	Status          string  `json:"status"`
	DurationMinutes int     `json:"durationMinutes"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request to the usecase model.
func (r *CreateAppointmentRequest) ToUseCaseRequest(actor domain.Actor) (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	customerID := r.CustomerID
	// Customers book for themselves, whatever the payload says.
	if actor.Role == domain.RoleCustomer {
		customerID = actor.UserID
	}

	return &createAppointment.Request{
		CustomerID:  customerID,
		EmployeeID:  r.EmployeeID,
		ServiceID:   r.ServiceID,
		StartAt:     startAt,
		StepMinutes: r.StepMinutes,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		EmployeeID:      resp.EmployeeID,
		ServiceID:       resp.ServiceID,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		EndAt:           resp.EndAt.Format(time.RFC3339),
		Status:          resp.Status,
		DurationMinutes: resp.DurationMinutes,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
