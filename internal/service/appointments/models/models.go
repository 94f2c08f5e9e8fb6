package models

import (
	"errors"
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status filter value.
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// ListAppointmentsRequest is an appointment list query. The actor decides
// the visible scope; the remaining fields narrow it further.
type ListAppointmentsRequest struct {
	Actor      domain.Actor
	EmployeeID *int64
	CustomerID *int64
	Status     *string
	FromAt     *time.Time
	ToAt       *time.Time
}

// ToDomainFilter converts the request into a repository filter, applying
// the actor's visibility scope. Customers only ever see their own
// appointments; employees see their own calendar; staff see everything.
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		EmployeeID: r.EmployeeID,
		CustomerID: r.CustomerID,
		FromAt:     r.FromAt,
		ToAt:       r.ToAt,
	}

	switch r.Actor.Role {
	case domain.RoleCustomer:
		filter.CustomerID = &r.Actor.UserID
	case domain.RoleEmployee:
		filter.EmployeeID = &r.Actor.UserID
	}

	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// AppointmentResponse is the transport representation of an appointment.
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	EmployeeID int64   `json:"employeeId"`
	ServiceID  int64   `json:"serviceId"`
	StartAt    string  `json:"startAt"` // RFC 3339 in the business timezone
	EndAt      string  `json:"endAt"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// AppointmentListResponse is a list of appointments.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment converts a domain appointment.
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         appt.ID,
		CustomerID: appt.CustomerID,
		EmployeeID: appt.EmployeeID,
		ServiceID:  appt.ServiceID,
		StartAt:    appt.StartAt.Format(time.RFC3339),
		EndAt:      appt.EndAt.Format(time.RFC3339),
		Status:     string(appt.Status),
		Notes:      appt.Notes,
		CreatedAt:  appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  appt.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList converts a list of domain appointments.
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		out = append(out, FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{Appointments: out, Total: len(out)}
}
