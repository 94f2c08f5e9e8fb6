package transition_appointment

import (
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// Request moves an appointment to a new lifecycle status. The target must
// be an edge of the lifecycle graph from the current status.
type Request struct {
	AppointmentID int64
	TargetStatus  domain.AppointmentStatus
}

// Response is the appointment after the transition. For DONE, Suggestion
// carries the remaining balance for the desk to collect; it is
// informational and never blocks the transition.
type Response struct {
	ID         int64
	CustomerID int64
	EmployeeID int64
	ServiceID  int64
	StartAt    time.Time
	EndAt      time.Time
	Status     string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Suggestion *domain.PaymentSuggestion
}
