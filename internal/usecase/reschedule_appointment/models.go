package reschedule_appointment

import "time"

// Request moves an existing appointment to a new start instant. The new
// end is re-derived from the service duration.
type Request struct {
	AppointmentID int64     // Appointment to move
	NewStartAt    time.Time // Requested new start instant
	StepMinutes   *int      // Optional grid step override
}

// Response is the appointment after the move. The status is unchanged: a
// reschedule never resets lifecycle progress.
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
}
