package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusRequested AppointmentStatus = "REQUESTED" // customer requested a slot
	StatusValidated AppointmentStatus = "VALIDATED" // receptionist validated the request
	StatusConfirmed AppointmentStatus = "CONFIRMED" // customer confirmed (deposit paid)
	StatusCanceled  AppointmentStatus = "CANCELED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
	StatusDone      AppointmentStatus = "DONE"
)

// transitions is the full lifecycle graph. Every status change in the
// system goes through CanTransitionTo, never through ad-hoc checks at
// call sites.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusRequested: {StatusValidated, StatusCanceled},
	StatusValidated: {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusDone, StatusNoShow, StatusCanceled},
	StatusCanceled:  {},
	StatusNoShow:    {},
	StatusDone:      {},
}

// IsValid reports whether s is a known status.
func (s AppointmentStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s AppointmentStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether the lifecycle graph contains s → target.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Appointment represents a booked time range of one employee for one
// customer and service. The time range is half-open: [StartAt, EndAt).
// Employee, customer and service are referenced by id only; their
// lifecycle is managed elsewhere.
type Appointment struct {
	ID         int64
	CustomerID int64
	EmployeeID int64
	ServiceID  int64

	StartAt time.Time
	EndAt   time.Time

	Status AppointmentStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the appointment occupies the employee's
// calendar and therefore participates in conflict checks.
func (a *Appointment) IsActive() bool {
	for _, s := range ActiveStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// CanBeRescheduled reports whether the time range may still change.
// Once a customer has confirmed (and paid the deposit), the slot is fixed.
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusRequested || a.Status == StatusValidated
}

// AppointmentsFilter describes an appointment list query.
type AppointmentsFilter struct {
	EmployeeID *int64
	CustomerID *int64
	Status     *AppointmentStatus
	// FromAt/ToAt bound StartAt; both optional.
	FromAt *time.Time
	ToAt   *time.Time
}
