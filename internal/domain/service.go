package domain

import "time"

// Service is a bookable treatment from the catalog. Appointments reference
// services by id; the duration below is copied into the appointment's time
// range at creation/reschedule time.
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
