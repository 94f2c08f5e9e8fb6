package create_appointment

import "time"

// Request creates a new appointment. EndAt is derived from the service
// duration, never supplied by the client.
type Request struct {
	CustomerID  int64     // Customer the appointment is for
	EmployeeID  int64     // Employee performing the service
	ServiceID   int64     // Service being booked
	StartAt     time.Time // Requested start instant
	StepMinutes *int      // Optional grid step override
	Notes       *string   // Free-text notes (optional)
}

// Response is the created appointment.
type Response struct {
	ID              int64
	CustomerID      int64
	EmployeeID      int64
	ServiceID       int64
	StartAt         time.Time
	EndAt           time.Time
	Status          string
	DurationMinutes int
	ServiceName     string
	ServicePrice    float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
