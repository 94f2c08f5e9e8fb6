package get_availability

import "time"

// Request asks for the bookable slots of one employee on one calendar day
// for one service.
type Request struct {
	EmployeeID  int64     // Employee to book with
	ServiceID   int64     // Service that fixes the slot duration
	Date        time.Time // Calendar day (time part ignored)
	StepMinutes *int      // Optional grid step override
}

// Slot is one bookable candidate, expressed in the business timezone.
type Slot struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// Response is the availability for the requested day, in chronological
// order. An empty Slots list is a normal answer (closed day, fully booked,
// past date), not an error.
type Response struct {
	EmployeeID      int64  `json:"employee_id"`
	ServiceID       int64  `json:"service_id"`
	Date            string `json:"date"`
	StepMinutes     int    `json:"step_minutes"`
	DurationMinutes int    `json:"duration_minutes"`
	Slots           []Slot `json:"slots"`
}
