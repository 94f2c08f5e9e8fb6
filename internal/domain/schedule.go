package domain

import (
	"time"

	"github.com/m04kA/SPA-AppointmentService/pkg/types"
)

// Weekday numbers days Monday=1 .. Sunday=7, matching the business_hours
// and break_blocks tables.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf converts a calendar date to the business weekday numbering.
func WeekdayOf(t time.Time) Weekday {
	wd := t.Weekday() // Sunday=0 .. Saturday=6
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// IsValid reports whether w is within Monday..Sunday.
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	names := [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if !w.IsValid() {
		return "Unknown"
	}
	return names[w-1]
}

// BusinessHours is the opening window for one weekday. At most one record
// exists per weekday. When IsClosed is true the open/close times are
// ignored by all consumers.
type BusinessHours struct {
	ID        int64
	Weekday   Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool
}

// BreakBlock is a recurring break window for one weekday, e.g. lunch.
// Multiple blocks per weekday are allowed; they are treated independently
// and are not required to be sorted or disjoint.
type BreakBlock struct {
	ID        int64
	Weekday   Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	Label     *string
}
