package scheduling

import (
	"context"
	"time"
)

// Clock supplies the current time. A fixed clock makes the "today" rules
// testable.
type Clock interface {
	Now() time.Time
}

// RealClock is the production clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Validator is the authoritative gate for appointment writes. Every rule
// the availability engine applies while building its candidate list is
// reproduced here as a direct check, so a slot returned by availability
// always validates. Checks run in a fixed order; the first violation wins.
type Validator struct {
	calendar  *Calendar
	conflicts *ConflictChecker
	clock     Clock
}

// NewValidator wires the validator from the shared calendar and conflict
// checker. Sharing them with the availability engine is what keeps the
// read and write paths consistent.
func NewValidator(calendar *Calendar, conflicts *ConflictChecker, clock Clock) *Validator {
	return &Validator{calendar: calendar, conflicts: conflicts, clock: clock}
}

// ValidateSlot checks that [startAt, endAt) is bookable for the employee.
// excludeID omits one appointment from conflict detection (reschedule
// validating against everything but itself). Violations come back as a
// SlotError; any other error is infrastructural.
func (v *Validator) ValidateSlot(ctx context.Context, employeeID int64, startAt, endAt time.Time, stepMinutes int, excludeID *int64) error {
	loc := v.calendar.Location()
	startAt = startAt.In(loc)
	endAt = endAt.In(loc)

	// 1. Sane range, no crossing midnight.
	if !endAt.After(startAt) {
		return slotErrorf(ReasonInvalidRange, "invalid time range: end must be after start")
	}
	if !SameDay(startAt, endAt) {
		return slotErrorf(ReasonCrossDay, "appointments must start and end on the same day")
	}

	// 2. Start aligned to the step grid. Misaligned starts are rejected,
	// never rounded.
	if !IsAlignedToStep(startAt, stepMinutes) {
		return slotErrorf(ReasonMisaligned, "start time must align to %d-minute steps", stepMinutes)
	}

	// 3. No booking into the past or into a step already under way.
	now := v.clock.Now().In(loc)
	if SameDay(startAt, now) {
		minStart := RoundUpToStep(now, stepMinutes)
		if startAt.Before(minStart) {
			return slotErrorf(ReasonPastTime, "cannot book in the past")
		}
	}

	// 4. Day must be open.
	window, err := v.calendar.DayWindow(ctx, startAt)
	if err != nil {
		return err
	}
	if window.Closed {
		return slotErrorf(ReasonClosedDay, "business is closed that day")
	}

	// 5. Inside the opening window.
	if startAt.Before(window.Open) || endAt.After(window.Close) {
		return slotErrorf(ReasonOutsideHours, "outside business hours")
	}

	// 6. No overlap with break blocks.
	for _, br := range window.Breaks {
		if OverlapsInterval(startAt, endAt, br) {
			return slotErrorf(ReasonBreakOverlap, "overlaps with a break block")
		}
	}

	// 7. No conflict with the employee's active appointments.
	conflict, err := v.conflicts.HasConflict(ctx, employeeID, startAt, endAt, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return slotErrorf(ReasonSlotConflict, "time slot not available")
	}

	return nil
}
