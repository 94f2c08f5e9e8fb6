package scheduling

import (
	"context"
	"fmt"
	"time"
)

// AppointmentSource lists the busy intervals of one employee whose active
// appointments intersect [from, to). excludeID, when set, omits that
// appointment so a reschedule does not collide with itself.
type AppointmentSource interface {
	ListBusyIntervals(ctx context.Context, employeeID int64, from, to time.Time, excludeID *int64) ([]Interval, error)
}

// ConflictChecker answers whether a candidate interval collides with an
// employee's existing active appointments. It is the single source of
// truth for both the availability read path and the validation write
// path; the two must never diverge.
type ConflictChecker struct {
	source AppointmentSource
}

// NewConflictChecker creates a checker over the given appointment source.
func NewConflictChecker(source AppointmentSource) *ConflictChecker {
	return &ConflictChecker{source: source}
}

// HasConflict reports whether [start, end) overlaps any active
// appointment of the employee, other than excludeID.
func (c *ConflictChecker) HasConflict(ctx context.Context, employeeID int64, start, end time.Time, excludeID *int64) (bool, error) {
	busy, err := c.source.ListBusyIntervals(ctx, employeeID, start, end, excludeID)
	if err != nil {
		return false, fmt.Errorf("scheduling: list busy intervals: %w", err)
	}
	for _, iv := range busy {
		if OverlapsInterval(start, end, iv) {
			return true, nil
		}
	}
	return false, nil
}

// AnyConflict checks a candidate against an already-loaded interval set.
// The availability engine loads the whole day once and reuses it for
// every candidate instead of querying per slot.
func AnyConflict(start, end time.Time, busy []Interval) bool {
	for _, iv := range busy {
		if OverlapsInterval(start, end, iv) {
			return true
		}
	}
	return false
}
