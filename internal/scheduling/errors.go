package scheduling

import (
	"errors"
	"fmt"
)

// Reason identifies which scheduling rule a candidate slot violated.
// Each validator check has its own reason so transports can map them
// individually while callers keep a single error kind to handle.
type Reason string

const (
	ReasonInvalidRange Reason = "invalid_range"    // endAt <= startAt
	ReasonCrossDay     Reason = "cross_day"        // interval crosses midnight
	ReasonMisaligned   Reason = "misaligned_start" // start not on the step grid
	ReasonPastTime     Reason = "past_time"        // starts before now rounded up to the step
	ReasonClosedDay    Reason = "closed_day"       // business closed that weekday
	ReasonOutsideHours Reason = "outside_hours"    // outside the open/close window
	ReasonBreakOverlap Reason = "break_overlap"    // overlaps a break block
	ReasonSlotConflict Reason = "slot_conflict"    // overlaps another active appointment
)

// ErrSlotInvalid is the errors.Is target for every SlotError regardless
// of reason.
var ErrSlotInvalid = errors.New("scheduling: slot is not bookable")

// SlotError is the single error kind produced by the validator. The
// reason distinguishes which check failed; callers are expected to obtain
// a new candidate time rather than retry.
type SlotError struct {
	Reason Reason
	msg    string
}

func (e *SlotError) Error() string {
	return e.msg
}

func (e *SlotError) Is(target error) bool {
	return target == ErrSlotInvalid
}

func slotErrorf(reason Reason, format string, v ...interface{}) error {
	return &SlotError{Reason: reason, msg: fmt.Sprintf(format, v...)}
}

// NewSlotError builds a SlotError outside the validator. Used when the
// database exclusion constraint detects a conflict the validator raced
// past, so both paths surface the identical error.
func NewSlotError(reason Reason, msg string) error {
	return &SlotError{Reason: reason, msg: msg}
}

// ReasonOf extracts the violation reason from err, or "" when err is not
// a SlotError.
func ReasonOf(err error) Reason {
	var se *SlotError
	if errors.As(err, &se) {
		return se.Reason
	}
	return ""
}
