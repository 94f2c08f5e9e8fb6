package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" form, minute precision.
// Business hours and break blocks are stored this way; they describe a
// weekly template, not a concrete instant.
type TimeString string

var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString validates s and returns it as a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the HH:MM format and range.
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	h, m, ok := t.parts()
	if !ok || h < 0 || h > 23 || m < 0 || m > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

func (t TimeString) parts() (hour, minute int, ok bool) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// Minutes returns the offset from midnight in minutes.
func (t TimeString) Minutes() int {
	h, m, ok := t.parts()
	if !ok {
		return 0
	}
	return h*60 + m
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes returns t shifted forward by the given number of minutes.
// The result is clamped to the same day; shifting past midnight fails.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if total > 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes crosses midnight", ErrInvalidTimeString, string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)), nil
}

// At anchors the wall-clock time onto the given calendar day in loc.
func (t TimeString) At(day time.Time, loc *time.Location) time.Time {
	h, m, _ := t.parts()
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
}

func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer so the type scans straight into TIME/VARCHAR columns.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	// Postgres TIME columns come back as "09:00:00"; trim to minute precision.
	if len(*t) == 8 && (*t)[5] == ':' {
		*t = (*t)[:5]
	}
	return t.Validate()
}
