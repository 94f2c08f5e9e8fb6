package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// ScheduleSource provides the weekly template: opening hours and break
// blocks per weekday. GetHoursByWeekday returns (nil, nil) when no record
// exists for the weekday.
type ScheduleSource interface {
	GetHoursByWeekday(ctx context.Context, weekday domain.Weekday) (*domain.BusinessHours, error)
	ListBreaksByWeekday(ctx context.Context, weekday domain.Weekday) ([]*domain.BreakBlock, error)
}

// DayWindow is the resolved calendar for one concrete date: the opening
// window as instants in the business timezone, plus that weekday's break
// intervals. A weekday without a configured record resolves closed, never
// open (fail-safe).
type DayWindow struct {
	Closed bool
	Open   time.Time
	Close  time.Time
	Breaks []Interval
}

// Calendar resolves business hours and breaks for concrete dates. The
// business timezone is an explicit dependency so tests can exercise
// several zones deterministically.
type Calendar struct {
	source ScheduleSource
	loc    *time.Location
}

// NewCalendar creates a calendar over the given schedule source.
func NewCalendar(source ScheduleSource, loc *time.Location) *Calendar {
	return &Calendar{source: source, loc: loc}
}

// Location returns the business timezone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// DayWindow resolves the window for the calendar day containing `day`.
func (c *Calendar) DayWindow(ctx context.Context, day time.Time) (*DayWindow, error) {
	day = day.In(c.loc)
	weekday := domain.WeekdayOf(day)

	hours, err := c.source.GetHoursByWeekday(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("scheduling: resolve hours for %s: %w", weekday, err)
	}
	if hours == nil || hours.IsClosed {
		return &DayWindow{Closed: true}, nil
	}

	blocks, err := c.source.ListBreaksByWeekday(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("scheduling: resolve breaks for %s: %w", weekday, err)
	}

	breaks := make([]Interval, 0, len(blocks))
	for _, b := range blocks {
		breaks = append(breaks, Interval{
			Start: b.StartTime.At(day, c.loc),
			End:   b.EndTime.At(day, c.loc),
		})
	}

	return &DayWindow{
		Open:   hours.OpenTime.At(day, c.loc),
		Close:  hours.CloseTime.At(day, c.loc),
		Breaks: breaks,
	}, nil
}
