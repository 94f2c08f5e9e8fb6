package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

func TestCalendar_DayWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves open window and breaks", func(t *testing.T) {
		cal := NewCalendar(mondaySchedule(), time.UTC)

		window, err := cal.DayWindow(ctx, monday)
		require.NoError(t, err)
		require.False(t, window.Closed)
		assert.Equal(t, mondayAt(9, 0), window.Open)
		assert.Equal(t, mondayAt(18, 0), window.Close)
		require.Len(t, window.Breaks, 1)
		assert.Equal(t, mondayAt(13, 0), window.Breaks[0].Start)
		assert.Equal(t, mondayAt(14, 0), window.Breaks[0].End)
	})

	t.Run("missing weekday record resolves closed", func(t *testing.T) {
		cal := NewCalendar(mondaySchedule(), time.UTC)

		window, err := cal.DayWindow(ctx, monday.AddDate(0, 0, 1)) // Tuesday, not configured
		require.NoError(t, err)
		assert.True(t, window.Closed)
		assert.Empty(t, window.Breaks)
	})

	t.Run("explicitly closed weekday resolves closed", func(t *testing.T) {
		sched := mondaySchedule()
		sched.hours[domain.Tuesday] = &domain.BusinessHours{
			Weekday: domain.Tuesday, OpenTime: "09:00", CloseTime: "18:00", IsClosed: true,
		}
		cal := NewCalendar(sched, time.UTC)

		window, err := cal.DayWindow(ctx, monday.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, window.Closed)
	})

	t.Run("multiple breaks are kept independently", func(t *testing.T) {
		sched := mondaySchedule()
		sched.breaks[domain.Monday] = append(sched.breaks[domain.Monday],
			&domain.BreakBlock{Weekday: domain.Monday, StartTime: "16:00", EndTime: "16:30"})
		cal := NewCalendar(sched, time.UTC)

		window, err := cal.DayWindow(ctx, monday)
		require.NoError(t, err)
		assert.Len(t, window.Breaks, 2)
	})
}
