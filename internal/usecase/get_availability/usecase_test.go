package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SPA-AppointmentService/internal/scheduling"
	"github.com/m04kA/SPA-AppointmentService/pkg/ptr"
)

type fakeServiceRepo struct {
	services map[int64]*domain.Service
	calls    int
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	f.calls++
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeAppointmentRepo struct {
	busy []scheduling.Interval
}

func (f *fakeAppointmentRepo) ListBusyIntervals(_ context.Context, _ int64, from, to time.Time, _ *int64) ([]scheduling.Interval, error) {
	out := make([]scheduling.Interval, 0)
	for _, iv := range f.busy {
		if scheduling.Overlaps(from, to, iv.Start, iv.End) {
			out = append(out, iv)
		}
	}
	return out, nil
}

type fakeCache struct {
	entries map[string][]byte
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := f.entries[key]
	return data, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.entries[key] = value
	f.sets++
	return nil
}

type fakeScheduleSource struct {
	hours  map[domain.Weekday]*domain.BusinessHours
	breaks map[domain.Weekday][]*domain.BreakBlock
}

func (f *fakeScheduleSource) GetHoursByWeekday(_ context.Context, wd domain.Weekday) (*domain.BusinessHours, error) {
	return f.hours[wd], nil
}

func (f *fakeScheduleSource) ListBreaksByWeekday(_ context.Context, wd domain.Weekday) ([]*domain.BreakBlock, error) {
	return f.breaks[wd], nil
}

type fixedTime struct {
	now time.Time
}

func (p fixedTime) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// monday is 2025-11-03, a Monday.
var monday = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, 11, 3, hour, minute, 0, 0, time.UTC)
}

// Monday 09:00-12:00 with a 10:00-10:30 break, everything else closed.
func mondaySchedule() *fakeScheduleSource {
	return &fakeScheduleSource{
		hours: map[domain.Weekday]*domain.BusinessHours{
			domain.Monday: {Weekday: domain.Monday, OpenTime: "09:00", CloseTime: "12:00"},
		},
		breaks: map[domain.Weekday][]*domain.BreakBlock{
			domain.Monday: {{Weekday: domain.Monday, StartTime: "10:00", EndTime: "10:30"}},
		},
	}
}

func haircut() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Haircut", DurationMinutes: 30, Price: 500, IsActive: true},
		11: {ID: 11, Name: "Retired", DurationMinutes: 30, Price: 500, IsActive: false},
	}}
}

type fixture struct {
	uc       *UseCase
	services *fakeServiceRepo
	cache    *fakeCache
}

func newFixture(appts *fakeAppointmentRepo, now time.Time) *fixture {
	services := haircut()
	cached := newFakeCache()
	cal := scheduling.NewCalendar(mondaySchedule(), time.UTC)

	uc := NewUseCase(services, appts, cal, cached, time.Minute, nopLogger{})
	uc.timeProvider = fixedTime{now: now}

	return &fixture{uc: uc, services: services, cache: cached}
}

func availabilityRequest() *Request {
	return &Request{EmployeeID: 1, ServiceID: 10, Date: monday}
}

func TestExecute_SlotGeneration(t *testing.T) {
	ctx := context.Background()
	yesterday := monday.AddDate(0, 0, -1)

	t.Run("open day without bookings", func(t *testing.T) {
		f := newFixture(&fakeAppointmentRepo{}, yesterday)

		resp, err := f.uc.Execute(ctx, availabilityRequest())
		require.NoError(t, err)

		assert.Equal(t, "2025-11-03", resp.Date)
		assert.Equal(t, 15, resp.StepMinutes)
		assert.Equal(t, 30, resp.DurationMinutes)

		// 09:00-12:00 on a 15 min grid, minus slots touching the
		// 10:00-10:30 break. 09:30 ends exactly at break start and stays.
		starts := make([]string, 0, len(resp.Slots))
		for _, s := range resp.Slots {
			starts = append(starts, s.StartAt.Format("15:04"))
		}
		assert.Equal(t, []string{
			"09:00", "09:15", "09:30",
			"10:30", "10:45", "11:00", "11:15", "11:30",
		}, starts)

		for _, s := range resp.Slots {
			assert.Equal(t, 30*time.Minute, s.EndAt.Sub(s.StartAt))
		}
	})

	t.Run("busy interval removes overlapping slots", func(t *testing.T) {
		appts := &fakeAppointmentRepo{busy: []scheduling.Interval{
			{Start: mondayAt(11, 0), End: mondayAt(11, 30)},
		}}
		f := newFixture(appts, yesterday)

		resp, err := f.uc.Execute(ctx, availabilityRequest())
		require.NoError(t, err)

		for _, s := range resp.Slots {
			assert.False(t, scheduling.Overlaps(s.StartAt, s.EndAt, mondayAt(11, 0), mondayAt(11, 30)),
				"slot %s overlaps the booked interval", s.StartAt.Format("15:04"))
		}
		// Back-to-back neighbours survive.
		starts := make([]string, 0, len(resp.Slots))
		for _, s := range resp.Slots {
			starts = append(starts, s.StartAt.Format("15:04"))
		}
		assert.Contains(t, starts, "10:30")
		assert.Contains(t, starts, "11:30")
		assert.NotContains(t, starts, "10:45")
		assert.NotContains(t, starts, "11:00")
		assert.NotContains(t, starts, "11:15")
	})

	t.Run("step override changes the grid", func(t *testing.T) {
		f := newFixture(&fakeAppointmentRepo{}, yesterday)

		req := availabilityRequest()
		req.StepMinutes = ptr.Ptr(30)
		resp, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, 30, resp.StepMinutes)
		for _, s := range resp.Slots {
			assert.True(t, scheduling.IsAlignedToStep(s.StartAt, 30))
		}
	})

	t.Run("every slot passes the write-path validator", func(t *testing.T) {
		appts := &fakeAppointmentRepo{busy: []scheduling.Interval{
			{Start: mondayAt(9, 30), End: mondayAt(10, 0)},
		}}
		f := newFixture(appts, yesterday)

		resp, err := f.uc.Execute(ctx, availabilityRequest())
		require.NoError(t, err)
		require.NotEmpty(t, resp.Slots)

		cal := scheduling.NewCalendar(mondaySchedule(), time.UTC)
		validator := scheduling.NewValidator(cal, scheduling.NewConflictChecker(appts), fixedTime{now: yesterday})
		for _, s := range resp.Slots {
			assert.NoError(t, validator.ValidateSlot(ctx, 1, s.StartAt, s.EndAt, resp.StepMinutes, nil))
		}
	})
}

func TestExecute_TodayRule(t *testing.T) {
	ctx := context.Background()

	// 09:50 on the requested day: 15 min grid rounds up to 10:00, which
	// falls inside the break, so the first offered slot is 10:30.
	f := newFixture(&fakeAppointmentRepo{}, mondayAt(9, 50))

	resp, err := f.uc.Execute(ctx, availabilityRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "10:30", resp.Slots[0].StartAt.Format("15:04"))
}

func TestExecute_EmptyAnswers(t *testing.T) {
	ctx := context.Background()

	t.Run("past day", func(t *testing.T) {
		f := newFixture(&fakeAppointmentRepo{}, monday.AddDate(0, 0, 7))

		resp, err := f.uc.Execute(ctx, availabilityRequest())
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.NotNil(t, resp.Slots)
	})

	t.Run("closed day", func(t *testing.T) {
		f := newFixture(&fakeAppointmentRepo{}, monday.AddDate(0, 0, -7))

		req := availabilityRequest()
		req.Date = monday.AddDate(0, 0, 1) // Tuesday has no hours record
		resp, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&fakeAppointmentRepo{}, monday.AddDate(0, 0, -1))

	t.Run("unknown service", func(t *testing.T) {
		req := availabilityRequest()
		req.ServiceID = 999
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("inactive service is not bookable", func(t *testing.T) {
		req := availabilityRequest()
		req.ServiceID = 11
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("step outside bounds", func(t *testing.T) {
		req := availabilityRequest()
		req.StepMinutes = ptr.Ptr(3)
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)

		req.StepMinutes = ptr.Ptr(90)
		_, err = f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing ids and date", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, &Request{ServiceID: 10, Date: monday})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.uc.Execute(ctx, &Request{EmployeeID: 1, Date: monday})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.uc.Execute(ctx, &Request{EmployeeID: 1, ServiceID: 10})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_Caching(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&fakeAppointmentRepo{}, monday.AddDate(0, 0, -1))

	first, err := f.uc.Execute(ctx, availabilityRequest())
	require.NoError(t, err)
	require.Equal(t, 1, f.cache.sets)
	callsAfterMiss := f.services.calls

	second, err := f.uc.Execute(ctx, availabilityRequest())
	require.NoError(t, err)

	// The hit is served from cache without touching the catalog again.
	assert.Equal(t, callsAfterMiss, f.services.calls)
	assert.Equal(t, first.Date, second.Date)
	require.Len(t, second.Slots, len(first.Slots))
	for i := range first.Slots {
		assert.True(t, first.Slots[i].StartAt.Equal(second.Slots[i].StartAt))
		assert.True(t, first.Slots[i].EndAt.Equal(second.Slots[i].EndAt))
	}
}
