package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SPA-AppointmentService/pkg/ptr"
)

type fakeScheduleRepo struct {
	hours  map[domain.Weekday]*domain.BusinessHours
	breaks map[domain.Weekday][]*domain.BreakBlock
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		hours:  make(map[domain.Weekday]*domain.BusinessHours),
		breaks: make(map[domain.Weekday][]*domain.BreakBlock),
	}
}

func (f *fakeScheduleRepo) ListHours(_ context.Context) ([]*domain.BusinessHours, error) {
	out := make([]*domain.BusinessHours, 0)
	for wd := domain.Monday; wd <= domain.Sunday; wd++ {
		if h, ok := f.hours[wd]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListBreaks(_ context.Context) ([]*domain.BreakBlock, error) {
	out := make([]*domain.BreakBlock, 0)
	for wd := domain.Monday; wd <= domain.Sunday; wd++ {
		out = append(out, f.breaks[wd]...)
	}
	return out, nil
}

func (f *fakeScheduleRepo) UpsertHours(_ context.Context, hours *domain.BusinessHours) error {
	f.hours[hours.Weekday] = hours
	return nil
}

func (f *fakeScheduleRepo) ReplaceBreaks(_ context.Context, weekday domain.Weekday, blocks []*domain.BreakBlock) error {
	f.breaks[weekday] = blocks
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCache struct {
	prefixes []string
}

func (f *fakeCache) DeletePrefix(_ context.Context, prefix string) error {
	f.prefixes = append(f.prefixes, prefix)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeScheduleRepo, *fakeCache) {
	repo := newFakeScheduleRepo()
	invalidations := &fakeCache{}
	return NewService(repo, fakeTxManager{}, invalidations, nopLogger{}), repo, invalidations
}

func mondayUpdate() *models.UpdateDayRequest {
	return &models.UpdateDayRequest{
		Weekday:   1,
		OpenTime:  "09:00",
		CloseTime: "18:00",
		Breaks: []models.BreakBlockPayload{
			{StartTime: "13:00", EndTime: "14:00", Label: ptr.Ptr("Lunch")},
		},
	}
}

func TestGetWeek(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService()

	repo.hours[domain.Monday] = &domain.BusinessHours{
		Weekday: domain.Monday, OpenTime: "09:00", CloseTime: "18:00",
	}
	repo.breaks[domain.Monday] = []*domain.BreakBlock{
		{Weekday: domain.Monday, StartTime: "13:00", EndTime: "14:00"},
	}

	week, err := svc.GetWeek(ctx)
	require.NoError(t, err)
	require.Len(t, week.Days, 7)

	mon := week.Days[0]
	assert.Equal(t, 1, mon.Weekday)
	assert.Equal(t, "Monday", mon.Name)
	assert.False(t, mon.IsClosed)
	assert.Equal(t, "09:00", mon.OpenTime)
	assert.Equal(t, "18:00", mon.CloseTime)
	require.Len(t, mon.Breaks, 1)
	assert.Equal(t, "13:00", mon.Breaks[0].StartTime)

	// Unconfigured weekdays resolve closed, never open.
	for _, day := range week.Days[1:] {
		assert.True(t, day.IsClosed, "%s should be closed", day.Name)
		assert.Empty(t, day.Breaks)
	}
}

func TestUpdateDay(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the day and invalidates everything", func(t *testing.T) {
		svc, repo, invalidations := newService()

		week, err := svc.UpdateDay(ctx, mondayUpdate())
		require.NoError(t, err)

		stored := repo.hours[domain.Monday]
		require.NotNil(t, stored)
		assert.Equal(t, "09:00", string(stored.OpenTime))
		require.Len(t, repo.breaks[domain.Monday], 1)

		assert.False(t, week.Days[0].IsClosed)
		assert.Equal(t, []string{"avail:"}, invalidations.prefixes)
	})

	t.Run("closing a day drops the window", func(t *testing.T) {
		svc, repo, _ := newService()

		week, err := svc.UpdateDay(ctx, &models.UpdateDayRequest{Weekday: 1, IsClosed: true})
		require.NoError(t, err)

		assert.True(t, repo.hours[domain.Monday].IsClosed)
		assert.True(t, week.Days[0].IsClosed)
		assert.Empty(t, week.Days[0].OpenTime)
	})

	t.Run("break replacement is total", func(t *testing.T) {
		svc, repo, _ := newService()

		_, err := svc.UpdateDay(ctx, mondayUpdate())
		require.NoError(t, err)

		update := mondayUpdate()
		update.Breaks = nil
		_, err = svc.UpdateDay(ctx, update)
		require.NoError(t, err)

		assert.Empty(t, repo.breaks[domain.Monday])
	})
}

func TestUpdateDay_Validation(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService()

	cases := []struct {
		name   string
		mutate func(*models.UpdateDayRequest)
	}{
		{"weekday zero", func(r *models.UpdateDayRequest) { r.Weekday = 0 }},
		{"weekday eight", func(r *models.UpdateDayRequest) { r.Weekday = 8 }},
		{"malformed open time", func(r *models.UpdateDayRequest) { r.OpenTime = "9am" }},
		{"malformed close time", func(r *models.UpdateDayRequest) { r.CloseTime = "25:00" }},
		{"inverted window", func(r *models.UpdateDayRequest) { r.OpenTime, r.CloseTime = "18:00", "09:00" }},
		{"open equals close", func(r *models.UpdateDayRequest) { r.CloseTime = r.OpenTime }},
		{"inverted break", func(r *models.UpdateDayRequest) {
			r.Breaks = []models.BreakBlockPayload{{StartTime: "14:00", EndTime: "13:00"}}
		}},
		{"malformed break time", func(r *models.UpdateDayRequest) {
			r.Breaks = []models.BreakBlockPayload{{StartTime: "13:60", EndTime: "14:00"}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := mondayUpdate()
			tc.mutate(req)
			_, err := svc.UpdateDay(ctx, req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Empty(t, repo.hours, "rejected updates never reach the repository")
}
