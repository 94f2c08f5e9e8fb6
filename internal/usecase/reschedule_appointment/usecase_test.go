package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SPA-AppointmentService/internal/scheduling"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	updateErr    error
	updatedID    int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	clone := *appt
	return &clone, nil
}

func (f *fakeAppointmentRepo) UpdateTimeRange(_ context.Context, id int64, startAt, endAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	appt := f.appointments[id]
	appt.StartAt = startAt
	appt.EndAt = endAt
	f.updatedID = id
	return nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type validatorCall struct {
	employeeID int64
	startAt    time.Time
	endAt      time.Time
	excludeID  *int64
}

type fakeValidator struct {
	err   error
	calls []validatorCall
}

func (f *fakeValidator) ValidateSlot(_ context.Context, employeeID int64, startAt, endAt time.Time, _ int, excludeID *int64) error {
	f.calls = append(f.calls, validatorCall{employeeID: employeeID, startAt: startAt, endAt: endAt, excludeID: excludeID})
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

var (
	oldStart = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	newStart = time.Date(2025, 11, 4, 15, 0, 0, 0, time.UTC)
)

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointmentRepo
	validator    *fakeValidator
	cache        *fakeCache
}

func newFixture(status domain.AppointmentStatus) *fixture {
	appointments := &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{
		42: {
			ID: 42, CustomerID: 100, EmployeeID: 7, ServiceID: 10,
			StartAt: oldStart, EndAt: oldStart.Add(45 * time.Minute),
			Status: status,
		},
	}}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Haircut", DurationMinutes: 60, Price: 500, IsActive: true},
	}}
	validator := &fakeValidator{}
	invalidations := &fakeCache{}

	uc := NewUseCase(appointments, services, validator, fakeTxManager{}, invalidations, nopLogger{})
	return &fixture{uc: uc, appointments: appointments, validator: validator, cache: invalidations}
}

func TestExecute_Moves(t *testing.T) {
	ctx := context.Background()
	f := newFixture(domain.StatusValidated)

	resp, err := f.uc.Execute(ctx, &Request{AppointmentID: 42, NewStartAt: newStart})
	require.NoError(t, err)

	assert.True(t, resp.StartAt.Equal(newStart))
	// The end re-derives from the current catalog duration (60), not from
	// the old range (45).
	assert.True(t, resp.EndAt.Equal(newStart.Add(time.Hour)))
	assert.Equal(t, string(domain.StatusValidated), resp.Status, "reschedule keeps the status")

	require.Len(t, f.validator.calls, 1)
	call := f.validator.calls[0]
	assert.Equal(t, int64(7), call.employeeID)
	require.NotNil(t, call.excludeID, "the appointment is excluded from its own conflict check")
	assert.Equal(t, int64(42), *call.excludeID)

	assert.Equal(t, int64(42), f.appointments.updatedID)
	assert.Equal(t, []string{"avail:7:"}, f.cache.prefixes)
}

func TestExecute_StatusGate(t *testing.T) {
	ctx := context.Background()

	t.Run("requested can move", func(t *testing.T) {
		f := newFixture(domain.StatusRequested)
		_, err := f.uc.Execute(ctx, &Request{AppointmentID: 42, NewStartAt: newStart})
		require.NoError(t, err)
	})

	for _, status := range []domain.AppointmentStatus{
		domain.StatusConfirmed,
		domain.StatusDone,
		domain.StatusNoShow,
		domain.StatusCanceled,
	} {
		t.Run(string(status)+" is locked", func(t *testing.T) {
			f := newFixture(status)
			_, err := f.uc.Execute(ctx, &Request{AppointmentID: 42, NewStartAt: newStart})
			require.ErrorIs(t, err, ErrNotReschedulable)
			assert.Zero(t, f.appointments.updatedID)
		})
	}
}

func TestExecute_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown appointment", func(t *testing.T) {
		f := newFixture(domain.StatusRequested)
		_, err := f.uc.Execute(ctx, &Request{AppointmentID: 999, NewStartAt: newStart})
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("validator rejection passes through", func(t *testing.T) {
		f := newFixture(domain.StatusRequested)
		f.validator.err = scheduling.NewSlotError(scheduling.ReasonSlotConflict, "time slot not available")

		_, err := f.uc.Execute(ctx, &Request{AppointmentID: 42, NewStartAt: newStart})
		require.ErrorIs(t, err, scheduling.ErrSlotInvalid)
		assert.Zero(t, f.appointments.updatedID)
		assert.Empty(t, f.cache.prefixes)
	})

	t.Run("exclusion constraint maps to a slot conflict", func(t *testing.T) {
		f := newFixture(domain.StatusRequested)
		f.appointments.updateErr = appointmentRepo.ErrSlotConflict

		_, err := f.uc.Execute(ctx, &Request{AppointmentID: 42, NewStartAt: newStart})
		require.ErrorIs(t, err, scheduling.ErrSlotInvalid)
		assert.Equal(t, scheduling.ReasonSlotConflict, scheduling.ReasonOf(err))
	})

	t.Run("missing id or start", func(t *testing.T) {
		f := newFixture(domain.StatusRequested)
		_, err := f.uc.Execute(ctx, &Request{NewStartAt: newStart})
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.uc.Execute(ctx, &Request{AppointmentID: 42})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
