package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SPA-AppointmentService/internal/scheduling"
	"github.com/m04kA/SPA-AppointmentService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	createErr error
	created   *domain.Appointment
	nextID    int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	return appt, nil
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

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeValidator struct {
	err   error
	calls int
}

func (f *fakeValidator) ValidateSlot(_ context.Context, _ int64, _, _ time.Time, _ int, _ *int64) error {
	f.calls++
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

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointmentRepo
	validator    *fakeValidator
	cache        *fakeCache
}

func newFixture() *fixture {
	appointments := &fakeAppointmentRepo{}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Haircut", DurationMinutes: 45, Price: 500, IsActive: true},
		11: {ID: 11, Name: "Retired", DurationMinutes: 45, Price: 500, IsActive: false},
	}}
	users := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Role: domain.RoleEmployee, IsActive: true},
		2: {ID: 2, Role: domain.RoleEmployee, IsActive: false},
		3: {ID: 3, Role: domain.RoleCustomer, IsActive: true},
	}}
	validator := &fakeValidator{}
	invalidations := &fakeCache{}

	uc := NewUseCase(appointments, services, users, validator, fakeTxManager{}, invalidations, nopLogger{})
	return &fixture{uc: uc, appointments: appointments, validator: validator, cache: invalidations}
}

var start = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

func createRequest() *Request {
	return &Request{CustomerID: 100, EmployeeID: 1, ServiceID: 10, StartAt: start}
}

func TestExecute_Creates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	resp, err := f.uc.Execute(ctx, createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusRequested), resp.Status)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, 45, resp.DurationMinutes)

	// End derives from the catalog duration, not from the client.
	assert.True(t, resp.EndAt.Equal(start.Add(45*time.Minute)))

	require.Equal(t, 1, f.validator.calls)
	assert.Equal(t, []string{"avail:1:"}, f.cache.prefixes)
}

func TestExecute_SlotRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("validator rejection passes through with its reason", func(t *testing.T) {
		f := newFixture()
		f.validator.err = scheduling.NewSlotError(scheduling.ReasonOutsideHours, "outside business hours")

		_, err := f.uc.Execute(ctx, createRequest())
		require.ErrorIs(t, err, scheduling.ErrSlotInvalid)
		assert.Equal(t, scheduling.ReasonOutsideHours, scheduling.ReasonOf(err))
		assert.Nil(t, f.appointments.created)
		assert.Empty(t, f.cache.prefixes, "no invalidation on a failed create")
	})

	t.Run("exclusion constraint maps to a slot conflict", func(t *testing.T) {
		f := newFixture()
		f.appointments.createErr = appointmentRepo.ErrSlotConflict

		_, err := f.uc.Execute(ctx, createRequest())
		require.ErrorIs(t, err, scheduling.ErrSlotInvalid)
		assert.Equal(t, scheduling.ReasonSlotConflict, scheduling.ReasonOf(err))
	})
}

func TestExecute_ReferenceChecks(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("unknown service", func(t *testing.T) {
		req := createRequest()
		req.ServiceID = 999
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("inactive service", func(t *testing.T) {
		req := createRequest()
		req.ServiceID = 11
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("unknown employee", func(t *testing.T) {
		req := createRequest()
		req.EmployeeID = 999
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrEmployeeNotFound)
	})

	t.Run("deactivated employee", func(t *testing.T) {
		req := createRequest()
		req.EmployeeID = 2
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrEmployeeNotFound)
	})

	t.Run("non-employee user is not bookable", func(t *testing.T) {
		req := createRequest()
		req.EmployeeID = 3
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestExecute_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("missing fields", func(t *testing.T) {
		for _, req := range []*Request{
			{EmployeeID: 1, ServiceID: 10, StartAt: start},
			{CustomerID: 100, ServiceID: 10, StartAt: start},
			{CustomerID: 100, EmployeeID: 1, StartAt: start},
			{CustomerID: 100, EmployeeID: 1, ServiceID: 10},
		} {
			_, err := f.uc.Execute(ctx, req)
			require.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("oversized notes", func(t *testing.T) {
		long := make([]byte, domain.MaxNotesLength+1)
		for i := range long {
			long[i] = 'x'
		}
		req := createRequest()
		req.Notes = ptr.Ptr(string(long))
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("step outside bounds", func(t *testing.T) {
		req := createRequest()
		req.StepMinutes = ptr.Ptr(2)
		_, err := f.uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	assert.Zero(t, f.validator.calls, "validation failures never reach the slot validator")
}
