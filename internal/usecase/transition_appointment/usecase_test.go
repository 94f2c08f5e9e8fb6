package transition_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	updated      map[int64]domain.AppointmentStatus
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	clone := *appt
	return &clone, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.updated[id] = status
	return nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	return f.services[id], nil
}

type fakePaymentRepo struct {
	sums map[int64]float64
}

func (f *fakePaymentRepo) SumByAppointment(_ context.Context, appointmentID int64) (float64, error) {
	return f.sums[appointmentID], nil
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
	payments     *fakePaymentRepo
	cache        *fakeCache
}

// One appointment id=42 for employee 7 on a 1000.00 service.
func newFixture(status domain.AppointmentStatus, paid float64) *fixture {
	appointments := &fakeAppointmentRepo{
		appointments: map[int64]*domain.Appointment{
			42: {
				ID: 42, CustomerID: 100, EmployeeID: 7, ServiceID: 10,
				StartAt: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
				EndAt:   time.Date(2025, 11, 3, 11, 0, 0, 0, time.UTC),
				Status:  status,
			},
		},
		updated: make(map[int64]domain.AppointmentStatus),
	}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Massage", DurationMinutes: 60, Price: 1000, IsActive: true},
	}}
	payments := &fakePaymentRepo{sums: map[int64]float64{42: paid}}
	invalidations := &fakeCache{}

	uc := NewUseCase(appointments, services, payments, fakeTxManager{}, invalidations, "DOP", nopLogger{})
	return &fixture{uc: uc, appointments: appointments, payments: payments, cache: invalidations}
}

func transition(t *testing.T, f *fixture, target domain.AppointmentStatus) (*Response, error) {
	t.Helper()
	return f.uc.Execute(context.Background(), &Request{AppointmentID: 42, TargetStatus: target})
}

func TestExecute_Graph(t *testing.T) {
	allowed := []struct {
		from, to domain.AppointmentStatus
	}{
		{domain.StatusRequested, domain.StatusValidated},
		{domain.StatusRequested, domain.StatusCanceled},
		{domain.StatusValidated, domain.StatusConfirmed},
		{domain.StatusValidated, domain.StatusCanceled},
		{domain.StatusConfirmed, domain.StatusDone},
		{domain.StatusConfirmed, domain.StatusNoShow},
		{domain.StatusConfirmed, domain.StatusCanceled},
	}
	for _, tc := range allowed {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			f := newFixture(tc.from, 1000)
			resp, err := transition(t, f, tc.to)
			require.NoError(t, err)
			assert.Equal(t, string(tc.to), resp.Status)
			assert.Equal(t, tc.to, f.appointments.updated[42])
		})
	}

	rejected := []struct {
		from, to domain.AppointmentStatus
	}{
		{domain.StatusRequested, domain.StatusConfirmed},
		{domain.StatusRequested, domain.StatusDone},
		{domain.StatusValidated, domain.StatusDone},
		{domain.StatusValidated, domain.StatusNoShow},
		{domain.StatusDone, domain.StatusCanceled},
		{domain.StatusCanceled, domain.StatusRequested},
		{domain.StatusNoShow, domain.StatusDone},
	}
	for _, tc := range rejected {
		t.Run(string(tc.from)+" to "+string(tc.to)+" rejected", func(t *testing.T) {
			f := newFixture(tc.from, 1000)
			_, err := transition(t, f, tc.to)
			require.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.Empty(t, f.appointments.updated)
		})
	}
}

func TestExecute_DepositGate(t *testing.T) {
	t.Run("below half the price blocks confirmation", func(t *testing.T) {
		f := newFixture(domain.StatusValidated, 499.99)
		_, err := transition(t, f, domain.StatusConfirmed)
		require.ErrorIs(t, err, domain.ErrPaymentInsufficient)

		var insufficient *domain.PaymentInsufficientError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 500.0, insufficient.Required)
		assert.Equal(t, 499.99, insufficient.Paid)
		assert.Equal(t, "DOP", insufficient.Currency)
		assert.Empty(t, f.appointments.updated)
	})

	t.Run("exactly half confirms", func(t *testing.T) {
		f := newFixture(domain.StatusValidated, 500)
		resp, err := transition(t, f, domain.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	})

	t.Run("gate only applies to confirmation", func(t *testing.T) {
		f := newFixture(domain.StatusRequested, 0)
		_, err := transition(t, f, domain.StatusValidated)
		require.NoError(t, err)
	})
}

func TestExecute_DoneSuggestion(t *testing.T) {
	t.Run("remaining balance", func(t *testing.T) {
		f := newFixture(domain.StatusConfirmed, 600)
		resp, err := transition(t, f, domain.StatusDone)
		require.NoError(t, err)

		require.NotNil(t, resp.Suggestion)
		assert.Equal(t, int64(42), resp.Suggestion.AppointmentID)
		assert.Equal(t, 400.0, resp.Suggestion.Amount)
		assert.Equal(t, domain.PaymentCash, resp.Suggestion.Method)
		assert.Equal(t, "Balance for Massage", resp.Suggestion.Concept)
	})

	t.Run("overpaid floors at zero", func(t *testing.T) {
		f := newFixture(domain.StatusConfirmed, 1200)
		resp, err := transition(t, f, domain.StatusDone)
		require.NoError(t, err)

		require.NotNil(t, resp.Suggestion)
		assert.Zero(t, resp.Suggestion.Amount)
	})

	t.Run("other transitions carry no suggestion", func(t *testing.T) {
		f := newFixture(domain.StatusConfirmed, 600)
		resp, err := transition(t, f, domain.StatusNoShow)
		require.NoError(t, err)
		assert.Nil(t, resp.Suggestion)
	})
}

func TestExecute_CacheInvalidation(t *testing.T) {
	t.Run("leaving an active status frees the slot", func(t *testing.T) {
		for _, target := range []domain.AppointmentStatus{
			domain.StatusCanceled,
			domain.StatusDone,
			domain.StatusNoShow,
		} {
			from := domain.StatusConfirmed
			f := newFixture(from, 1000)
			_, err := transition(t, f, target)
			require.NoError(t, err)
			assert.Equal(t, []string{"avail:7:"}, f.cache.prefixes)
		}
	})

	t.Run("active-to-active keeps the cache", func(t *testing.T) {
		f := newFixture(domain.StatusRequested, 0)
		_, err := transition(t, f, domain.StatusValidated)
		require.NoError(t, err)
		assert.Empty(t, f.cache.prefixes)
	})
}

func TestExecute_Failures(t *testing.T) {
	f := newFixture(domain.StatusRequested, 0)

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 999, TargetStatus: domain.StatusValidated})
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("unknown target status", func(t *testing.T) {
		_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 42, TargetStatus: "SOMETHING"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := f.uc.Execute(context.Background(), &Request{TargetStatus: domain.StatusValidated})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
