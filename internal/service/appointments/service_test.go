package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SPA-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SPA-AppointmentService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	lastFilter   domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	out := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if filter.CustomerID != nil && appt.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.EmployeeID != nil && appt.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Appointment 1: customer 100 with employee 7.
// Appointment 2: customer 200 with employee 8.
func newService() (*Service, *fakeAppointmentRepo) {
	repo := &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{
		1: {
			ID: 1, CustomerID: 100, EmployeeID: 7, ServiceID: 10,
			StartAt: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2025, 11, 3, 11, 0, 0, 0, time.UTC),
			Status:  domain.StatusRequested,
		},
		2: {
			ID: 2, CustomerID: 200, EmployeeID: 8, ServiceID: 10,
			StartAt: time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2025, 11, 3, 13, 0, 0, 0, time.UTC),
			Status:  domain.StatusConfirmed,
		},
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestGetByID_Access(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	t.Run("staff sees everything", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleReceptionist} {
			resp, err := svc.GetByID(ctx, 1, domain.Actor{UserID: 1, Role: role})
			require.NoError(t, err)
			assert.Equal(t, int64(1), resp.ID)
		}
	})

	t.Run("customer sees own appointment", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 1, domain.Actor{UserID: 100, Role: domain.RoleCustomer})
		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.CustomerID)
	})

	t.Run("customer is denied another customer's appointment", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 2, domain.Actor{UserID: 100, Role: domain.RoleCustomer})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("employee sees own calendar entry", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 1, domain.Actor{UserID: 7, Role: domain.RoleEmployee})
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.EmployeeID)
	})

	t.Run("employee is denied another employee's entry", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 2, domain.Actor{UserID: 7, Role: domain.RoleEmployee})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 999, domain.Actor{UserID: 1, Role: domain.RoleAdmin})
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestList_Scoping(t *testing.T) {
	ctx := context.Background()

	t.Run("customer scope overrides the requested filter", func(t *testing.T) {
		svc, repo := newService()

		// The customer asks for someone else's appointments; the scope
		// silently pins the filter to their own.
		resp, err := svc.List(ctx, &models.ListAppointmentsRequest{
			Actor:      domain.Actor{UserID: 100, Role: domain.RoleCustomer},
			CustomerID: ptr.Ptr(int64(200)),
		})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.CustomerID)
		assert.Equal(t, int64(100), *repo.lastFilter.CustomerID)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(100), resp.Appointments[0].CustomerID)
	})

	t.Run("employee scope pins the employee filter", func(t *testing.T) {
		svc, repo := newService()

		resp, err := svc.List(ctx, &models.ListAppointmentsRequest{
			Actor: domain.Actor{UserID: 8, Role: domain.RoleEmployee},
		})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.EmployeeID)
		assert.Equal(t, int64(8), *repo.lastFilter.EmployeeID)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(2), resp.Appointments[0].ID)
	})

	t.Run("staff filters pass through untouched", func(t *testing.T) {
		svc, repo := newService()

		resp, err := svc.List(ctx, &models.ListAppointmentsRequest{
			Actor:      domain.Actor{UserID: 1, Role: domain.RoleReceptionist},
			EmployeeID: ptr.Ptr(int64(7)),
		})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.EmployeeID)
		assert.Equal(t, int64(7), *repo.lastFilter.EmployeeID)
		assert.Nil(t, repo.lastFilter.CustomerID)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.List(ctx, &models.ListAppointmentsRequest{
			Actor:  domain.Actor{UserID: 1, Role: domain.RoleAdmin},
			Status: ptr.Ptr("SOMEDAY"),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
