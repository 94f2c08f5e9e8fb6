package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SPA-AppointmentService/internal/service/appointments/models"
)

// Service reads appointments with role-based scoping. Writes go through
// the usecases; this service only answers "show me" questions.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates the appointments read service.
func NewService(appointmentRepository AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepository,
		logger:          logger,
	}
}

// GetByID fetches one appointment. Customers and employees only see
// appointments they participate in.
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d role=%s", id, actor.UserID, actor.Role)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkAccess(appt, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// List returns the appointments visible to the actor, optionally
// narrowed by employee, customer, status and time range.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d role=%s", req.Actor.UserID, req.Actor.Role)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	appts, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for user=%d", len(appts), req.Actor.UserID)
	return models.FromDomainAppointmentList(appts), nil
}

// checkAccess enforces participant-only visibility for non-staff actors.
func checkAccess(appt *domain.Appointment, actor domain.Actor) error {
	if actor.IsStaff() {
		return nil
	}
	switch actor.Role {
	case domain.RoleCustomer:
		if appt.CustomerID == actor.UserID {
			return nil
		}
	case domain.RoleEmployee:
		if appt.EmployeeID == actor.UserID {
			return nil
		}
	}
	return ErrAccessDenied
}
