package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/internal/infra/cache"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SPA-AppointmentService/internal/scheduling"
)

// UseCase moves an appointment to a new slot. The new slot is validated
// with the appointment itself excluded from conflict detection, so moving
// within or adjacent to its current range works.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	validator       SlotValidator
	txManager       TransactionManager
	cache           AvailabilityCache
	logger          Logger
}

// NewUseCase creates the reschedule usecase.
func NewUseCase(
	appointmentRepository AppointmentRepository,
	serviceRepository ServiceRepository,
	validator SlotValidator,
	txManager TransactionManager,
	availabilityCache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepository,
		serviceRepo:     serviceRepository,
		validator:       validator,
		txManager:       txManager,
		cache:           availabilityCache,
		logger:          logger,
	}
}

// Execute moves the appointment. Only REQUESTED and VALIDATED
// appointments can move; confirmed ones are locked to their slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d, newStart=%s",
		req.AppointmentID, req.NewStartAt.Format(time.RFC3339))

	// 1. Validate the request and resolve the grid step.
	step, err := validateRequest(req, domain.DefaultStepMinutes)
	if err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Read, validate and update atomically. GetByID locks the row so a
	// concurrent transition cannot slip between the status check and the
	// time update.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !appt.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d in status %s cannot move",
				appt.ID, appt.Status)
			return ErrNotReschedulable
		}

		// The duration comes from the service, not from the current range:
		// a catalog duration change applies on the next reschedule.
		service, err := uc.serviceRepo.GetByID(txCtx, appt.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Error("RescheduleAppointment: service id=%d missing for appointment id=%d",
					appt.ServiceID, appt.ID)
				return fmt.Errorf("%w: service id=%d missing", ErrInternal, appt.ServiceID)
			}
			uc.logger.Error("RescheduleAppointment: failed to get service id=%d: %v", appt.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		startAt := req.NewStartAt
		endAt := startAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

		if err := uc.validator.ValidateSlot(txCtx, appt.EmployeeID, startAt, endAt, step, &appt.ID); err != nil {
			if errors.Is(err, scheduling.ErrSlotInvalid) {
				uc.logger.Warn("RescheduleAppointment: slot rejected (%s): %v", scheduling.ReasonOf(err), err)
				return err
			}
			uc.logger.Error("RescheduleAppointment: slot validation failed: %v", err)
			return fmt.Errorf("%w: slot validation failed: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.UpdateTimeRange(txCtx, appt.ID, startAt, endAt); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotConflict) {
				uc.logger.Warn("RescheduleAppointment: exclusion constraint rejected overlap for employee=%d", appt.EmployeeID)
				return scheduling.NewSlotError(scheduling.ReasonSlotConflict, "time slot not available")
			}
			uc.logger.Error("RescheduleAppointment: failed to update time range: %v", err)
			return fmt.Errorf("%w: failed to update time range: %v", ErrInternal, err)
		}

		appt.StartAt = startAt
		appt.EndAt = endAt
		result = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: moved appointment id=%d to %s",
		result.ID, result.StartAt.Format(time.RFC3339))

	// 3. Drop the employee's cached availability. Best-effort.
	if err := uc.cache.DeletePrefix(ctx, cache.AvailabilityEmployeePrefix(result.EmployeeID)); err != nil {
		uc.logger.Warn("RescheduleAppointment: cache invalidation failed: %v", err)
	}

	return &Response{
		ID:         result.ID,
		CustomerID: result.CustomerID,
		EmployeeID: result.EmployeeID,
		ServiceID:  result.ServiceID,
		StartAt:    result.StartAt,
		EndAt:      result.EndAt,
		Status:     string(result.Status),
		Notes:      result.Notes,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
