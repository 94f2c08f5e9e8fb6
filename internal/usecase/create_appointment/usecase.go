package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/internal/infra/cache"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SPA-AppointmentService/internal/scheduling"
)

// UseCase creates an appointment. Slot validation and the insert run in
// one serializable transaction so two racing requests for the same slot
// cannot both pass the conflict check.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	userRepo        UserRepository
	validator       SlotValidator
	txManager       TransactionManager
	cache           AvailabilityCache
	logger          Logger
}

// NewUseCase creates the appointment creation usecase.
func NewUseCase(
	appointmentRepository AppointmentRepository,
	serviceRepository ServiceRepository,
	userRepository UserRepository,
	validator SlotValidator,
	txManager TransactionManager,
	availabilityCache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepository,
		serviceRepo:     serviceRepository,
		userRepo:        userRepository,
		validator:       validator,
		txManager:       txManager,
		cache:           availabilityCache,
		logger:          logger,
	}
}

// Execute creates the appointment. The new appointment always starts in
// REQUESTED; confirmation is a separate, payment-gated transition.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, employee=%d, service=%d, start=%s",
		req.CustomerID, req.EmployeeID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	// 1. Validate the request and resolve the grid step.
	step, err := validateRequest(req, domain.DefaultStepMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. The service fixes the duration and must be bookable.
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. The employee must exist, be staff, and be active.
	employee, err := uc.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	if err := validateEmployee(employee); err != nil {
		uc.logger.Warn("CreateAppointment: user id=%d is not a bookable employee", req.EmployeeID)
		return nil, err
	}

	// 4. The end instant is derived, never client-supplied.
	startAt := req.StartAt
	endAt := startAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	var result *domain.Appointment

	// 5. Validate and insert atomically. The serializable isolation level
	// plus the row locks taken by the conflict check close the race
	// between two requests for the same slot.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.validator.ValidateSlot(txCtx, req.EmployeeID, startAt, endAt, step, nil); err != nil {
			if errors.Is(err, scheduling.ErrSlotInvalid) {
				uc.logger.Warn("CreateAppointment: slot rejected (%s): %v", scheduling.ReasonOf(err), err)
				return err
			}
			uc.logger.Error("CreateAppointment: slot validation failed: %v", err)
			return fmt.Errorf("%w: slot validation failed: %v", ErrInternal, err)
		}

		appt := &domain.Appointment{
			CustomerID: req.CustomerID,
			EmployeeID: req.EmployeeID,
			ServiceID:  req.ServiceID,
			StartAt:    startAt,
			EndAt:      endAt,
			Status:     domain.StatusRequested,
			Notes:      req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// The exclusion constraint is the concurrency backstop behind
			// the validator; report its rejection as the same conflict.
			if errors.Is(err, appointmentRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateAppointment: exclusion constraint rejected overlap for employee=%d", req.EmployeeID)
				return scheduling.NewSlotError(scheduling.ReasonSlotConflict, "time slot not available")
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d", result.ID)

	// 6. Drop the employee's cached availability. Best-effort.
	if err := uc.cache.DeletePrefix(ctx, cache.AvailabilityEmployeePrefix(req.EmployeeID)); err != nil {
		uc.logger.Warn("CreateAppointment: cache invalidation failed: %v", err)
	}

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		EmployeeID:      result.EmployeeID,
		ServiceID:       result.ServiceID,
		StartAt:         result.StartAt,
		EndAt:           result.EndAt,
		Status:          string(result.Status),
		DurationMinutes: service.DurationMinutes,
		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
