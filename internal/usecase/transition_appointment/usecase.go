package transition_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/internal/infra/cache"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/service"
)

// UseCase drives the appointment lifecycle. Every status change goes
// through the domain transition graph; the confirmation edge additionally
// requires the deposit to be covered by linked payment entries.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	paymentRepo     PaymentRepository
	txManager       TransactionManager
	cache           AvailabilityCache
	currency        string
	logger          Logger
}

// NewUseCase creates the transition usecase. currency only labels the
// amounts in errors and suggestions.
func NewUseCase(
	appointmentRepository AppointmentRepository,
	serviceRepository ServiceRepository,
	paymentRepository PaymentRepository,
	txManager TransactionManager,
	availabilityCache AvailabilityCache,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepository,
		serviceRepo:     serviceRepository,
		paymentRepo:     paymentRepository,
		txManager:       txManager,
		cache:           availabilityCache,
		currency:        currency,
		logger:          logger,
	}
}

// Execute applies the transition. Cancellation never touches payment
// entries: money already received stays on the books (no-refund policy).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionAppointment: id=%d, target=%s", req.AppointmentID, req.TargetStatus)

	// 1. Validate the request.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment
	var suggestion *domain.PaymentSuggestion

	// 2. Read, check and update atomically. GetByID locks the row so two
	// concurrent transitions serialize instead of both passing the graph
	// check.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("TransitionAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("TransitionAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 3. The lifecycle graph is the single authority on allowed edges.
		if !appt.Status.CanTransitionTo(req.TargetStatus) {
			uc.logger.Warn("TransitionAppointment: rejected %s -> %s for id=%d",
				appt.Status, req.TargetStatus, appt.ID)
			return domain.NewInvalidTransition(appt.Status, req.TargetStatus)
		}

		// 4. Confirmation is payment-gated: at least half the service
		// price must already be on the books.
		if req.TargetStatus == domain.StatusConfirmed {
			if err := uc.checkDeposit(txCtx, appt); err != nil {
				return err
			}
		}

		// 5. Marking DONE produces the payout suggestion: the remaining
		// balance against the full price. Informational only.
		if req.TargetStatus == domain.StatusDone {
			s, err := uc.buildSuggestion(txCtx, appt)
			if err != nil {
				return err
			}
			suggestion = s
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, appt.ID, req.TargetStatus); err != nil {
			uc.logger.Error("TransitionAppointment: failed to update status: %v", err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		appt.Status = req.TargetStatus
		result = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionAppointment: appointment id=%d is now %s", result.ID, result.Status)

	// 6. Leaving an active status frees the slot, so the employee's
	// cached availability is stale. Best-effort.
	if !result.IsActive() {
		if err := uc.cache.DeletePrefix(ctx, cache.AvailabilityEmployeePrefix(result.EmployeeID)); err != nil {
			uc.logger.Warn("TransitionAppointment: cache invalidation failed: %v", err)
		}
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
		Suggestion: suggestion,
	}, nil
}

// checkDeposit enforces the confirmation rule: linked payments must cover
// at least half the service price. The boundary is inclusive.
func (uc *UseCase) checkDeposit(ctx context.Context, appt *domain.Appointment) error {
	service, err := uc.getService(ctx, appt)
	if err != nil {
		return err
	}

	paid, err := uc.paymentRepo.SumByAppointment(ctx, appt.ID)
	if err != nil {
		uc.logger.Error("TransitionAppointment: failed to sum payments for id=%d: %v", appt.ID, err)
		return fmt.Errorf("%w: failed to sum payments: %v", ErrInternal, err)
	}

	required := service.Price * domain.ConfirmationDepositShare
	if paid < required {
		uc.logger.Warn("TransitionAppointment: deposit not met for id=%d: paid %.2f of %.2f",
			appt.ID, paid, required)
		return &domain.PaymentInsufficientError{
			Required: required,
			Paid:     paid,
			Currency: uc.currency,
		}
	}

	return nil
}

// buildSuggestion computes the remaining balance to collect when the
// appointment is completed. A fully prepaid appointment suggests zero.
func (uc *UseCase) buildSuggestion(ctx context.Context, appt *domain.Appointment) (*domain.PaymentSuggestion, error) {
	service, err := uc.getService(ctx, appt)
	if err != nil {
		return nil, err
	}

	paid, err := uc.paymentRepo.SumByAppointment(ctx, appt.ID)
	if err != nil {
		uc.logger.Error("TransitionAppointment: failed to sum payments for id=%d: %v", appt.ID, err)
		return nil, fmt.Errorf("%w: failed to sum payments: %v", ErrInternal, err)
	}

	remaining := service.Price - paid
	if remaining < 0 {
		remaining = 0
	}

	return &domain.PaymentSuggestion{
		AppointmentID: appt.ID,
		Amount:        remaining,
		Method:        domain.PaymentCash,
		Concept:       fmt.Sprintf("Balance for %s", service.Name),
	}, nil
}

func (uc *UseCase) getService(ctx context.Context, appt *domain.Appointment) (*domain.Service, error) {
	service, err := uc.serviceRepo.GetByID(ctx, appt.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Error("TransitionAppointment: service id=%d missing for appointment id=%d",
				appt.ServiceID, appt.ID)
			return nil, fmt.Errorf("%w: service id=%d missing", ErrInternal, appt.ServiceID)
		}
		uc.logger.Error("TransitionAppointment: failed to get service id=%d: %v", appt.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	return service, nil
}
