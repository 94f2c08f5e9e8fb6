package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SPA-AppointmentService/internal/service/payments/models"
)

// Service manages the cash journal. Entries are append-only; there is no
// update or delete, and cancellations never remove money from the books.
type Service struct {
	paymentRepo     PaymentRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates the payments service.
func NewService(
	paymentRepository PaymentRepository,
	appointmentRepository AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo:     paymentRepository,
		appointmentRepo: appointmentRepository,
		logger:          logger,
	}
}

// Create records a payment entry. A linked appointment must exist; the
// entry itself carries no lifecycle side effects, confirmation reads the
// sum separately.
func (s *Service) Create(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	s.logger.Info("CreatePayment: user=%d, method=%s, amount=%.2f", req.Actor.UserID, req.Method, req.Amount)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreatePayment: validation failed: %v", err)
		return nil, err
	}

	if req.AppointmentID != nil {
		if _, err := s.appointmentRepo.GetByID(ctx, *req.AppointmentID); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("CreatePayment: appointment id=%d not found", *req.AppointmentID)
				return nil, ErrAppointmentNotFound
			}
			s.logger.Error("CreatePayment: failed to get appointment id=%d: %v", *req.AppointmentID, err)
			return nil, fmt.Errorf("%w: CreatePayment - repository error: %v", ErrInternal, err)
		}
	}

	entry := &domain.PaymentEntry{
		CreatedByUserID: req.Actor.UserID,
		Method:          domain.PaymentMethod(req.Method),
		Amount:          req.Amount,
		Concept:         req.Concept,
		AppointmentID:   req.AppointmentID,
	}

	created, err := s.paymentRepo.Create(ctx, entry)
	if err != nil {
		s.logger.Error("CreatePayment: failed to create entry: %v", err)
		return nil, fmt.Errorf("%w: CreatePayment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePayment: created entry id=%d", created.ID)
	return models.FromDomainPayment(created), nil
}

// ListByAppointment returns an appointment's entries and their total.
func (s *Service) ListByAppointment(ctx context.Context, appointmentID int64) (*models.PaymentListResponse, error) {
	s.logger.Info("ListPayments: appointment id=%d", appointmentID)

	if appointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if _, err := s.appointmentRepo.GetByID(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("ListPayments: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("ListPayments: failed to get appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: ListPayments - repository error: %v", ErrInternal, err)
	}

	entries, err := s.paymentRepo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		s.logger.Error("ListPayments: failed to list entries: %v", err)
		return nil, fmt.Errorf("%w: ListPayments - repository error: %v", ErrInternal, err)
	}

	total, err := s.paymentRepo.SumByAppointment(ctx, appointmentID)
	if err != nil {
		s.logger.Error("ListPayments: failed to sum entries: %v", err)
		return nil, fmt.Errorf("%w: ListPayments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentList(entries, total), nil
}

func validateCreateRequest(req *models.CreatePaymentRequest) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	if !domain.PaymentMethod(req.Method).IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}

	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if req.AppointmentID != nil && *req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	return nil
}
