package list_appointment_payments

import (
	"context"

	"github.com/m04kA/SPA-AppointmentService/internal/service/payments/models"
)

type PaymentsService interface {
	ListByAppointment(ctx context.Context, appointmentID int64) (*models.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
