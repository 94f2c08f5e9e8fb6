package payments

import (
	"context"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// PaymentRepository is the cash journal interface.
type PaymentRepository interface {
	Create(ctx context.Context, entry *domain.PaymentEntry) (*domain.PaymentEntry, error)
	ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.PaymentEntry, error)
	SumByAppointment(ctx context.Context, appointmentID int64) (float64, error)
}

// AppointmentRepository checks that a linked appointment exists.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
