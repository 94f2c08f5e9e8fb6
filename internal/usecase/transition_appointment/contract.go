package transition_appointment

import (
	"context"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// AppointmentRepository reads and re-statuses appointments.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// ServiceRepository reads the service catalog for the deposit and payout
// amounts.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// PaymentRepository sums the cash entries linked to an appointment.
type PaymentRepository interface {
	SumByAppointment(ctx context.Context, appointmentID int64) (float64, error)
}

// AvailabilityCache invalidates cached availability after a write.
type AvailabilityCache interface {
	DeletePrefix(ctx context.Context, prefix string) error
}

// TransactionManager runs the read-check-update triple atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
