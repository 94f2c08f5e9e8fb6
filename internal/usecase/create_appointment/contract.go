package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// AppointmentRepository persists appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ServiceRepository reads the service catalog.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// UserRepository reads users for the employee check.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SlotValidator is the authoritative bookability gate.
type SlotValidator interface {
	ValidateSlot(ctx context.Context, employeeID int64, startAt, endAt time.Time, stepMinutes int, excludeID *int64) error
}

// AvailabilityCache invalidates cached availability after a write.
type AvailabilityCache interface {
	DeletePrefix(ctx context.Context, prefix string) error
}

// TransactionManager runs the validate-and-insert pair atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
