package reschedule_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// AppointmentRepository reads and re-times appointments.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateTimeRange(ctx context.Context, id int64, startAt, endAt time.Time) error
}

// ServiceRepository reads the service catalog.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SlotValidator is the authoritative bookability gate.
type SlotValidator interface {
	ValidateSlot(ctx context.Context, employeeID int64, startAt, endAt time.Time, stepMinutes int, excludeID *int64) error
}

// AvailabilityCache invalidates cached availability after a write.
type AvailabilityCache interface {
	DeletePrefix(ctx context.Context, prefix string) error
}

// TransactionManager runs the read-validate-update triple atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
