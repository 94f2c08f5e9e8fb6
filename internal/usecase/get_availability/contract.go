package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/internal/scheduling"
)

// ServiceRepository reads the service catalog.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AppointmentRepository lists the busy intervals the candidate slots are
// checked against.
type AppointmentRepository interface {
	ListBusyIntervals(ctx context.Context, employeeID int64, from, to time.Time, excludeID *int64) ([]scheduling.Interval, error)
}

// AvailabilityCache stores rendered responses. Best-effort: errors are
// logged, never surfaced.
type AvailabilityCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TimeProvider supplies the current time (for testing).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
