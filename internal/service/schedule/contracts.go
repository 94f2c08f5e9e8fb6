package schedule

import (
	"context"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// ScheduleRepository reads and writes the weekly template.
type ScheduleRepository interface {
	ListHours(ctx context.Context) ([]*domain.BusinessHours, error)
	ListBreaks(ctx context.Context) ([]*domain.BreakBlock, error)
	UpsertHours(ctx context.Context, hours *domain.BusinessHours) error
	ReplaceBreaks(ctx context.Context, weekday domain.Weekday, blocks []*domain.BreakBlock) error
}

// AvailabilityCache invalidates cached availability after a template
// change.
type AvailabilityCache interface {
	DeletePrefix(ctx context.Context, prefix string) error
}

// TransactionManager keeps the hours upsert and break replacement atomic.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
