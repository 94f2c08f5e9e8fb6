package catalog

import (
	"context"

	"github.com/m04kA/SPA-AppointmentService/internal/domain"
)

// ServiceRepository reads the service catalog.
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context) ([]*domain.Service, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
