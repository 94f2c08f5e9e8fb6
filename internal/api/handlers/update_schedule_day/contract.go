package update_schedule_day

import (
	"context"

	"github.com/m04kA/SPA-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateDay(ctx context.Context, req *models.UpdateDayRequest) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
