package update_schedule_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SPA-AppointmentService/internal/service/schedule"
	"github.com/m04kA/SPA-AppointmentService/internal/service/schedule/models"
)

const (
	msgInvalidWeekday     = "invalid weekday, expected 1 (Monday) .. 7 (Sunday)"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weekday, err := strconv.Atoi(mux.Vars(r)["weekday"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	var req models.UpdateDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/%d - Invalid request body: %v", weekday, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// The path, not the body, names the day being updated.
	req.Weekday = weekday

	result, err := h.service.UpdateDay(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/%d - Invalid input: %v", weekday, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /schedule/%d - Failed: %v", weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/%d - Updated", weekday)
	handlers.RespondJSON(w, http.StatusOK, result)
}
