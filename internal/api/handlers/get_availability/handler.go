package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SPA-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	getAvailability "github.com/m04kA/SPA-AppointmentService/internal/usecase/get_availability"
)

const (
	msgInvalidEmployeeID = "invalid or missing employeeId parameter"
	msgInvalidServiceID  = "invalid or missing serviceId parameter"
	msgInvalidDate       = "invalid or missing date parameter, expected YYYY-MM-DD"
	msgInvalidStep       = "invalid stepMinutes parameter"
	msgServiceNotFound   = "service not found"
	msgInvalidInput      = "invalid input data"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?employeeId=&serviceId=&date=&stepMinutes=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	employeeID, err := strconv.ParseInt(query.Get("employeeId"), 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var stepMinutes *int
	if raw := query.Get("stepMinutes"); raw != "" {
		step, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidStep)
			return
		}
		stepMinutes = &step
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		EmployeeID:  employeeID,
		ServiceID:   serviceID,
		Date:        date,
		StepMinutes: stepMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed: employee_id=%d, service_id=%d, error=%v",
				employeeID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
