package transition_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SPA-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	transitionAppointment "github.com/m04kA/SPA-AppointmentService/internal/usecase/transition_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgAppointmentNotFound  = "appointment not found"
	msgInvalidInput         = "invalid input data"
)

// Handler drives every lifecycle endpoint. Each route binds one target
// status; the usecase decides whether the edge is legal.
type Handler struct {
	useCase TransitionAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase TransitionAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleValidate POST /api/v1/appointments/{id}/validate
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, domain.StatusValidated, "validate")
}

// HandleConfirm POST /api/v1/appointments/{id}/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, domain.StatusConfirmed, "confirm")
}

// HandleCancel POST /api/v1/appointments/{id}/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, domain.StatusCanceled, "cancel")
}

// HandleNoShow POST /api/v1/appointments/{id}/no-show
func (h *Handler) HandleNoShow(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, domain.StatusNoShow, "no-show")
}

// HandleDone POST /api/v1/appointments/{id}/done
func (h *Handler) HandleDone(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, domain.StatusDone, "done")
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, target domain.AppointmentStatus, action string) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionAppointment.Request{
		AppointmentID: appointmentID,
		TargetStatus:  target,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/%d/%s - Not found", appointmentID, action)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, domain.ErrInvalidTransition):
			h.logger.Warn("POST /appointments/%d/%s - Invalid transition: %v", appointmentID, action, err)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, domain.ErrPaymentInsufficient):
			h.logger.Warn("POST /appointments/%d/%s - Deposit not met: %v", appointmentID, action, err)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, transitionAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/%d/%s - Invalid input: %v", appointmentID, action, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments/%d/%s - Failed: %v", appointmentID, action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/%d/%s - Status is now %s", result.ID, action, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
