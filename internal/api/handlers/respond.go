package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SPA-AppointmentService/internal/scheduling"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// RespondJSON writes a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError writes an error response with the given status code.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest writes a 400 response.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound writes a 404 response.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondForbidden writes a 403 response.
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondConflict writes a 409 response.
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError writes a 500 response.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

// RespondSlotError maps a scheduling violation to HTTP: a conflict with
// another appointment is 409, every other rejected slot is 400. The
// machine-readable reason rides along so clients can branch without
// parsing messages.
func RespondSlotError(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, scheduling.ErrSlotInvalid) {
		return false
	}

	reason := scheduling.ReasonOf(err)
	status := http.StatusBadRequest
	if reason == scheduling.ReasonSlotConflict {
		status = http.StatusConflict
	}

	RespondJSON(w, status, ErrorResponse{Error: err.Error(), Reason: string(reason)})
	return true
}
