// Package cancel_appointment handles POST /api/v1/appointments/cancel.
// The cancellation token is the only credential, so the endpoint is public.
package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/salonix/appointment-service/internal/api/handlers"
	"github.com/salonix/appointment-service/internal/service/appointments"
)

const (
	msgNotFound     = "no appointment matches this cancellation token"
	msgCannotCancel = "the appointment is already cancelled or completed"
)

// Handler serves token-based cancellation.
type Handler struct {
	service AppointmentsService
	log     Logger
}

// NewHandler creates the handler.
func NewHandler(service AppointmentsService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle cancels the appointment identified by the request token.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, err.Error())
		return
	}

	view, err := h.service.CancelByToken(r.Context(), req.CancellationToken)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidInput, err.Error())
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, "APPOINTMENT_NOT_FOUND", msgNotFound)
		case errors.Is(err, appointments.ErrCannotCancel):
			handlers.RespondConflict(w, "CANNOT_CANCEL", msgCannotCancel)
		default:
			h.log.Error("cancel_appointment handler: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
