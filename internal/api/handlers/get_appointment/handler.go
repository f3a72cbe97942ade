// Package get_appointment handles GET /api/v1/appointments/{appointmentId}.
package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salonix/appointment-service/internal/api/handlers"
	"github.com/salonix/appointment-service/internal/service/appointments"
)

const msgNotFound = "appointment not found"

// Handler serves single-appointment reads.
type Handler struct {
	service AppointmentsService
	log     Logger
}

// NewHandler creates the handler.
func NewHandler(service AppointmentsService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle returns the appointment identified by the path id.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["appointmentId"]

	view, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidInput, err.Error())
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, "APPOINTMENT_NOT_FOUND", msgNotFound)
		default:
			h.log.Error("get_appointment handler: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
