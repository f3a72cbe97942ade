// Package update_status handles the staff-facing status transitions:
// PATCH /api/v1/appointments/{appointmentId}/confirm and /complete.
package update_status

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salonix/appointment-service/internal/api/handlers"
	"github.com/salonix/appointment-service/internal/service/appointments"
	"github.com/salonix/appointment-service/internal/service/appointments/models"
)

const (
	msgNotFound      = "appointment not found"
	msgInvalidStatus = "the appointment's current status does not allow this transition"
)

// Handler serves status transitions.
type Handler struct {
	service AppointmentsService
	log     Logger
}

// NewHandler creates the handler.
func NewHandler(service AppointmentsService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Confirm marks a pending or rescheduled appointment confirmed.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Confirm)
}

// Complete marks a confirmed or rescheduled appointment completed.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Complete)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, do func(ctx context.Context, id string) (*models.AppointmentView, error)) {
	id := mux.Vars(r)["appointmentId"]

	view, err := do(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidInput, err.Error())
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, "APPOINTMENT_NOT_FOUND", msgNotFound)
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondConflict(w, "INVALID_STATUS", msgInvalidStatus)
		default:
			h.log.Error("update_status handler: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
