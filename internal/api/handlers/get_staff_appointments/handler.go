// Package get_staff_appointments handles
// GET /api/v1/staff/{staffId}/appointments?date=YYYY-MM-DD&includeInactive=.
package get_staff_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonix/appointment-service/internal/api/handlers"
	"github.com/salonix/appointment-service/internal/service/appointments"
)

// Handler serves a staff member's daily schedule.
type Handler struct {
	service AppointmentsService
	log     Logger
}

// NewHandler creates the handler.
func NewHandler(service AppointmentsService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle returns the staff member's appointments for the requested date.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["staffId"]
	date := r.URL.Query().Get("date")
	includeInactive, _ := strconv.ParseBool(r.URL.Query().Get("includeInactive"))

	schedule, err := h.service.GetStaffDay(r.Context(), staffID, date, includeInactive)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidInput, err.Error())
		default:
			h.log.Error("get_staff_appointments handler: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, schedule)
}
