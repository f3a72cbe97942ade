// Package create_appointment handles POST /api/v1/appointments.
package create_appointment

import (
	"errors"
	"net/http"

	"github.com/salonix/appointment-service/internal/api/handlers"
	usecase "github.com/salonix/appointment-service/internal/usecase/create_appointment"
)

const (
	msgStaffUnavailable   = "staff member not found or not available for booking"
	msgServicesNotFound   = "one or more services were not found"
	msgServiceUnavailable = "one or more services are not available"
	msgPastDate           = "appointment start must be in the future"
	msgDayBlocked         = "the salon is closed on the requested day"
	msgOutOfHours         = "appointment does not fit the salon's working hours"
	msgInvalidDuration    = "combined service duration exceeds the booking limit"
	msgScheduleConflict   = "the requested time is no longer available"
	msgTxConflict         = "booking conflicted with a concurrent request, please retry"
	msgTxTimeout          = "booking timed out, please retry"
)

// Handler serves the booking endpoint.
type Handler struct {
	useCase UseCase
	log     Logger
}

// NewHandler creates the booking handler.
func NewHandler(useCase UseCase, log Logger) *Handler {
	return &Handler{useCase: useCase, log: log}
}

// Handle decodes the booking request, runs the use case and maps its errors
// onto HTTP statuses.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req usecase.Request
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, err.Error())
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, resp)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, err.Error())
	case errors.Is(err, usecase.ErrStaffUnavailable):
		handlers.RespondBadRequest(w, "STAFF_UNAVAILABLE", msgStaffUnavailable)
	case errors.Is(err, usecase.ErrServicesNotFound):
		handlers.RespondNotFound(w, "SERVICES_NOT_FOUND", msgServicesNotFound)
	case errors.Is(err, usecase.ErrServiceUnavailable):
		handlers.RespondBadRequest(w, "SERVICE_UNAVAILABLE", msgServiceUnavailable)
	case errors.Is(err, usecase.ErrPastDate):
		handlers.RespondBadRequest(w, "PAST_DATE", msgPastDate)
	case errors.Is(err, usecase.ErrDayBlocked):
		handlers.RespondBadRequest(w, "DAY_BLOCKED", msgDayBlocked)
	case errors.Is(err, usecase.ErrOutOfHours):
		handlers.RespondConflict(w, "OUT_OF_HOURS", msgOutOfHours)
	case errors.Is(err, usecase.ErrInvalidDuration):
		handlers.RespondBadRequest(w, "INVALID_DURATION", msgInvalidDuration)
	case errors.Is(err, usecase.ErrScheduleConflict):
		handlers.RespondConflict(w, "SCHEDULE_CONFLICT", msgScheduleConflict)
	case errors.Is(err, usecase.ErrTxConflict):
		handlers.RespondConflict(w, "CONFLICT", msgTxConflict)
	case errors.Is(err, usecase.ErrTxTimeout):
		handlers.RespondError(w, http.StatusRequestTimeout, "TIMEOUT", msgTxTimeout)
	default:
		h.log.Error("create_appointment handler: %v", err)
		handlers.RespondInternalError(w)
	}
}
