// Package get_availability handles GET /api/v1/availability.
package get_availability

import (
	"errors"
	"net/http"
	"strings"

	"github.com/salonix/appointment-service/internal/api/handlers"
	usecase "github.com/salonix/appointment-service/internal/usecase/get_availability"
)

const (
	msgStaffNotFound    = "staff member not found or not available for booking"
	msgServicesNotFound = "one or more services were not found"
	msgPastDate         = "date must be today or later"
	msgInvalidDuration  = "combined service duration exceeds the booking limit"
)

// Handler serves availability queries.
type Handler struct {
	useCase UseCase
	log     Logger
}

// NewHandler creates the availability handler.
func NewHandler(useCase UseCase, log Logger) *Handler {
	return &Handler{useCase: useCase, log: log}
}

// Handle reads the query parameters, runs the use case and maps its errors
// onto HTTP statuses. serviceIds is a comma-separated list.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &usecase.Request{
		StaffID: query.Get("staffId"),
		Date:    query.Get("date"),
	}
	if raw := query.Get("serviceIds"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				req.ServiceIDs = append(req.ServiceIDs, trimmed)
			}
		}
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		handlers.RespondBadRequest(w, handlers.CodeInvalidInput, err.Error())
	case errors.Is(err, usecase.ErrStaffNotFound):
		handlers.RespondNotFound(w, "STAFF_NOT_FOUND", msgStaffNotFound)
	case errors.Is(err, usecase.ErrServicesNotFound):
		handlers.RespondNotFound(w, "SERVICES_NOT_FOUND", msgServicesNotFound)
	case errors.Is(err, usecase.ErrPastDate):
		handlers.RespondBadRequest(w, "PAST_DATE", msgPastDate)
	case errors.Is(err, usecase.ErrInvalidDuration):
		handlers.RespondBadRequest(w, "INVALID_DURATION", msgInvalidDuration)
	default:
		h.log.Error("get_availability handler: %v", err)
		handlers.RespondInternalError(w)
	}
}
