package get_appointment

import (
	"context"

	"github.com/salonix/appointment-service/internal/service/appointments/models"
)

// AppointmentsService reads appointments.
type AppointmentsService interface {
	GetByID(ctx context.Context, id string) (*models.AppointmentView, error)
}

// Logger writes log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
