package update_status

import (
	"context"

	"github.com/salonix/appointment-service/internal/service/appointments/models"
)

// AppointmentsService transitions appointment statuses.
type AppointmentsService interface {
	Confirm(ctx context.Context, id string) (*models.AppointmentView, error)
	Complete(ctx context.Context, id string) (*models.AppointmentView, error)
}

// Logger writes log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
