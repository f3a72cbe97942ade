package cancel_appointment

import (
	"context"

	"github.com/salonix/appointment-service/internal/service/appointments/models"
)

// AppointmentsService cancels appointments by token.
type AppointmentsService interface {
	CancelByToken(ctx context.Context, token string) (*models.AppointmentView, error)
}

// Logger writes log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
