package get_staff_appointments

import (
	"context"

	"github.com/salonix/appointment-service/internal/service/appointments/models"
)

// AppointmentsService reads staff schedules.
type AppointmentsService interface {
	GetStaffDay(ctx context.Context, staffID, date string, includeInactive bool) (*models.StaffDaySchedule, error)
}

// Logger writes log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
