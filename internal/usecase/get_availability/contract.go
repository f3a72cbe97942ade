package get_availability

import (
	"context"
	"time"

	"github.com/salonix/appointment-service/internal/domain"
)

// CatalogRepository reads staff, services and blocked days.
type CatalogRepository interface {
	FindActiveStaff(ctx context.Context, staffID string) (*domain.Staff, error)
	FindServices(ctx context.Context, ids []string) ([]*domain.Service, error)
	IsBlockedDay(ctx context.Context, day time.Time) (bool, error)
}

// AppointmentRepository reads existing appointments.
type AppointmentRepository interface {
	GetByStaffAndDay(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Appointment, error)
}

// Logger writes structured-ish log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider abstracts the clock for tests.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }
