package appointments

import (
	"context"
	"time"

	"github.com/salonix/appointment-service/internal/domain"
	"github.com/salonix/appointment-service/internal/integrations/mailer"
)

// AppointmentRepository reads and transitions appointments.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByCancellationToken(ctx context.Context, token string) (*domain.Appointment, error)
	GetDetails(ctx context.Context, id string) (*domain.AppointmentDetails, error)
	GetByStaffAndDay(ctx context.Context, filter domain.StaffDayFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id string) error
}

// TransactionManager wraps status transitions so the read-check-write pair
// is atomic.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier sends lifecycle emails, best-effort.
type Notifier interface {
	SendAppointmentConfirmed(ctx context.Context, msg *mailer.Message) *mailer.SendResult
	SendAppointmentCancelled(ctx context.Context, msg *mailer.Message) *mailer.SendResult
}

// Logger writes log lines.
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
