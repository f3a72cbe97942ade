package create_appointment

import (
	"context"
	"time"

	"github.com/salonix/appointment-service/internal/domain"
	"github.com/salonix/appointment-service/internal/integrations/mailer"
)

// CatalogRepository reads staff, services and blocked days.
type CatalogRepository interface {
	FindActiveStaff(ctx context.Context, staffID string) (*domain.Staff, error)
	FindServices(ctx context.Context, ids []string) ([]*domain.Service, error)
	IsBlockedDay(ctx context.Context, day time.Time) (bool, error)
}

// ClientRepository persists clients keyed by phone number.
type ClientRepository interface {
	UpsertByPhone(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// AppointmentRepository persists appointments. FindOverlapping locks matching
// rows when called inside a transaction.
type AppointmentRepository interface {
	FindOverlapping(ctx context.Context, staffID string, rng domain.TimeRange) ([]*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	AddServices(ctx context.Context, appointmentID string, services []domain.AppointmentService) error
}

// TransactionManager runs the booking inside a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier sends the booking confirmation email. Implementations never
// return an error; delivery is best-effort.
type Notifier interface {
	SendAppointmentCreated(ctx context.Context, msg *mailer.Message) *mailer.SendResult
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
