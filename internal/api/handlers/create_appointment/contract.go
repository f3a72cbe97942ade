package create_appointment

import (
	"context"

	usecase "github.com/salonix/appointment-service/internal/usecase/create_appointment"
)

// UseCase books an appointment.
type UseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger writes log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
