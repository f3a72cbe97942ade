package get_availability

import (
	"context"

	usecase "github.com/salonix/appointment-service/internal/usecase/get_availability"
)

// UseCase computes free slots.
type UseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger writes log lines.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
