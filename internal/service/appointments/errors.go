package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the id
	// or cancellation token.
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrCannotCancel is returned when the appointment is already cancelled
	// or completed.
	ErrCannotCancel = errors.New("appointments.service: appointment cannot be cancelled")

	// ErrInvalidTransition is returned when the requested status change is
	// not allowed from the current status.
	ErrInvalidTransition = errors.New("appointments.service: invalid status transition")

	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("appointments.service: invalid input")

	// ErrInternal wraps unexpected storage failures.
	ErrInternal = errors.New("appointments.service: internal error")
)
