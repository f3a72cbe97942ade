package create_appointment

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("create_appointment.usecase: invalid input")

	// ErrStaffUnavailable is returned when the staff member does not exist
	// or is not bookable.
	ErrStaffUnavailable = errors.New("create_appointment.usecase: staff not found or unavailable")

	// ErrServicesNotFound is returned when any requested service id does not
	// exist.
	ErrServicesNotFound = errors.New("create_appointment.usecase: services not found")

	// ErrServiceUnavailable is returned when a requested service exists but
	// is inactive.
	ErrServiceUnavailable = errors.New("create_appointment.usecase: service unavailable")

	// ErrPastDate is returned for start times in the past.
	ErrPastDate = errors.New("create_appointment.usecase: start time is in the past")

	// ErrDayBlocked is returned when the requested day is blocked.
	ErrDayBlocked = errors.New("create_appointment.usecase: day is blocked")

	// ErrOutOfHours is returned when the appointment does not fit the
	// salon's working hours.
	ErrOutOfHours = errors.New("create_appointment.usecase: outside business hours")

	// ErrInvalidDuration is returned when the combined duration exceeds the
	// booking limit.
	ErrInvalidDuration = errors.New("create_appointment.usecase: invalid total duration")

	// ErrScheduleConflict is returned when the range overlaps an occupying
	// appointment.
	ErrScheduleConflict = errors.New("create_appointment.usecase: schedule conflict")

	// ErrTxConflict is returned when the transaction lost a serialization or
	// lock race. The caller may retry the whole request.
	ErrTxConflict = errors.New("create_appointment.usecase: transaction conflict")

	// ErrTxTimeout is returned when the booking transaction exceeds its
	// wall-clock budget. Nothing was persisted.
	ErrTxTimeout = errors.New("create_appointment.usecase: transaction timed out")

	// ErrInternal wraps unexpected failures.
	ErrInternal = errors.New("create_appointment.usecase: internal error")
)
