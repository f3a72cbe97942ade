package get_availability

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("get_availability.usecase: invalid input")

	// ErrStaffNotFound is returned when the staff member does not exist or
	// is not bookable.
	ErrStaffNotFound = errors.New("get_availability.usecase: staff not found or unavailable")

	// ErrServicesNotFound is returned when any requested service is missing
	// or inactive.
	ErrServicesNotFound = errors.New("get_availability.usecase: services not found")

	// ErrPastDate is returned for dates before today.
	ErrPastDate = errors.New("get_availability.usecase: date is in the past")

	// ErrInvalidDuration is returned when the combined duration exceeds the
	// booking limit.
	ErrInvalidDuration = errors.New("get_availability.usecase: invalid total duration")

	// ErrInternal wraps unexpected storage failures.
	ErrInternal = errors.New("get_availability.usecase: internal error")
)
