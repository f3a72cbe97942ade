package domain

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default schedule values, used when the configuration omits them.
const (
	DefaultSlotStepMinutes       = 15
	DefaultMaxAppointmentMinutes = 180
)

// Input validation limits.
const (
	MinClientNameLength   = 3
	MaxClientNameLength   = 100
	MaxServicesPerBooking = 10
)
