package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment.
type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "pending"
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusCompleted   AppointmentStatus = "completed"
)

// OccupyingStatuses are the statuses that hold the staff member's time range.
// Cancelled and completed appointments free their slots.
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusRescheduled,
}

// Appointment is a reserved [StartAt, EndAt) range for one staff member and
// one client, bundling one or more services. Appointments are never deleted,
// only status-transitioned.
type Appointment struct {
	ID              string
	ClientID        string
	StaffID         string
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	TotalPrice      float64
	Status          AppointmentStatus

	// CancellationToken is the unguessable secret allowing the client to
	// cancel without authenticating. ConfirmationCode is the human-readable
	// booking reference shown to the client.
	CancellationToken string
	ConfirmationCode  string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOccupying returns true if the appointment holds its time range.
func (a *Appointment) IsOccupying() bool {
	for _, s := range OccupyingStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// Range returns the reserved time range.
func (a *Appointment) Range() TimeRange {
	return TimeRange{Start: a.StartAt, End: a.EndAt}
}

// CanBeCancelled returns true if the appointment still occupies its slot.
func (a *Appointment) CanBeCancelled() bool {
	return a.IsOccupying()
}

// CanBeConfirmed returns true if the appointment awaits confirmation.
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending || a.Status == StatusRescheduled
}

// CanBeCompleted returns true if the appointment can be marked completed.
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusConfirmed || a.Status == StatusRescheduled
}

// AppointmentService is one booked service line with the price captured at
// booking time. Catalog prices may change later without altering history.
type AppointmentService struct {
	ServiceID       string
	Name            string
	DurationMinutes int
	Price           float64
}

// AppointmentDetails is an appointment joined with its client, staff and
// service lines.
type AppointmentDetails struct {
	Appointment
	Client   Client
	Staff    Staff
	Services []AppointmentService
}

// StaffDayFilter selects a staff member's appointments for one calendar day.
type StaffDayFilter struct {
	StaffID         string
	DayStart        time.Time
	DayEnd          time.Time
	IncludeInactive bool // include cancelled and completed appointments
}
