// Package models holds the transport-facing views of appointments returned
// by the appointments service.
package models

// ServiceLine is one booked service with the price captured at booking time.
type ServiceLine struct {
	ServiceID       string  `json:"serviceId"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// AppointmentView is the full read model of one appointment. It never
// carries the cancellation token.
type AppointmentView struct {
	ID               string        `json:"id"`
	ConfirmationCode string        `json:"confirmationCode"`
	Status           string        `json:"status"`
	ClientName       string        `json:"clientName"`
	ClientPhone      string        `json:"clientPhone"`
	ClientEmail      *string       `json:"clientEmail,omitempty"`
	StaffID          string        `json:"staffId"`
	StaffName        string        `json:"staffName"`
	Date             string        `json:"date"`
	StartTime        string        `json:"startTime"`
	EndTime          string        `json:"endTime"`
	DurationMinutes  int           `json:"durationMinutes"`
	TotalPrice       float64       `json:"totalPrice"`
	Services         []ServiceLine `json:"services"`
	CancelledAt      *string       `json:"cancelledAt,omitempty"`
}

// StaffDayAppointment is one row of a staff member's daily schedule.
type StaffDayAppointment struct {
	ID               string  `json:"id"`
	ConfirmationCode string  `json:"confirmationCode"`
	Status           string  `json:"status"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	DurationMinutes  int     `json:"durationMinutes"`
	TotalPrice       float64 `json:"totalPrice"`
}

// StaffDaySchedule lists a staff member's appointments for one date.
type StaffDaySchedule struct {
	StaffID      string                `json:"staffId"`
	Date         string                `json:"date"`
	Appointments []StaffDayAppointment `json:"appointments"`
}
