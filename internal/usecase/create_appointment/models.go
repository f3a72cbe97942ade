package create_appointment

// Request books an appointment. Date and StartTime are interpreted in the
// salon's timezone.
type Request struct {
	ClientName string   `json:"clientName"`
	Phone      string   `json:"phone"`
	Email      *string  `json:"email,omitempty"`
	StaffID    string   `json:"staffId"`
	Date       string   `json:"date"`      // YYYY-MM-DD
	StartTime  string   `json:"startTime"` // HH:MM
	ServiceIDs []string `json:"serviceIds"`
}

// ServiceLine is one booked service with its price at booking time.
type ServiceLine struct {
	ServiceID       string  `json:"serviceId"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// Response describes the created appointment. The cancellation token is
// returned exactly once, here; it is never exposed by read endpoints.
type Response struct {
	AppointmentID     string        `json:"appointmentId"`
	ConfirmationCode  string        `json:"confirmationCode"`
	CancellationToken string        `json:"cancellationToken"`
	Status            string        `json:"status"`
	StaffID           string        `json:"staffId"`
	Date              string        `json:"date"`
	StartTime         string        `json:"startTime"`
	EndTime           string        `json:"endTime"`
	DurationMinutes   int           `json:"durationMinutes"`
	TotalPrice        float64       `json:"totalPrice"`
	Services          []ServiceLine `json:"services"`
}
