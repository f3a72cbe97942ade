package get_availability

// Request asks for the free slots of one staff member on one date for a
// combination of services.
type Request struct {
	StaffID    string
	Date       string // YYYY-MM-DD
	ServiceIDs []string
}

// SlotResponse is one bookable window, times formatted HH:MM in the salon's
// timezone.
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Response lists every start time at which the full service combination
// fits. A blocked or fully booked day yields an empty slot list.
type Response struct {
	Date            string         `json:"date"`
	StaffID         string         `json:"staffId"`
	DurationMinutes int            `json:"totalDurationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}
