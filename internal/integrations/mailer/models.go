package mailer

// Message describes one appointment notification email.
type Message struct {
	To               string
	ClientName       string
	StaffName        string
	StartAt          string // formatted in the salon's timezone
	Services         []string
	TotalPrice       float64
	ConfirmationCode string
	CancelURL        string
}

// SendResult reports the outcome of a send attempt. Delivery failures are
// carried here instead of an error so notification problems never fail the
// booking that triggered them.
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// sendRequest is the provider's wire format.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendResponse is the provider's reply.
type sendResponse struct {
	ID string `json:"id"`
}
