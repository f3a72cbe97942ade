package cancel_appointment

// Request carries the cancellation token issued at booking time.
type Request struct {
	CancellationToken string `json:"cancellationToken"`
}
