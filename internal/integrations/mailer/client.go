// Package mailer sends transactional appointment emails through an HTTP
// email provider. All sends are best-effort: a delivery failure is logged
// and reported in the SendResult, never as an error.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger is the minimal logging contract the mailer needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the email provider's REST API. A client constructed
// without an API key is disabled and silently skips every send.
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	log        Logger
	enabled    bool
}

// NewClient creates a mailer client. Pass an empty apiKey to disable
// outgoing email, for local development and tests.
func NewClient(baseURL, apiKey, fromEmail, fromName string, timeout time.Duration, log Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       fmt.Sprintf("%s <%s>", fromName, fromEmail),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		enabled:    apiKey != "",
	}
}

// SendAppointmentCreated emails the booking confirmation with the
// confirmation code and the cancellation link.
func (c *Client) SendAppointmentCreated(ctx context.Context, msg *Message) *SendResult {
	subject := fmt.Sprintf("Appointment confirmed: %s", msg.ConfirmationCode)
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", msg.ClientName)
	fmt.Fprintf(&b, "<p>Your appointment with %s on %s is booked.</p>", msg.StaffName, msg.StartAt)
	fmt.Fprintf(&b, "<p>Services: %s</p>", strings.Join(msg.Services, ", "))
	fmt.Fprintf(&b, "<p>Total: %.2f</p>", msg.TotalPrice)
	fmt.Fprintf(&b, "<p>Confirmation code: <strong>%s</strong></p>", msg.ConfirmationCode)
	if msg.CancelURL != "" {
		fmt.Fprintf(&b, `<p>Need to cancel? <a href="%s">Cancel your appointment</a></p>`, msg.CancelURL)
	}
	return c.send(ctx, msg.To, subject, b.String())
}

// SendAppointmentConfirmed emails the client that the salon confirmed the
// appointment.
func (c *Client) SendAppointmentConfirmed(ctx context.Context, msg *Message) *SendResult {
	subject := fmt.Sprintf("Appointment %s confirmed by the salon", msg.ConfirmationCode)
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your appointment with %s on %s has been confirmed. See you soon!</p>",
		msg.ClientName, msg.StaffName, msg.StartAt)
	return c.send(ctx, msg.To, subject, body)
}

// SendAppointmentCancelled emails the client that the appointment was
// cancelled.
func (c *Client) SendAppointmentCancelled(ctx context.Context, msg *Message) *SendResult {
	subject := fmt.Sprintf("Appointment %s cancelled", msg.ConfirmationCode)
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your appointment with %s on %s has been cancelled.</p>",
		msg.ClientName, msg.StaffName, msg.StartAt)
	return c.send(ctx, msg.To, subject, body)
}

func (c *Client) send(ctx context.Context, to, subject, html string) *SendResult {
	if !c.enabled {
		c.log.Info("mailer: disabled, skipping email to %s", to)
		return &SendResult{Success: true}
	}
	if to == "" {
		return &SendResult{Success: true}
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		c.log.Error("mailer: marshal request: %v", err)
		return &SendResult{Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		c.log.Error("mailer: build request: %v", err)
		return &SendResult{Error: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("mailer: send to %s failed: %v", to, err)
		return &SendResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode >= 300 {
		c.log.Warn("mailer: provider returned %d: %s", resp.StatusCode, string(body))
		return &SendResult{Error: fmt.Sprintf("provider status %d", resp.StatusCode)}
	}

	var out sendResponse
	if err := json.Unmarshal(body, &out); err != nil {
		c.log.Warn("mailer: decode response: %v", err)
		return &SendResult{Success: true}
	}

	c.log.Info("mailer: sent %q to %s, id=%s", subject, to, out.ID)
	return &SendResult{Success: true, MessageID: out.ID}
}
