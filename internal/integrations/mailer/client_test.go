package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testMessage() *Message {
	return &Message{
		To:               "maria@example.com",
		ClientName:       "Maria Lopez",
		StaffName:        "Ana",
		StartAt:          "Monday, 14 September 2026 at 10:00",
		Services:         []string{"Manicure"},
		TotalPrice:       50,
		ConfirmationCode: "20260914-1234",
		CancelURL:        "https://salon.example/cancel/token-1",
	}
}

func TestSendAppointmentCreated(t *testing.T) {
	var got sendRequest
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(sendResponse{ID: "msg-1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key-1", "bookings@salon.example", "The Salon", time.Second, nopLogger{})
	result := client.SendAppointmentCreated(context.Background(), testMessage())

	assert.True(t, result.Success)
	assert.Equal(t, "msg-1", result.MessageID)
	assert.Equal(t, "Bearer key-1", auth)
	assert.Equal(t, "The Salon <bookings@salon.example>", got.From)
	assert.Equal(t, []string{"maria@example.com"}, got.To)
	assert.Contains(t, got.Subject, "20260914-1234")
	assert.Contains(t, got.HTML, "20260914-1234")
	assert.Contains(t, got.HTML, "https://salon.example/cancel/token-1")
}

func TestSendProviderFailureDoesNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key-1", "bookings@salon.example", "The Salon", time.Second, nopLogger{})
	result := client.SendAppointmentCancelled(context.Background(), testMessage())

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestSendDisabledClientSkips(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "bookings@salon.example", "The Salon", time.Second, nopLogger{})
	result := client.SendAppointmentConfirmed(context.Background(), testMessage())

	assert.True(t, result.Success)
	assert.False(t, called)
}
