package create_appointment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonix/appointment-service/pkg/ptr"
)

func baseRequest() *Request {
	return &Request{
		ClientName: "Maria Lopez",
		Phone:      "+5215512345678",
		Email:      ptr.Ptr("maria@example.com"),
		StaffID:    "staff-1",
		Date:       "2026-09-14",
		StartTime:  "10:00",
		ServiceIDs: []string{"svc-1"},
	}
}

func TestValidateRequestAcceptsValidInput(t *testing.T) {
	assert.NoError(t, validateRequest(baseRequest()))

	noEmail := baseRequest()
	noEmail.Email = nil
	assert.NoError(t, validateRequest(noEmail))

	plainPhone := baseRequest()
	plainPhone.Phone = "5512345678"
	assert.NoError(t, validateRequest(plainPhone))
}

func TestValidateRequestRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "name too short", mutate: func(r *Request) { r.ClientName = "Al" }},
		{name: "name only whitespace", mutate: func(r *Request) { r.ClientName = "   " }},
		{name: "name too long", mutate: func(r *Request) { r.ClientName = strings.Repeat("a", 101) }},
		{name: "phone too short", mutate: func(r *Request) { r.Phone = "12345" }},
		{name: "phone with letters", mutate: func(r *Request) { r.Phone = "+52abc4567890" }},
		{name: "phone too long", mutate: func(r *Request) { r.Phone = "+1234567890123456" }},
		{name: "malformed email", mutate: func(r *Request) { r.Email = ptr.Ptr("not-an-email") }},
		{name: "missing staff", mutate: func(r *Request) { r.StaffID = "" }},
		{name: "malformed date", mutate: func(r *Request) { r.Date = "14-09-2026" }},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "10am" }},
		{name: "no services", mutate: func(r *Request) { r.ServiceIDs = nil }},
		{name: "empty service id", mutate: func(r *Request) { r.ServiceIDs = []string{""} }},
		{name: "duplicate services", mutate: func(r *Request) { r.ServiceIDs = []string{"a", "a"} }},
		{name: "too many services", mutate: func(r *Request) {
			r.ServiceIDs = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}

func TestConfirmationCodeFormat(t *testing.T) {
	code := confirmationCode(mustParseDay(t, "2026-09-14"))
	assert.Regexp(t, `^20260914-\d{4}$`, code)
}
