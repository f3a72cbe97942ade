package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "github.com/salonix/appointment-service/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *usecase.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *usecase.Request) (*usecase.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"clientName": "Maria Lopez",
	"phone": "+5215512345678",
	"email": "maria@example.com",
	"staffId": "staff-1",
	"date": "2026-09-14",
	"startTime": "10:00",
	"serviceIds": ["svc-1"]
}`

func doRequest(t *testing.T, uc UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func TestHandleCreated(t *testing.T) {
	uc := &fakeUseCase{resp: &usecase.Response{
		AppointmentID:     "appt-1",
		ConfirmationCode:  "20260914-1234",
		CancellationToken: "token-1",
		Status:            "pending",
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp usecase.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "appt-1", resp.AppointmentID)
	assert.Equal(t, "token-1", resp.CancellationToken)
}

func TestHandleMalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"client_name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
}

func TestHandleUnknownField(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"surprise": true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid input", usecase.ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},
		{"staff unavailable", usecase.ErrStaffUnavailable, http.StatusBadRequest, "STAFF_UNAVAILABLE"},
		{"services not found", usecase.ErrServicesNotFound, http.StatusNotFound, "SERVICES_NOT_FOUND"},
		{"service unavailable", usecase.ErrServiceUnavailable, http.StatusBadRequest, "SERVICE_UNAVAILABLE"},
		{"past date", usecase.ErrPastDate, http.StatusBadRequest, "PAST_DATE"},
		{"day blocked", usecase.ErrDayBlocked, http.StatusBadRequest, "DAY_BLOCKED"},
		{"out of hours", usecase.ErrOutOfHours, http.StatusConflict, "OUT_OF_HOURS"},
		{"invalid duration", usecase.ErrInvalidDuration, http.StatusBadRequest, "INVALID_DURATION"},
		{"schedule conflict", usecase.ErrScheduleConflict, http.StatusConflict, "SCHEDULE_CONFLICT"},
		{"tx conflict", usecase.ErrTxConflict, http.StatusConflict, "CONFLICT"},
		{"tx timeout", usecase.ErrTxTimeout, http.StatusRequestTimeout, "TIMEOUT"},
		{"internal", usecase.ErrInternal, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}
