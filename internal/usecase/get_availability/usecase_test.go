package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/appointment-service/internal/domain"
	"github.com/salonix/appointment-service/internal/infra/storage/catalog"
)

type fakeCatalog struct {
	staff    *domain.Staff
	staffErr error
	services []*domain.Service
	blocked  bool
}

func (f *fakeCatalog) FindActiveStaff(_ context.Context, _ string) (*domain.Staff, error) {
	if f.staffErr != nil {
		return nil, f.staffErr
	}
	return f.staff, nil
}

func (f *fakeCatalog) FindServices(_ context.Context, _ []string) ([]*domain.Service, error) {
	return f.services, nil
}

func (f *fakeCatalog) IsBlockedDay(_ context.Context, _ time.Time) (bool, error) {
	return f.blocked, nil
}

type fakeAppointments struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointments) GetByStaffAndDay(_ context.Context, _ domain.StaffDayFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestUseCase(cat *fakeCatalog, appts *fakeAppointments, now time.Time) *UseCase {
	return NewUseCase(cat, appts, testHours, nopLogger{}, fixedClock{now: now})
}

func validRequest() *Request {
	return &Request{
		StaffID:    "staff-1",
		Date:       "2026-09-14",
		ServiceIDs: []string{"svc-1", "svc-2"},
	}
}

func testServices() []*domain.Service {
	return []*domain.Service{
		{ID: "svc-1", Name: "Manicure", DurationMinutes: 45, Price: 30, Active: true},
		{ID: "svc-2", Name: "Pedicure", DurationMinutes: 15, Price: 20, Active: true},
	}
}

func TestExecuteReturnsSlotsAroundExistingAppointment(t *testing.T) {
	d := day(t)
	cat := &fakeCatalog{staff: &domain.Staff{ID: "staff-1", Active: true}, services: testServices()}
	appts := &fakeAppointments{appointments: []*domain.Appointment{
		{StartAt: at(d, 10, 0), EndAt: at(d, 11, 0), Status: domain.StatusConfirmed},
	}}

	uc := newTestUseCase(cat, appts, at(d, 0, 0).AddDate(0, 0, -1))
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "staff-1", resp.StaffID)

	starts := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		starts[i] = s.Start
	}
	assert.Contains(t, starts, "09:00")
	assert.Contains(t, starts, "11:00")
	assert.NotContains(t, starts, "10:00")
	assert.NotContains(t, starts, "09:30")
}

func TestExecuteBlockedDayReturnsEmptySlots(t *testing.T) {
	d := day(t)
	cat := &fakeCatalog{staff: &domain.Staff{ID: "staff-1"}, services: testServices(), blocked: true}

	uc := newTestUseCase(cat, &fakeAppointments{}, at(d, 0, 0).AddDate(0, 0, -1))
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecutePastDate(t *testing.T) {
	d := day(t)
	cat := &fakeCatalog{staff: &domain.Staff{ID: "staff-1"}, services: testServices()}

	uc := newTestUseCase(cat, &fakeAppointments{}, at(d, 10, 0).AddDate(0, 0, 1))
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecuteStaffNotFound(t *testing.T) {
	d := day(t)
	cat := &fakeCatalog{staffErr: catalog.ErrStaffNotFound}

	uc := newTestUseCase(cat, &fakeAppointments{}, at(d, 0, 0).AddDate(0, 0, -1))
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecuteInactiveServiceReported(t *testing.T) {
	d := day(t)
	services := testServices()
	services[1].Active = false
	cat := &fakeCatalog{staff: &domain.Staff{ID: "staff-1"}, services: services}

	uc := newTestUseCase(cat, &fakeAppointments{}, at(d, 0, 0).AddDate(0, 0, -1))
	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrServicesNotFound)
	assert.Contains(t, err.Error(), "svc-2")
}

func TestExecuteDurationOverLimit(t *testing.T) {
	d := day(t)
	cat := &fakeCatalog{
		staff: &domain.Staff{ID: "staff-1"},
		services: []*domain.Service{
			{ID: "svc-1", DurationMinutes: 120, Active: true},
			{ID: "svc-2", DurationMinutes: 90, Active: true},
		},
	}

	uc := newTestUseCase(cat, &fakeAppointments{}, at(d, 0, 0).AddDate(0, 0, -1))
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{}, &fakeAppointments{}, time.Now())

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing staff id", req: &Request{Date: "2026-09-14", ServiceIDs: []string{"a"}}},
		{name: "missing date", req: &Request{StaffID: "s", ServiceIDs: []string{"a"}}},
		{name: "malformed date", req: &Request{StaffID: "s", Date: "14/09/2026", ServiceIDs: []string{"a"}}},
		{name: "no services", req: &Request{StaffID: "s", Date: "2026-09-14"}},
		{name: "duplicate services", req: &Request{StaffID: "s", Date: "2026-09-14", ServiceIDs: []string{"a", "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
