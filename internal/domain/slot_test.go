package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tr(startHour, startMin, endHour, endMin int) TimeRange {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	return TimeRange{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestTimeRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{name: "identical ranges", a: tr(10, 0, 11, 0), b: tr(10, 0, 11, 0), want: true},
		{name: "partial overlap", a: tr(10, 0, 11, 0), b: tr(10, 30, 11, 30), want: true},
		{name: "contained range", a: tr(10, 0, 12, 0), b: tr(10, 30, 11, 0), want: true},
		{name: "touching at end does not overlap", a: tr(10, 0, 11, 0), b: tr(11, 0, 12, 0), want: false},
		{name: "touching at start does not overlap", a: tr(11, 0, 12, 0), b: tr(10, 0, 11, 0), want: false},
		{name: "disjoint ranges", a: tr(9, 0, 10, 0), b: tr(14, 0, 15, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRangeOverlapsAny(t *testing.T) {
	busy := []TimeRange{tr(10, 0, 11, 0), tr(14, 0, 15, 30)}

	assert.True(t, tr(10, 30, 11, 30).OverlapsAny(busy))
	assert.True(t, tr(13, 0, 14, 15).OverlapsAny(busy))
	assert.False(t, tr(11, 0, 12, 0).OverlapsAny(busy))
	assert.False(t, tr(9, 0, 10, 0).OverlapsAny(busy))
}

func TestAppointmentStatusTransitions(t *testing.T) {
	tests := []struct {
		status     AppointmentStatus
		canCancel  bool
		canConfirm bool
		canFinish  bool
	}{
		{StatusPending, true, true, false},
		{StatusConfirmed, true, false, true},
		{StatusRescheduled, true, true, true},
		{StatusCancelled, false, false, false},
		{StatusCompleted, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			appt := &Appointment{Status: tt.status}
			assert.Equal(t, tt.canCancel, appt.CanBeCancelled())
			assert.Equal(t, tt.canConfirm, appt.CanBeConfirmed())
			assert.Equal(t, tt.canFinish, appt.CanBeCompleted())
		})
	}
}

func TestBusinessHoursContainsRange(t *testing.T) {
	hours := BusinessHours{
		OpenMinute:            9 * 60,
		CloseMinute:           19 * 60,
		SlotStepMinutes:       15,
		MaxAppointmentMinutes: 180,
		Location:              time.UTC,
	}

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	assert.True(t, hours.ContainsRange(day.Add(9*time.Hour), day.Add(10*time.Hour)))
	assert.True(t, hours.ContainsRange(day.Add(18*time.Hour), day.Add(19*time.Hour)))
	assert.False(t, hours.ContainsRange(day.Add(8*time.Hour+30*time.Minute), day.Add(9*time.Hour+30*time.Minute)))
	assert.False(t, hours.ContainsRange(day.Add(18*time.Hour+30*time.Minute), day.Add(19*time.Hour+30*time.Minute)))
}
