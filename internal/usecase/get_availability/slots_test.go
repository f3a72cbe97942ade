package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonix/appointment-service/internal/domain"
)

var testHours = domain.BusinessHours{
	OpenMinute:            9 * 60,
	CloseMinute:           19 * 60,
	SlotStepMinutes:       15,
	MaxAppointmentMinutes: 180,
	Location:              time.UTC,
}

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
}

func at(d time.Time, hour, min int) time.Time {
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func slotStarts(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.Format("15:04")
	}
	return out
}

func TestBuildSlotsAroundBusyRange(t *testing.T) {
	d := day(t)
	windowStart, windowEnd := searchWindow(testHours, d, 60, at(d, 8, 0).AddDate(0, 0, -1))
	busy := []domain.TimeRange{{Start: at(d, 10, 0), End: at(d, 11, 0)}}

	slots := buildSlots(testHours, windowStart, windowEnd, 60, busy)
	starts := slotStarts(slots)

	// A 60-minute slot may end exactly when the busy hour starts and may
	// begin exactly when it ends.
	assert.Contains(t, starts, "09:00")
	assert.Contains(t, starts, "11:00")
	assert.NotContains(t, starts, "09:15")
	assert.NotContains(t, starts, "09:30")
	assert.NotContains(t, starts, "10:00")
	assert.NotContains(t, starts, "10:45")
}

func TestBuildSlotsLastSlotEndsAtClose(t *testing.T) {
	d := day(t)
	windowStart, windowEnd := searchWindow(testHours, d, 60, at(d, 8, 0).AddDate(0, 0, -1))

	slots := buildSlots(testHours, windowStart, windowEnd, 60, nil)
	require.NotEmpty(t, slots)

	last := slots[len(slots)-1]
	assert.Equal(t, "18:00", last.Start.Format("15:04"))
	assert.Equal(t, "19:00", last.End.Format("15:04"))
}

func TestBuildSlotsEmptyDayCount(t *testing.T) {
	d := day(t)
	windowStart, windowEnd := searchWindow(testHours, d, 30, at(d, 8, 0).AddDate(0, 0, -1))

	slots := buildSlots(testHours, windowStart, windowEnd, 30, nil)

	// 09:00 through 18:30 inclusive, every 15 minutes.
	assert.Len(t, slots, 39)
}

func TestSearchWindowSameDayRoundsUp(t *testing.T) {
	d := day(t)

	tests := []struct {
		name      string
		now       time.Time
		wantStart string
	}{
		{name: "before opening keeps opening time", now: at(d, 7, 30), wantStart: "09:00"},
		{name: "mid-morning rounds up to next step", now: at(d, 10, 7), wantStart: "10:15"},
		{name: "exactly on a boundary stays", now: at(d, 10, 15), wantStart: "10:15"},
		{name: "seconds push past the boundary", now: at(d, 10, 15).Add(30 * time.Second), wantStart: "10:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := searchWindow(testHours, d, 60, tt.now)
			assert.Equal(t, tt.wantStart, start.Format("15:04"))
		})
	}
}

func TestSearchWindowDayOver(t *testing.T) {
	d := day(t)

	// At 18:30 a 60-minute appointment no longer fits before 19:00.
	start, end := searchWindow(testHours, d, 60, at(d, 18, 30))
	assert.True(t, start.After(end))
}

func TestSearchWindowOtherDayIgnoresNow(t *testing.T) {
	d := day(t)
	tomorrow := d.AddDate(0, 0, 1)

	start, _ := searchWindow(testHours, tomorrow, 60, at(d, 18, 45))
	assert.Equal(t, at(tomorrow, 9, 0), start)
}
