package get_availability

import (
	"time"

	"github.com/salonix/appointment-service/internal/domain"
)

// searchWindow returns the earliest and latest candidate start instants on
// the given day. For today the window opens no earlier than the current
// time rounded up to the next slot boundary, so slots that have already
// begun are never offered. The returned window may be empty (start after
// end) when the day is over or the duration no longer fits.
func searchWindow(hours domain.BusinessHours, day time.Time, durationMinutes int, now time.Time) (time.Time, time.Time) {
	start := hours.OpenAt(day)
	end := hours.CloseAt(day).Add(-time.Duration(durationMinutes) * time.Minute)

	if hours.StartOfDay(day).Equal(hours.StartOfDay(now)) && now.After(start) {
		start = roundUpToStep(hours, now)
	}

	return start, end
}

// roundUpToStep rounds t up to the next slot boundary of its day. An instant
// already on a boundary is returned unchanged.
func roundUpToStep(hours domain.BusinessHours, t time.Time) time.Time {
	dayStart := hours.StartOfDay(t)
	elapsed := t.Sub(dayStart)
	step := time.Duration(hours.SlotStepMinutes) * time.Minute

	rounded := elapsed / step * step
	if rounded < elapsed {
		rounded += step
	}
	return dayStart.Add(rounded)
}

// buildSlots walks candidate start times from windowStart to windowEnd
// inclusive, in slot-step increments, and keeps those whose full range is
// free of the given busy ranges. Overlap is strict, so a slot may start the
// instant an existing appointment ends.
func buildSlots(hours domain.BusinessHours, windowStart, windowEnd time.Time, durationMinutes int, busy []domain.TimeRange) []domain.Slot {
	step := time.Duration(hours.SlotStepMinutes) * time.Minute
	duration := time.Duration(durationMinutes) * time.Minute

	slots := make([]domain.Slot, 0)
	for start := windowStart; !start.After(windowEnd); start = start.Add(step) {
		candidate := domain.TimeRange{Start: start, End: start.Add(duration)}
		if candidate.OverlapsAny(busy) {
			continue
		}
		slots = append(slots, domain.Slot{Start: candidate.Start, End: candidate.End})
	}
	return slots
}
