package domain

import "time"

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two ranges truly intersect. Comparison is strict:
// ranges that merely touch at a boundary do not overlap, so an appointment
// ending at 11:00 leaves the 11:00 slot free.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// OverlapsAny reports whether the range intersects any of the given ranges.
func (r TimeRange) OverlapsAny(others []TimeRange) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}

// Slot is a candidate bookable window of exactly the requested total
// duration. Slots are ephemeral query results, never persisted.
type Slot struct {
	Start time.Time
	End   time.Time
}
