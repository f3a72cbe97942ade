package domain

import "time"

// BusinessHours is the salon's daily working schedule in its local timezone.
// Minutes are counted from midnight.
type BusinessHours struct {
	OpenMinute            int
	CloseMinute           int
	SlotStepMinutes       int
	MaxAppointmentMinutes int
	Location              *time.Location
}

// OpenAt returns the opening instant on the given day.
func (h BusinessHours) OpenAt(day time.Time) time.Time {
	return h.atMinute(day, h.OpenMinute)
}

// CloseAt returns the closing instant on the given day.
func (h BusinessHours) CloseAt(day time.Time) time.Time {
	return h.atMinute(day, h.CloseMinute)
}

// ContainsRange reports whether [start, end) falls entirely within the
// working hours of start's day.
func (h BusinessHours) ContainsRange(start, end time.Time) bool {
	open := h.OpenAt(start)
	close := h.CloseAt(start)
	return !start.Before(open) && !end.After(close)
}

// StartOfDay truncates t to midnight in the business timezone.
func (h BusinessHours) StartOfDay(t time.Time) time.Time {
	local := t.In(h.Location)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, h.Location)
}

func (h BusinessHours) atMinute(day time.Time, minute int) time.Time {
	return h.StartOfDay(day).Add(time.Duration(minute) * time.Minute)
}
