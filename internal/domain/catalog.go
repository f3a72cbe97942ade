package domain

import "time"

// Service is a bookable offering with a fixed duration and price.
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
}

// Staff is a bookable resource. A staff member is bookable only while both
// the staff record and the linked user account are active.
type Staff struct {
	ID     string
	UserID string
	Name   string
	Active bool
}

// Client is identified uniquely by phone number and upserted on each booking
// so repeat clients are deduplicated.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlockedDay is a calendar date on which no appointments may be booked for
// anyone, regardless of staff activity.
type BlockedDay struct {
	Day    time.Time
	Reason *string
}
