package entities

import "time"

// Event represents a campus event students can browse, save and apply to
type Event struct {
	ID           string     `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Description  string     `json:"description" db:"description"`
	Type         string     `json:"type,omitempty" db:"type"`
	Organization string     `json:"organization,omitempty" db:"organization"`
	Location     string     `json:"location,omitempty" db:"location"`
	Date         time.Time  `json:"date" db:"date"`
	Deadline     *time.Time `json:"deadline,omitempty" db:"deadline"`
	ImageURL     string     `json:"image_url,omitempty" db:"image_url"`
	Prize        string     `json:"prize,omitempty" db:"prize"`
	Tags         []string   `json:"tags,omitempty" db:"-"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// IsUpcoming reports whether the event starts at or after now
func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.Date.Before(now)
}

// ApplicationCloses returns the instant after which applications are rejected.
// Events without an explicit deadline close when they start.
func (e *Event) ApplicationCloses() time.Time {
	if e.Deadline != nil && !e.Deadline.IsZero() {
		return *e.Deadline
	}
	return e.Date
}

// EventPage is a page of events
type EventPage struct {
	Events     []*Event `json:"events"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalCount int      `json:"total_count"`
	HasMore    bool     `json:"has_more"`
}
