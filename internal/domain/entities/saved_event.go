package entities

import "time"

// SavedEvent is a bookmark of an event by a user
type SavedEvent struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	EventID   string    `json:"event_id" db:"event_id"`
	Event     *Event    `json:"event,omitempty" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
