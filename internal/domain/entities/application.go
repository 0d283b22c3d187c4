package entities

import "time"

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Application is a user's application to attend or compete in an event
type Application struct {
	ID        string            `json:"id" db:"id"`
	UserID    string            `json:"user_id" db:"user_id"`
	EventID   string            `json:"event_id" db:"event_id"`
	Message   string            `json:"message,omitempty" db:"message"`
	Status    ApplicationStatus `json:"status" db:"status"`
	Event     *Event            `json:"event,omitempty" db:"-"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}
