package repositories

import (
	"context"
	"time"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

// EventRepository defines the interface for event data operations
type EventRepository interface {
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id string) (*entities.Event, error)

	// GetByIDs retrieves multiple events by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Event, error)

	// ListUpcoming retrieves events dated at or after from, earliest first
	ListUpcoming(ctx context.Context, from time.Time) ([]*entities.Event, error)
}

// EventSearchRepository defines the interface for event search operations (e.g. Typesense)
type EventSearchRepository interface {
	// Search runs a full-text query and returns matching event IDs in rank order
	Search(ctx context.Context, params EventSearchParams) (*EventSearchResult, error)

	// Index indexes an event
	Index(ctx context.Context, event *entities.Event) error

	// Delete removes an event from the index
	Delete(ctx context.Context, id string) error
}

// EventSearchParams defines parameters for event search
type EventSearchParams struct {
	Query string
	From  time.Time
	Limit int
	Page  int
}

// EventSearchResult contains ranked IDs and the total hit count
type EventSearchResult struct {
	IDs        []string
	TotalCount int
	SearchTime float64 // in milliseconds
}

// EventWriter stores events. Only seeding and imports write events; the API
// reads them.
type EventWriter interface {
	// Upsert inserts the event or replaces the stored copy with the same ID
	Upsert(ctx context.Context, event *entities.Event) error
}
