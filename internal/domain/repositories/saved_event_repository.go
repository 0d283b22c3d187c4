package repositories

import (
	"context"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

// SavedEventRepository defines the interface for saved event operations
type SavedEventRepository interface {
	// ListByUser returns the user's saved events, newest first
	ListByUser(ctx context.Context, userID string) ([]*entities.SavedEvent, error)

	// Get returns the saved record for a user and event
	Get(ctx context.Context, userID, eventID string) (*entities.SavedEvent, error)

	// Create stores a new saved record
	Create(ctx context.Context, saved *entities.SavedEvent) error

	// Delete removes the saved record for a user and event
	Delete(ctx context.Context, userID, eventID string) error
}
