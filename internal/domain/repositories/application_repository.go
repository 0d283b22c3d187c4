package repositories

import (
	"context"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

// ApplicationRepository defines the interface for event application operations
type ApplicationRepository interface {
	// Create stores a new application
	Create(ctx context.Context, application *entities.Application) error

	// GetByUserAndEvent returns the user's application to an event
	GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entities.Application, error)

	// ListByUser returns the user's applications, newest first
	ListByUser(ctx context.Context, userID string) ([]*entities.Application, error)
}
