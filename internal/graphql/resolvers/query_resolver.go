package resolvers

import (
	"context"
	"strings"

	"github.com/CodeDreamer16/StarvIn/internal/application/services"
	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

func (r *queryResolver) Event(ctx context.Context, id string) (*entities.Event, error) {
	event, err := r.events.GetByID(ctx, id)
	if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, nil
	}
	return event, err
}

func (r *queryResolver) Interests(ctx context.Context) ([]string, error) {
	return r.interests.Catalog(), nil
}

func (r *queryResolver) Feed(ctx context.Context, userID string, page int) (*entities.FeedPage, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, apperrors.NewValidationError("page must be a positive integer")
	}
	return r.feed.GetFeed(ctx, userID, page)
}

func (r *queryResolver) Explain(ctx context.Context, userID, eventID string) (*services.FeedExplanation, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return r.feed.Explain(ctx, userID, eventID)
}

func (r *queryResolver) SavedEvents(ctx context.Context, userID string) ([]*entities.SavedEvent, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return r.savedEvents.List(ctx, userID)
}

func (r *queryResolver) Applications(ctx context.Context, userID string) ([]*entities.Application, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return r.applications.List(ctx, userID)
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.NewValidationError("userId is required")
	}
	return nil
}
