package resolvers

import (
	"context"

	"github.com/CodeDreamer16/StarvIn/internal/application/services"
	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/graphql/schema"
)

// EventService reads single events
type EventService interface {
	GetByID(ctx context.Context, id string) (*entities.Event, error)
}

// InterestService lists the interest catalog
type InterestService interface {
	Catalog() []string
}

// FeedService assembles feeds and explains matches
type FeedService interface {
	GetFeed(ctx context.Context, userID string, page int) (*entities.FeedPage, error)
	Explain(ctx context.Context, userID, eventID string) (*services.FeedExplanation, error)
}

// SavedEventService lists a user's saved events
type SavedEventService interface {
	List(ctx context.Context, userID string) ([]*entities.SavedEvent, error)
}

// ApplicationService lists a user's applications
type ApplicationService interface {
	List(ctx context.Context, userID string) ([]*entities.Application, error)
}

// Resolver holds the services behind the GraphQL API
type Resolver struct {
	events       EventService
	interests    InterestService
	feed         FeedService
	savedEvents  SavedEventService
	applications ApplicationService
}

// NewResolver creates a new resolver with dependencies
func NewResolver(
	events EventService,
	interests InterestService,
	feed FeedService,
	savedEvents SavedEventService,
	applications ApplicationService,
) *Resolver {
	return &Resolver{
		events:       events,
		interests:    interests,
		feed:         feed,
		savedEvents:  savedEvents,
		applications: applications,
	}
}

// Query returns the root query resolver
func (r *Resolver) Query() schema.QueryResolver {
	return &queryResolver{r}
}

type queryResolver struct{ *Resolver }
