// Package schema serves the read-side GraphQL API. Object fields are
// resolved by projecting the JSON form of the domain entities, so the SDL
// field names are the camelCase forms of the entities' json tags.
package schema

import (
	"context"
	_ "embed"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/CodeDreamer16/StarvIn/internal/application/services"
	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

//go:embed schema.graphqls
var sdl string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: sdl})

// QueryResolver resolves the root Query fields
type QueryResolver interface {
	Event(ctx context.Context, id string) (*entities.Event, error)
	Interests(ctx context.Context) ([]string, error)
	Feed(ctx context.Context, userID string, page int) (*entities.FeedPage, error)
	Explain(ctx context.Context, userID, eventID string) (*services.FeedExplanation, error)
	SavedEvents(ctx context.Context, userID string) ([]*entities.SavedEvent, error)
	Applications(ctx context.Context, userID string) ([]*entities.Application, error)
}

// ResolverRoot exposes the root resolvers
type ResolverRoot interface {
	Query() QueryResolver
}

// Config configures the executable schema
type Config struct {
	Resolvers ResolverRoot
}
