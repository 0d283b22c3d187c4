package graphql

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/CodeDreamer16/StarvIn/internal/graphql/resolvers"
	"github.com/CodeDreamer16/StarvIn/internal/graphql/schema"
)

// NewServer returns the GraphQL endpoint handler
func NewServer(resolver *resolvers.Resolver) http.Handler {
	srv := handler.New(schema.NewExecutableSchema(schema.Config{Resolvers: resolver}))

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	srv.Use(extension.AutomaticPersistedQuery{
		Cache: lru.New[string](100),
	})

	return srv
}

// NewPlayground returns the GraphiQL playground pointed at endpoint
func NewPlayground(endpoint string) http.Handler {
	return playground.Handler("Vybin GraphQL", endpoint)
}
