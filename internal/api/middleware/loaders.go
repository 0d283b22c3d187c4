package middleware

import (
	"net/http"

	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/loaders"
)

// LoadersMiddleware attaches fresh event dataloaders to every request so
// lookups within one request are batched and deduplicated.
func LoadersMiddleware(eventRepo repositories.EventRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := loaders.WithLoaders(r.Context(), loaders.NewLoaders(eventRepo))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
