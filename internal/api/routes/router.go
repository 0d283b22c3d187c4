package routes

import (
	"net/http"

	"github.com/CodeDreamer16/StarvIn/internal/api/handlers"
	"github.com/CodeDreamer16/StarvIn/internal/api/middleware"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/observability"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Event       *handlers.EventHandler
	Interest    *handlers.InterestHandler
	Feed        *handlers.FeedHandler
	SavedEvent  *handlers.SavedEventHandler
	Application *handlers.ApplicationHandler
	Profile     *handlers.ProfileHandler

	// GraphQL serves the read API at /graphql when set
	GraphQL http.Handler
	// Playground is mounted at /playground when set
	Playground http.Handler
}

// Router holds all route handlers
type Router struct {
	mux            *http.ServeMux
	handlers       Handlers
	eventRepo      repositories.EventRepository
	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router. eventRepo backs the per-request event
// loaders.
func NewRouter(h Handlers, eventRepo repositories.EventRepository, allowedOrigins []string, metrics *observability.Metrics) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		handlers:       h,
		eventRepo:      eventRepo,
		allowedOrigins: allowedOrigins,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Events
	r.mux.HandleFunc("GET /api/events", r.handlers.Event.ListEvents)
	r.mux.HandleFunc("GET /api/events/search", r.handlers.Event.SearchEvents)
	r.mux.HandleFunc("GET /api/events/{id}", r.handlers.Event.GetEvent)

	// Interests
	r.mux.HandleFunc("GET /api/interests", r.handlers.Interest.ListCatalog)
	r.mux.HandleFunc("GET /api/users/{userId}/interests", r.handlers.Interest.GetUserInterests)
	r.mux.HandleFunc("PUT /api/users/{userId}/interests", r.handlers.Interest.ReplaceUserInterests)

	// Feed
	r.mux.HandleFunc("GET /api/users/{userId}/feed", r.handlers.Feed.GetFeed)
	r.mux.HandleFunc("GET /api/users/{userId}/feed/explain/{eventId}", r.handlers.Feed.ExplainFeedItem)

	// Saved events
	r.mux.HandleFunc("GET /api/users/{userId}/saved-events", r.handlers.SavedEvent.ListSavedEvents)
	r.mux.HandleFunc("POST /api/users/{userId}/saved-events/{eventId}", r.handlers.SavedEvent.SaveEvent)
	r.mux.HandleFunc("DELETE /api/users/{userId}/saved-events/{eventId}", r.handlers.SavedEvent.UnsaveEvent)

	// Applications
	r.mux.HandleFunc("POST /api/users/{userId}/applications", r.handlers.Application.Apply)
	r.mux.HandleFunc("GET /api/users/{userId}/applications", r.handlers.Application.ListApplications)

	// Profile
	r.mux.HandleFunc("GET /api/users/{userId}/profile", r.handlers.Profile.GetProfile)
	r.mux.HandleFunc("PUT /api/users/{userId}/profile", r.handlers.Profile.UpdateProfile)

	if r.handlers.GraphQL != nil {
		r.mux.Handle("GET /graphql", r.handlers.GraphQL)
		r.mux.Handle("POST /graphql", r.handlers.GraphQL)
	}
	if r.handlers.Playground != nil {
		r.mux.Handle("GET /playground", r.handlers.Playground)
	}

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	if r.eventRepo != nil {
		handler = middleware.LoadersMiddleware(r.eventRepo)(handler)
	}
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so preflights never reach the handlers
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
