package handlers

import (
	"context"
	"net/http"

	"github.com/CodeDreamer16/StarvIn/internal/application/services"
	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

// FeedService defines the feed operations used by the handler
type FeedService interface {
	GetFeed(ctx context.Context, userID string, page int) (*entities.FeedPage, error)
	Explain(ctx context.Context, userID, eventID string) (*services.FeedExplanation, error)
}

// FeedHandler serves personalised feeds
type FeedHandler struct {
	service FeedService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(service FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// GetFeed handles GET /api/users/{userId}/feed
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	feed, err := h.service.GetFeed(r.Context(), r.PathValue("userId"), page)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, feed)
}

// ExplainFeedItem handles GET /api/users/{userId}/feed/explain/{eventId}
func (h *FeedHandler) ExplainFeedItem(w http.ResponseWriter, r *http.Request) {
	explanation, err := h.service.Explain(r.Context(), r.PathValue("userId"), r.PathValue("eventId"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, explanation)
}
