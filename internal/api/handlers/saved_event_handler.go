package handlers

import (
	"context"
	"net/http"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

// SavedEventService defines the saved event operations used by the handler
type SavedEventService interface {
	List(ctx context.Context, userID string) ([]*entities.SavedEvent, error)
	Save(ctx context.Context, userID, eventID string) (*entities.SavedEvent, bool, error)
	Unsave(ctx context.Context, userID, eventID string) error
}

// SavedEventHandler handles bookmarking events
type SavedEventHandler struct {
	service SavedEventService
}

// NewSavedEventHandler creates a new saved event handler
func NewSavedEventHandler(service SavedEventService) *SavedEventHandler {
	return &SavedEventHandler{service: service}
}

// ListSavedEvents handles GET /api/users/{userId}/saved-events
func (h *SavedEventHandler) ListSavedEvents(w http.ResponseWriter, r *http.Request) {
	saved, err := h.service.List(r.Context(), r.PathValue("userId"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"saved_events": saved,
		"count":        len(saved),
	})
}

// SaveEvent handles POST /api/users/{userId}/saved-events/{eventId}
func (h *SavedEventHandler) SaveEvent(w http.ResponseWriter, r *http.Request) {
	saved, created, err := h.service.Save(r.Context(), r.PathValue("userId"), r.PathValue("eventId"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondWithJSON(w, status, saved)
}

// UnsaveEvent handles DELETE /api/users/{userId}/saved-events/{eventId}
func (h *SavedEventHandler) UnsaveEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Unsave(r.Context(), r.PathValue("userId"), r.PathValue("eventId")); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
