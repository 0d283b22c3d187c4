package handlers

import (
	"context"
	"net/http"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

// EventService defines the event operations used by the handler
type EventService interface {
	List(ctx context.Context, page int) (*entities.EventPage, error)
	GetByID(ctx context.Context, id string) (*entities.Event, error)
	Search(ctx context.Context, query string, page int) (*entities.EventPage, error)
}

// EventHandler handles event browsing requests
type EventHandler struct {
	service EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service: service}
}

// ListEvents handles GET /api/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	result, err := h.service.List(r.Context(), page)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetEvent handles GET /api/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, event)
}

// SearchEvents handles GET /api/events/search
func (h *EventHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"), page)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
