package handlers

import (
	"context"
	"net/http"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

// ApplicationService defines the application operations used by the handler
type ApplicationService interface {
	Apply(ctx context.Context, userID, eventID, message string) (*entities.Application, error)
	List(ctx context.Context, userID string) ([]*entities.Application, error)
}

// ApplicationHandler handles event applications
type ApplicationHandler struct {
	service ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(service ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applyRequest struct {
	EventID string `json:"event_id"`
	Message string `json:"message"`
}

// Apply handles POST /api/users/{userId}/applications
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var payload applyRequest
	if !decodeJSON(w, r, &payload) {
		return
	}

	application, err := h.service.Apply(r.Context(), r.PathValue("userId"), payload.EventID, payload.Message)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, application)
}

// ListApplications handles GET /api/users/{userId}/applications
func (h *ApplicationHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.service.List(r.Context(), r.PathValue("userId"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"applications": applications,
		"count":        len(applications),
	})
}
