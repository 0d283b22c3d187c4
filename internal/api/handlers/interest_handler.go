package handlers

import (
	"context"
	"net/http"
)

// InterestService defines the interest operations used by the handler
type InterestService interface {
	Catalog() []string
	ListForUser(ctx context.Context, userID string) ([]string, error)
	ReplaceForUser(ctx context.Context, userID string, labels []string) ([]string, error)
}

// InterestHandler handles the interest catalog and user interest requests
type InterestHandler struct {
	service InterestService
}

// NewInterestHandler creates a new interest handler
func NewInterestHandler(service InterestService) *InterestHandler {
	return &InterestHandler{service: service}
}

type interestsPayload struct {
	Interests []string `json:"interests"`
}

// ListCatalog handles GET /api/interests
func (h *InterestHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, interestsPayload{Interests: h.service.Catalog()})
}

// GetUserInterests handles GET /api/users/{userId}/interests
func (h *InterestHandler) GetUserInterests(w http.ResponseWriter, r *http.Request) {
	labels, err := h.service.ListForUser(r.Context(), r.PathValue("userId"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if labels == nil {
		labels = []string{}
	}

	respondWithJSON(w, http.StatusOK, interestsPayload{Interests: labels})
}

// ReplaceUserInterests handles PUT /api/users/{userId}/interests
func (h *InterestHandler) ReplaceUserInterests(w http.ResponseWriter, r *http.Request) {
	var payload interestsPayload
	if !decodeJSON(w, r, &payload) {
		return
	}

	labels, err := h.service.ReplaceForUser(r.Context(), r.PathValue("userId"), payload.Interests)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, interestsPayload{Interests: labels})
}
