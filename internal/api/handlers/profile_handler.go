package handlers

import (
	"context"
	"net/http"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

// ProfileService defines the profile operations used by the handler.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*entities.Profile, error)
	Update(ctx context.Context, userID string, input *entities.Profile) (*entities.Profile, error)
}

// ProfileHandler handles profile requests.
type ProfileHandler struct {
	service ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type profileRequest struct {
	FullName       string `json:"full_name"`
	University     string `json:"university"`
	Program        string `json:"program"`
	GraduationYear int    `json:"graduation_year"`
}

// GetProfile handles GET /api/users/{userId}/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context(), r.PathValue("userId"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/users/{userId}/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var payload profileRequest
	if !decodeJSON(w, r, &payload) {
		return
	}

	profile, err := h.service.Update(r.Context(), r.PathValue("userId"), &entities.Profile{
		FullName:       payload.FullName,
		University:     payload.University,
		Program:        payload.Program,
		GraduationYear: payload.GraduationYear,
	})
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}
