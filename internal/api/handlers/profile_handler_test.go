package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeDreamer16/StarvIn/internal/api/handlers"
	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	handler := handlers.NewProfileHandler(&stubProfileService{profile: &entities.Profile{UserID: "u1", FullName: "Ada"}})

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/profile", nil)
	req.SetPathValue("userId", "u1")
	w := httptest.NewRecorder()
	handler.GetProfile(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"full_name":"Ada"`)
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	handler := handlers.NewProfileHandler(&stubProfileService{err: apperrors.NewNotFoundError("profile for user u1 not found")})

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/profile", nil)
	req.SetPathValue("userId", "u1")
	w := httptest.NewRecorder()
	handler.GetProfile(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	service := &stubProfileService{}
	handler := handlers.NewProfileHandler(service)

	body := `{"full_name":"Ada Student","university":"McGill","program":"CS","graduation_year":2027}`
	req := httptest.NewRequest(http.MethodPut, "/api/users/u1/profile", strings.NewReader(body))
	req.SetPathValue("userId", "u1")
	w := httptest.NewRecorder()
	handler.UpdateProfile(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, service.input)
	assert.Equal(t, 2027, service.input.GraduationYear)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
}

func TestProfileHandler_UpdateProfile_Validation(t *testing.T) {
	handler := handlers.NewProfileHandler(&stubProfileService{err: apperrors.NewValidationError("graduation_year must be between 1900 and 2100")})

	req := httptest.NewRequest(http.MethodPut, "/api/users/u1/profile", strings.NewReader(`{"full_name":"A","graduation_year":3000}`))
	req.SetPathValue("userId", "u1")
	w := httptest.NewRecorder()
	handler.UpdateProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
