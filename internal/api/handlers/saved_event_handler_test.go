package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodeDreamer16/StarvIn/internal/api/handlers"
	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

func savedEventRequest(method string) *http.Request {
	req := httptest.NewRequest(method, "/api/users/u1/saved-events/evt-1", nil)
	req.SetPathValue("userId", "u1")
	req.SetPathValue("eventId", "evt-1")
	return req
}

func TestSavedEventHandler_SaveEvent(t *testing.T) {
	testCases := []struct {
		name     string
		created  bool
		expected int
	}{
		{name: "first save", created: true, expected: http.StatusCreated},
		{name: "repeat save", created: false, expected: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := handlers.NewSavedEventHandler(&stubSavedEventService{created: tc.created})
			w := httptest.NewRecorder()
			handler.SaveEvent(w, savedEventRequest(http.MethodPost))
			assert.Equal(t, tc.expected, w.Code)
			assert.Contains(t, w.Body.String(), `"event_id":"evt-1"`)
		})
	}
}

func TestSavedEventHandler_SaveEvent_MissingEvent(t *testing.T) {
	handler := handlers.NewSavedEventHandler(&stubSavedEventService{err: apperrors.NewNotFoundError("event with id evt-1 not found")})
	w := httptest.NewRecorder()
	handler.SaveEvent(w, savedEventRequest(http.MethodPost))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavedEventHandler_UnsaveEvent(t *testing.T) {
	handler := handlers.NewSavedEventHandler(&stubSavedEventService{})
	w := httptest.NewRecorder()
	handler.UnsaveEvent(w, savedEventRequest(http.MethodDelete))
	assert.Equal(t, http.StatusNoContent, w.Code)

	handler = handlers.NewSavedEventHandler(&stubSavedEventService{err: apperrors.NewNotFoundError("not saved")})
	w = httptest.NewRecorder()
	handler.UnsaveEvent(w, savedEventRequest(http.MethodDelete))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavedEventHandler_ListSavedEvents(t *testing.T) {
	handler := handlers.NewSavedEventHandler(&stubSavedEventService{saved: []*entities.SavedEvent{
		{ID: "s-1", EventID: "evt-1", Event: &entities.Event{ID: "evt-1", Title: "Pottery"}},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/saved-events", nil)
	req.SetPathValue("userId", "u1")
	w := httptest.NewRecorder()
	handler.ListSavedEvents(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), "Pottery")
}
