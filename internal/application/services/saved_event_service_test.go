package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/loaders"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

func TestSavedEventService_Save_CreatesNewRecord(t *testing.T) {
	repo := new(mockSavedEventRepository)
	events := new(mockEventRepository)
	event := &entities.Event{ID: "evt-1", Title: "Pottery"}

	events.On("GetByID", mock.Anything, "evt-1").Return(event, nil)
	repo.On("Get", mock.Anything, "user-1", "evt-1").Return(nil, apperrors.NewNotFoundError("not saved"))
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *entities.SavedEvent) bool {
		return s.UserID == "user-1" && s.EventID == "evt-1" && s.ID != ""
	})).Return(nil)

	svc := NewSavedEventService(repo, events)
	saved, created, err := svc.Save(context.Background(), "user-1", "evt-1")
	require.NoError(t, err)

	assert.True(t, created)
	assert.Same(t, event, saved.Event)
}

func TestSavedEventService_Save_IsIdempotent(t *testing.T) {
	repo := new(mockSavedEventRepository)
	events := new(mockEventRepository)
	existing := &entities.SavedEvent{ID: "s-1", UserID: "user-1", EventID: "evt-1"}

	events.On("GetByID", mock.Anything, "evt-1").Return(&entities.Event{ID: "evt-1"}, nil)
	repo.On("Get", mock.Anything, "user-1", "evt-1").Return(existing, nil)

	svc := NewSavedEventService(repo, events)
	saved, created, err := svc.Save(context.Background(), "user-1", "evt-1")
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, "s-1", saved.ID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSavedEventService_Save_MissingEvent(t *testing.T) {
	events := new(mockEventRepository)
	events.On("GetByID", mock.Anything, "gone").Return(nil, apperrors.NewNotFoundError("event with id gone not found"))

	svc := NewSavedEventService(new(mockSavedEventRepository), events)
	_, _, err := svc.Save(context.Background(), "user-1", "gone")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestSavedEventService_List_AttachesEventsInOneBatch(t *testing.T) {
	repo := new(mockSavedEventRepository)
	events := new(mockEventRepository)

	repo.On("ListByUser", mock.Anything, "user-1").Return([]*entities.SavedEvent{
		{ID: "s-2", EventID: "evt-2"},
		{ID: "s-1", EventID: "evt-1"},
		{ID: "s-0", EventID: "deleted"},
	}, nil)
	events.On("GetByIDs", mock.Anything, mock.Anything).Return([]*entities.Event{
		{ID: "evt-1", Title: "One"},
		{ID: "evt-2", Title: "Two"},
	}, nil).Once()

	svc := NewSavedEventService(repo, events)
	ctx := loaders.WithLoaders(context.Background(), loaders.NewLoaders(events))
	saved, err := svc.List(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, "Two", saved[0].Event.Title)
	assert.Equal(t, "One", saved[1].Event.Title)
	events.AssertNumberOfCalls(t, "GetByIDs", 1)
}

func TestSavedEventService_Unsave(t *testing.T) {
	repo := new(mockSavedEventRepository)
	repo.On("Delete", mock.Anything, "user-1", "evt-1").Return(apperrors.NewNotFoundError("not saved"))

	svc := NewSavedEventService(repo, new(mockEventRepository))
	err := svc.Unsave(context.Background(), "user-1", "evt-1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
