package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

func newTestApplicationService(repo *mockApplicationRepository, events *mockEventRepository) *ApplicationService {
	svc := NewApplicationService(repo, events)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestApplicationService_Apply(t *testing.T) {
	repo := new(mockApplicationRepository)
	events := new(mockEventRepository)
	deadline := testNow.Add(time.Hour)
	events.On("GetByID", mock.Anything, "evt-1").Return(&entities.Event{ID: "evt-1", Date: testNow.Add(48 * time.Hour), Deadline: &deadline}, nil)
	repo.On("GetByUserAndEvent", mock.Anything, "user-1", "evt-1").Return(nil, apperrors.NewNotFoundError("none"))
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Application")).Return(nil)

	svc := newTestApplicationService(repo, events)
	application, err := svc.Apply(context.Background(), "user-1", "evt-1", "  I'd love to help  ")
	require.NoError(t, err)

	assert.Equal(t, entities.ApplicationStatusSubmitted, application.Status)
	assert.Equal(t, "I'd love to help", application.Message)
	assert.NotEmpty(t, application.ID)
	assert.NotNil(t, application.Event)
}

func TestApplicationService_Apply_DeadlinePassed(t *testing.T) {
	events := new(mockEventRepository)
	deadline := testNow.Add(-time.Minute)
	events.On("GetByID", mock.Anything, "evt-1").Return(&entities.Event{ID: "evt-1", Date: testNow.Add(time.Hour), Deadline: &deadline}, nil)

	svc := newTestApplicationService(new(mockApplicationRepository), events)
	_, err := svc.Apply(context.Background(), "user-1", "evt-1", "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestApplicationService_Apply_StartedEventWithoutDeadline(t *testing.T) {
	events := new(mockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(&entities.Event{ID: "evt-1", Date: testNow.Add(-time.Second)}, nil)

	svc := newTestApplicationService(new(mockApplicationRepository), events)
	_, err := svc.Apply(context.Background(), "user-1", "evt-1", "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	repo := new(mockApplicationRepository)
	events := new(mockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(&entities.Event{ID: "evt-1", Date: testNow.Add(time.Hour)}, nil)
	repo.On("GetByUserAndEvent", mock.Anything, "user-1", "evt-1").Return(&entities.Application{ID: "app-1"}, nil)

	svc := newTestApplicationService(repo, events)
	_, err := svc.Apply(context.Background(), "user-1", "evt-1", "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestApplicationService_Apply_Validation(t *testing.T) {
	svc := newTestApplicationService(new(mockApplicationRepository), new(mockEventRepository))

	_, err := svc.Apply(context.Background(), "user-1", "", "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	_, err = svc.Apply(context.Background(), "user-1", "evt-1", strings.Repeat("a", MaxApplicationMessageLength+1))
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestApplicationService_List(t *testing.T) {
	repo := new(mockApplicationRepository)
	events := new(mockEventRepository)
	repo.On("ListByUser", mock.Anything, "user-1").Return([]*entities.Application{
		{ID: "app-1", EventID: "evt-1"},
	}, nil)
	events.On("GetByIDs", mock.Anything, []string{"evt-1"}).Return([]*entities.Event{{ID: "evt-1", Title: "Gala"}}, nil)

	svc := newTestApplicationService(repo, events)
	applications, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, applications, 1)
	assert.Equal(t, "Gala", applications[0].Event.Title)
}
