package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
)

type mockEventRepository struct{ mock.Mock }

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*entities.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*entities.Event)
	return event, args.Error(1)
}

func (m *mockEventRepository) GetByIDs(ctx context.Context, ids []string) ([]*entities.Event, error) {
	args := m.Called(ctx, ids)
	events, _ := args.Get(0).([]*entities.Event)
	return events, args.Error(1)
}

func (m *mockEventRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*entities.Event, error) {
	args := m.Called(ctx, from)
	events, _ := args.Get(0).([]*entities.Event)
	return events, args.Error(1)
}

type mockEventSearchRepository struct{ mock.Mock }

func (m *mockEventSearchRepository) Search(ctx context.Context, params repositories.EventSearchParams) (*repositories.EventSearchResult, error) {
	args := m.Called(ctx, params)
	result, _ := args.Get(0).(*repositories.EventSearchResult)
	return result, args.Error(1)
}

func (m *mockEventSearchRepository) Index(ctx context.Context, event *entities.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventSearchRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockInterestRepository struct{ mock.Mock }

func (m *mockInterestRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	labels, _ := args.Get(0).([]string)
	return labels, args.Error(1)
}

func (m *mockInterestRepository) ReplaceForUser(ctx context.Context, userID string, labels []string) error {
	return m.Called(ctx, userID, labels).Error(0)
}

type mockSavedEventRepository struct{ mock.Mock }

func (m *mockSavedEventRepository) ListByUser(ctx context.Context, userID string) ([]*entities.SavedEvent, error) {
	args := m.Called(ctx, userID)
	saved, _ := args.Get(0).([]*entities.SavedEvent)
	return saved, args.Error(1)
}

func (m *mockSavedEventRepository) Get(ctx context.Context, userID, eventID string) (*entities.SavedEvent, error) {
	args := m.Called(ctx, userID, eventID)
	saved, _ := args.Get(0).(*entities.SavedEvent)
	return saved, args.Error(1)
}

func (m *mockSavedEventRepository) Create(ctx context.Context, saved *entities.SavedEvent) error {
	return m.Called(ctx, saved).Error(0)
}

func (m *mockSavedEventRepository) Delete(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

type mockApplicationRepository struct{ mock.Mock }

func (m *mockApplicationRepository) Create(ctx context.Context, application *entities.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *mockApplicationRepository) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entities.Application, error) {
	args := m.Called(ctx, userID, eventID)
	application, _ := args.Get(0).(*entities.Application)
	return application, args.Error(1)
}

func (m *mockApplicationRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Application, error) {
	args := m.Called(ctx, userID)
	applications, _ := args.Get(0).([]*entities.Application)
	return applications, args.Error(1)
}

type mockProfileRepository struct{ mock.Mock }

func (m *mockProfileRepository) GetByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*entities.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileRepository) Upsert(ctx context.Context, profile *entities.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
