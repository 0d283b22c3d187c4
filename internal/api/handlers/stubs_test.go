package handlers_test

import (
	"context"

	"github.com/CodeDreamer16/StarvIn/internal/application/services"
	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
)

type stubEventService struct {
	page      *entities.EventPage
	event     *entities.Event
	err       error
	lastQuery string
	lastPage  int
}

func (s *stubEventService) List(ctx context.Context, page int) (*entities.EventPage, error) {
	s.lastPage = page
	return s.page, s.err
}

func (s *stubEventService) GetByID(ctx context.Context, id string) (*entities.Event, error) {
	return s.event, s.err
}

func (s *stubEventService) Search(ctx context.Context, query string, page int) (*entities.EventPage, error) {
	s.lastQuery = query
	s.lastPage = page
	return s.page, s.err
}

type stubInterestService struct {
	catalog  []string
	labels   []string
	err      error
	replaced []string
}

func (s *stubInterestService) Catalog() []string { return s.catalog }

func (s *stubInterestService) ListForUser(ctx context.Context, userID string) ([]string, error) {
	return s.labels, s.err
}

func (s *stubInterestService) ReplaceForUser(ctx context.Context, userID string, labels []string) ([]string, error) {
	s.replaced = labels
	if s.err != nil {
		return nil, s.err
	}
	return labels, nil
}

type stubFeedService struct {
	feed        *entities.FeedPage
	explanation *services.FeedExplanation
	err         error
	lastUser    string
	lastPage    int
}

func (s *stubFeedService) GetFeed(ctx context.Context, userID string, page int) (*entities.FeedPage, error) {
	s.lastUser = userID
	s.lastPage = page
	return s.feed, s.err
}

func (s *stubFeedService) Explain(ctx context.Context, userID, eventID string) (*services.FeedExplanation, error) {
	return s.explanation, s.err
}

type stubSavedEventService struct {
	saved   []*entities.SavedEvent
	created bool
	err     error
}

func (s *stubSavedEventService) List(ctx context.Context, userID string) ([]*entities.SavedEvent, error) {
	return s.saved, s.err
}

func (s *stubSavedEventService) Save(ctx context.Context, userID, eventID string) (*entities.SavedEvent, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	return &entities.SavedEvent{ID: "s-1", UserID: userID, EventID: eventID}, s.created, nil
}

func (s *stubSavedEventService) Unsave(ctx context.Context, userID, eventID string) error {
	return s.err
}

type stubApplicationService struct {
	err         error
	lastEventID string
	lastMessage string
}

func (s *stubApplicationService) Apply(ctx context.Context, userID, eventID, message string) (*entities.Application, error) {
	s.lastEventID = eventID
	s.lastMessage = message
	if s.err != nil {
		return nil, s.err
	}
	return &entities.Application{ID: "app-1", UserID: userID, EventID: eventID, Message: message, Status: entities.ApplicationStatusSubmitted}, nil
}

func (s *stubApplicationService) List(ctx context.Context, userID string) ([]*entities.Application, error) {
	return []*entities.Application{}, s.err
}

type stubProfileService struct {
	profile *entities.Profile
	err     error
	input   *entities.Profile
}

func (s *stubProfileService) Get(ctx context.Context, userID string) (*entities.Profile, error) {
	return s.profile, s.err
}

func (s *stubProfileService) Update(ctx context.Context, userID string, input *entities.Profile) (*entities.Profile, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	input.UserID = userID
	return input, nil
}
