package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

// MaxApplicationMessageLength bounds the free-text message of an application
const MaxApplicationMessageLength = 2000

// ApplicationService handles applying to events
type ApplicationService struct {
	repo   repositories.ApplicationRepository
	events repositories.EventRepository
	now    func() time.Time
}

// NewApplicationService creates a new application service
func NewApplicationService(repo repositories.ApplicationRepository, events repositories.EventRepository) *ApplicationService {
	return &ApplicationService{repo: repo, events: events, now: time.Now}
}

// Apply submits an application to an event. Applications close at the
// event's deadline, or at its start when it has none.
func (s *ApplicationService) Apply(ctx context.Context, userID, eventID, message string) (*entities.Application, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, apperrors.NewValidationError("event_id is required")
	}
	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) > MaxApplicationMessageLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("message must be at most %d characters", MaxApplicationMessageLength))
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if now.After(event.ApplicationCloses()) {
		return nil, apperrors.NewValidationError("applications for this event are closed")
	}

	_, err = s.repo.GetByUserAndEvent(ctx, userID, eventID)
	if err == nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("already applied to event %s", eventID))
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, err
	}

	application := &entities.Application{
		ID:        uuid.New().String(),
		UserID:    userID,
		EventID:   eventID,
		Message:   message,
		Status:    entities.ApplicationStatusSubmitted,
		CreatedAt: now.UTC(),
	}
	if err := s.repo.Create(ctx, application); err != nil {
		return nil, err
	}

	application.Event = event
	return application, nil
}

// List returns the user's applications with their events attached
func (s *ApplicationService) List(ctx context.Context, userID string) ([]*entities.Application, error) {
	applications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(applications))
	for i, a := range applications {
		ids[i] = a.EventID
	}

	events, err := loadEvents(ctx, s.events, ids)
	if err != nil {
		return nil, err
	}

	for _, a := range applications {
		a.Event = events[a.EventID]
	}
	return applications, nil
}
