package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

// SavedEventService handles bookmarking events
type SavedEventService struct {
	repo   repositories.SavedEventRepository
	events repositories.EventRepository
	now    func() time.Time
}

// NewSavedEventService creates a new saved event service
func NewSavedEventService(repo repositories.SavedEventRepository, events repositories.EventRepository) *SavedEventService {
	return &SavedEventService{repo: repo, events: events, now: time.Now}
}

// List returns the user's saved events with their event attached, newest
// save first. Saves of deleted events are left out.
func (s *SavedEventService) List(ctx context.Context, userID string) ([]*entities.SavedEvent, error) {
	saved, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(saved))
	for i, sv := range saved {
		ids[i] = sv.EventID
	}

	events, err := loadEvents(ctx, s.events, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.SavedEvent, 0, len(saved))
	for _, sv := range saved {
		event, ok := events[sv.EventID]
		if !ok {
			log.Debug().Str("user_id", userID).Str("event_id", sv.EventID).Msg("skipping saved event that no longer exists")
			continue
		}
		sv.Event = event
		out = append(out, sv)
	}
	return out, nil
}

// Save bookmarks an event. Saving an already saved event returns the
// existing record with created set to false.
func (s *SavedEventService) Save(ctx context.Context, userID, eventID string) (saved *entities.SavedEvent, created bool, err error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.repo.Get(ctx, userID, eventID)
	if err == nil {
		existing.Event = event
		return existing, false, nil
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, false, err
	}

	saved = &entities.SavedEvent{
		ID:        uuid.New().String(),
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, saved); err != nil {
		if !apperrors.IsType(err, apperrors.ErrorTypeConflict) {
			return nil, false, err
		}
		// Lost a race with a concurrent save.
		existing, getErr := s.repo.Get(ctx, userID, eventID)
		if getErr != nil {
			return nil, false, getErr
		}
		existing.Event = event
		return existing, false, nil
	}

	saved.Event = event
	return saved, true, nil
}

// Unsave removes a bookmark. It fails with NOT_FOUND when the event was not saved.
func (s *SavedEventService) Unsave(ctx context.Context, userID, eventID string) error {
	return s.repo.Delete(ctx, userID, eventID)
}
