package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

// EventService handles browsing and searching events
type EventService struct {
	repo       repositories.EventRepository
	searchRepo repositories.EventSearchRepository
	pageSize   int
	now        func() time.Time
}

// NewEventService creates a new event service. searchRepo may be nil when
// Typesense is disabled.
func NewEventService(repo repositories.EventRepository, searchRepo repositories.EventSearchRepository, pageSize int) *EventService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &EventService{
		repo:       repo,
		searchRepo: searchRepo,
		pageSize:   pageSize,
		now:        time.Now,
	}
}

// List returns a page of upcoming events, earliest first
func (s *EventService) List(ctx context.Context, page int) (*entities.EventPage, error) {
	page = normalizePage(page)

	events, err := s.repo.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, err
	}

	start, end := pageBounds(len(events), page, s.pageSize)
	return &entities.EventPage{
		Events:     events[start:end],
		Page:       page,
		PageSize:   s.pageSize,
		TotalCount: len(events),
		HasMore:    end < len(events),
	}, nil
}

// GetByID retrieves an event by ID
func (s *EventService) GetByID(ctx context.Context, id string) (*entities.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("event id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// Search runs a full-text query over upcoming events and returns them in rank order
func (s *EventService) Search(ctx context.Context, query string, page int) (*entities.EventPage, error) {
	if s.searchRepo == nil {
		return nil, apperrors.NewUnavailableError("event search is not available")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("query parameter q is required")
	}
	page = normalizePage(page)

	result, err := s.searchRepo.Search(ctx, repositories.EventSearchParams{
		Query: query,
		From:  s.now(),
		Page:  page,
		Limit: s.pageSize,
	})
	if err != nil {
		return nil, err
	}

	events, err := s.repo.GetByIDs(ctx, result.IDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	ordered := make([]*entities.Event, 0, len(result.IDs))
	for _, id := range result.IDs {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
			continue
		}
		log.Debug().Str("event_id", id).Msg("search hit missing from database, index is stale")
	}

	return &entities.EventPage{
		Events:     ordered,
		Page:       page,
		PageSize:   s.pageSize,
		TotalCount: result.TotalCount,
		HasMore:    hasMorePages(result.TotalCount, page, s.pageSize),
	}, nil
}
