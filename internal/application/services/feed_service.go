package services

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/observability"
	"github.com/CodeDreamer16/StarvIn/internal/matching"
	"github.com/CodeDreamer16/StarvIn/pkg/textnorm"
)

// FeedService assembles a user's personalised event feed
type FeedService struct {
	events    repositories.EventRepository
	interests repositories.InterestRepository
	matcher   *matching.Matcher
	pageSize  int
	metrics   *observability.Metrics
}

// FeedExplanation shows how a single event scored against a user's interests
type FeedExplanation struct {
	Event     *entities.Event      `json:"event"`
	Interests []string             `json:"interests"`
	Result    matching.MatchResult `json:"result"`
}

// NewFeedService creates a new feed service. metrics may be nil.
func NewFeedService(
	events repositories.EventRepository,
	interests repositories.InterestRepository,
	matcher *matching.Matcher,
	pageSize int,
	metrics *observability.Metrics,
) *FeedService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &FeedService{
		events:    events,
		interests: interests,
		matcher:   matcher,
		pageSize:  pageSize,
		metrics:   metrics,
	}
}

// GetFeed returns one page of upcoming events filtered and ordered by the
// user's interests. Without interests every upcoming event is listed by date.
func (s *FeedService) GetFeed(ctx context.Context, userID string, page int) (*entities.FeedPage, error) {
	ctx, span := observability.StartSpan(ctx, "FeedService.GetFeed")
	defer span.End()

	page = normalizePage(page)

	now := s.matcher.Now()
	events, err := s.events.ListUpcoming(ctx, now)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	labels := s.userLabels(ctx, userID)
	personalized := len(labels) > 0

	items := make([]entities.FeedItem, 0, len(events))
	for _, event := range events {
		if !event.IsUpcoming(now) {
			continue
		}
		result := s.matcher.Match(event, labels)
		if !result.Relevant {
			continue
		}
		items = append(items, entities.FeedItem{
			Event:         event,
			Score:         result.Score,
			MatchedLabels: result.MatchedLabels,
			KeywordHits:   result.KeywordHits,
		})
	}

	sortFeed(items, personalized)

	observability.RecordFeedMetric(ctx, s.metrics, personalized, len(events), len(items))
	observability.SetSpanAttributes(span,
		attribute.Bool("feed.personalized", personalized),
		attribute.Int("feed.candidates", len(events)),
		attribute.Int("feed.relevant", len(items)),
	)

	start, end := pageBounds(len(items), page, s.pageSize)
	return &entities.FeedPage{
		Items:        items[start:end],
		Interests:    labels,
		Personalized: personalized,
		Page:         page,
		PageSize:     s.pageSize,
		TotalCount:   len(items),
		HasMore:      end < len(items),
	}, nil
}

// Explain returns the match details of one event for the user
func (s *FeedService) Explain(ctx context.Context, userID, eventID string) (*FeedExplanation, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	labels := s.userLabels(ctx, userID)
	return &FeedExplanation{
		Event:     event,
		Interests: labels,
		Result:    s.matcher.Match(event, labels),
	}, nil
}

// userLabels loads the user's labels. A failed fetch degrades to the
// unpersonalised feed.
func (s *FeedService) userLabels(ctx context.Context, userID string) []string {
	labels, err := s.interests.ListByUser(ctx, userID)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("user_id", userID).
			Msg("failed to load interests, serving unpersonalised feed")
		return []string{}
	}

	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if textnorm.Normalize(label) != "" {
			out = append(out, label)
		}
	}
	return out
}

func sortFeed(items []entities.FeedItem, byScore bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if byScore && a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Event.Date.Equal(b.Event.Date) {
			return a.Event.Date.Before(b.Event.Date)
		}
		return a.Event.ID < b.Event.ID
	})
}
