package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/providers"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/observability"
)

const (
	eventCacheName    = "events"
	upcomingEventsKey = "events:upcoming"
)

// CachedEventAdapter wraps an EventRepository with caching
type CachedEventAdapter struct {
	adapter    repositories.EventRepository
	cache      providers.CacheProvider
	ttlSeconds int
	metrics    *observability.Metrics
}

// NewCachedEventAdapter creates a new cached event adapter. metrics may be nil.
func NewCachedEventAdapter(adapter repositories.EventRepository, cache providers.CacheProvider, ttlSeconds int, metrics *observability.Metrics) repositories.EventRepository {
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}
	return &CachedEventAdapter{
		adapter:    adapter,
		cache:      cache,
		ttlSeconds: ttlSeconds,
		metrics:    metrics,
	}
}

func eventCacheKey(id string) string {
	return fmt.Sprintf("event:%s", id)
}

type cachedUpcoming struct {
	From   time.Time         `json:"from"`
	Events []*entities.Event `json:"events"`
}

// GetByID retrieves an event by ID with caching
func (a *CachedEventAdapter) GetByID(ctx context.Context, id string) (*entities.Event, error) {
	cacheKey := eventCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var event entities.Event
		if err := json.Unmarshal(cached, &event); err == nil {
			observability.RecordCacheHit(ctx, a.metrics, eventCacheName)
			return &event, nil
		}
		log.Warn().Err(err).Str("event_id", id).Msg("failed to unmarshal cached event")
	}
	observability.RecordCacheMiss(ctx, a.metrics, eventCacheName)

	event, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(event); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, a.ttlSeconds); err != nil {
			log.Warn().Err(err).Str("event_id", id).Msg("failed to cache event")
		}
	}

	return event, nil
}

// GetByIDs retrieves multiple events, reading what it can from cache in one batch
func (a *CachedEventAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Event, error) {
	if len(ids) == 0 {
		return []*entities.Event{}, nil
	}

	cacheKeys := make([]string, len(ids))
	for i, id := range ids {
		cacheKeys[i] = eventCacheKey(id)
	}

	cached, err := a.cache.GetMulti(ctx, cacheKeys)
	if err != nil {
		log.Warn().Err(err).Int("keys", len(cacheKeys)).Msg("failed to read events from cache")
		cached = nil
	}

	events := make([]*entities.Event, 0, len(ids))
	missingIDs := make([]string, 0)
	for i, id := range ids {
		if data, ok := cached[cacheKeys[i]]; ok {
			var event entities.Event
			if err := json.Unmarshal(data, &event); err == nil {
				events = append(events, &event)
				continue
			}
		}
		missingIDs = append(missingIDs, id)
	}

	if len(missingIDs) == 0 {
		observability.RecordCacheHit(ctx, a.metrics, eventCacheName)
		return events, nil
	}
	observability.RecordCacheMiss(ctx, a.metrics, eventCacheName)

	fetched, err := a.adapter.GetByIDs(ctx, missingIDs)
	if err != nil {
		return nil, err
	}

	items := make(map[string][]byte, len(fetched))
	for _, event := range fetched {
		if data, err := json.Marshal(event); err == nil {
			items[eventCacheKey(event.ID)] = data
		}
	}
	if err := a.cache.SetMulti(ctx, items, a.ttlSeconds); err != nil {
		log.Warn().Err(err).Int("events", len(items)).Msg("failed to cache events")
	}

	return append(events, fetched...), nil
}

// ListUpcoming serves the upcoming list from cache when the cached snapshot
// starts at or before from. Events that have started since are filtered out.
func (a *CachedEventAdapter) ListUpcoming(ctx context.Context, from time.Time) ([]*entities.Event, error) {
	if cached, err := a.cache.Get(ctx, upcomingEventsKey); err == nil {
		var snapshot cachedUpcoming
		if err := json.Unmarshal(cached, &snapshot); err == nil && !snapshot.From.After(from) {
			observability.RecordCacheHit(ctx, a.metrics, eventCacheName)
			events := make([]*entities.Event, 0, len(snapshot.Events))
			for _, event := range snapshot.Events {
				if event.IsUpcoming(from) {
					events = append(events, event)
				}
			}
			return events, nil
		}
	}
	observability.RecordCacheMiss(ctx, a.metrics, eventCacheName)

	events, err := a.adapter.ListUpcoming(ctx, from)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(cachedUpcoming{From: from, Events: events}); err == nil {
		if err := a.cache.Set(ctx, upcomingEventsKey, data, a.ttlSeconds); err != nil {
			log.Warn().Err(err).Msg("failed to cache upcoming events")
		}
	}

	return events, nil
}
