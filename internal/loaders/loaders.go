package loaders

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

type ctxKey string

const loadersKey ctxKey = "dataloaders"

// Loaders contains the request-scoped dataloaders
type Loaders struct {
	EventLoader *dataloader.Loader[string, *entities.Event]
}

// NewLoaders creates a new instance of Loaders
func NewLoaders(eventRepo repositories.EventRepository) *Loaders {
	return &Loaders{
		EventLoader: dataloader.NewBatchedLoader(func(ctx context.Context, keys []string) []*dataloader.Result[*entities.Event] {
			results := make([]*dataloader.Result[*entities.Event], len(keys))
			events, err := eventRepo.GetByIDs(ctx, keys)

			eventMap := make(map[string]*entities.Event, len(events))
			if err == nil {
				for _, e := range events {
					eventMap[e.ID] = e
				}
			}

			for i, key := range keys {
				if err != nil {
					results[i] = &dataloader.Result[*entities.Event]{Error: err}
				} else if e, ok := eventMap[key]; ok {
					results[i] = &dataloader.Result[*entities.Event]{Data: e}
				} else {
					results[i] = &dataloader.Result[*entities.Event]{Error: apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", key))}
				}
			}
			return results
		}),
	}
}

// Events loads the given IDs in one batch. Events that no longer exist are
// absent from the map; any other failure is returned.
func (l *Loaders) Events(ctx context.Context, ids []string) (map[string]*entities.Event, error) {
	out := make(map[string]*entities.Event, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	events, errs := l.EventLoader.LoadMany(ctx, ids)()
	for i, id := range ids {
		if i < len(errs) && errs[i] != nil {
			if apperrors.IsType(errs[i], apperrors.ErrorTypeNotFound) {
				continue
			}
			return nil, errs[i]
		}
		if i < len(events) && events[i] != nil {
			out[id] = events[i]
		}
	}
	return out, nil
}

// For returns the loaders for a given context, or nil when none are attached
func For(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// WithLoaders returns a new context with the loaders attached
func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, loaders)
}
