package evaluation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

// goldenEvents serves the golden set to FeedService
type goldenEvents []*entities.Event

func (g goldenEvents) GetByID(ctx context.Context, id string) (*entities.Event, error) {
	for _, e := range g {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("event with id %s not found", id))
}

func (g goldenEvents) GetByIDs(ctx context.Context, ids []string) ([]*entities.Event, error) {
	out := make([]*entities.Event, 0, len(ids))
	for _, id := range ids {
		if e, err := g.GetByID(ctx, id); err == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (g goldenEvents) ListUpcoming(ctx context.Context, from time.Time) ([]*entities.Event, error) {
	out := make([]*entities.Event, 0, len(g))
	for _, e := range g {
		if e.IsUpcoming(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

// goldenInterests maps ranking case IDs to their interests
type goldenInterests map[string][]string

func (g goldenInterests) ListByUser(ctx context.Context, userID string) ([]string, error) {
	return g[userID], nil
}

func (g goldenInterests) ReplaceForUser(ctx context.Context, userID string, labels []string) error {
	return errors.New("golden interests are read-only")
}
