package services

import (
	"context"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/loaders"
)

// loadEvents batch-loads events through the request's dataloader, or a fresh
// one when the request carries none
func loadEvents(ctx context.Context, repo repositories.EventRepository, ids []string) (map[string]*entities.Event, error) {
	l := loaders.For(ctx)
	if l == nil {
		l = loaders.NewLoaders(repo)
	}
	return l.Events(ctx, ids)
}
