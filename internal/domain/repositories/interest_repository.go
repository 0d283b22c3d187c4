package repositories

import "context"

// InterestRepository stores the interest labels each user picked
type InterestRepository interface {
	// ListByUser returns the user's labels in the order they were saved
	ListByUser(ctx context.Context, userID string) ([]string, error)

	// ReplaceForUser atomically replaces the user's labels
	ReplaceForUser(ctx context.Context, userID string, labels []string) error
}
