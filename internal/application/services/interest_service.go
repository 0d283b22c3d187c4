package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/matching"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

// InterestService manages the interest catalog and each user's picks
type InterestService struct {
	repo     repositories.InterestRepository
	taxonomy *matching.Taxonomy
}

// NewInterestService creates a new interest service
func NewInterestService(repo repositories.InterestRepository, taxonomy *matching.Taxonomy) *InterestService {
	return &InterestService{repo: repo, taxonomy: taxonomy}
}

// Catalog returns the selectable labels in taxonomy order
func (s *InterestService) Catalog() []string {
	return s.taxonomy.Labels()
}

// ListForUser returns the labels the user picked
func (s *InterestService) ListForUser(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ReplaceForUser validates the labels against the catalog and stores them in
// their canonical spelling. Blank and repeated labels are dropped.
func (s *InterestService) ReplaceForUser(ctx context.Context, userID string, labels []string) ([]string, error) {
	cleaned := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	var unknown []string

	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		canonical, ok := s.taxonomy.Canonical(label)
		if !ok {
			unknown = append(unknown, label)
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		cleaned = append(cleaned, canonical)
	}

	if len(unknown) > 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown interests: %s", strings.Join(unknown, ", ")))
	}

	if err := s.repo.ReplaceForUser(ctx, userID, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}
