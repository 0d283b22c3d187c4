package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

const (
	maxProfileFieldLength = 200
	minGraduationYear     = 1900
	maxGraduationYear     = 2100
)

// ProfileService handles student profiles.
type ProfileService struct {
	repo repositories.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*entities.Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Update validates and stores the profile, creating it on first save.
func (s *ProfileService) Update(ctx context.Context, userID string, input *entities.Profile) (*entities.Profile, error) {
	if input == nil {
		return nil, apperrors.NewValidationError("profile body is required")
	}

	profile := &entities.Profile{
		UserID:         userID,
		FullName:       strings.TrimSpace(input.FullName),
		University:     strings.TrimSpace(input.University),
		Program:        strings.TrimSpace(input.Program),
		GraduationYear: input.GraduationYear,
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
	case !apperrors.IsType(err, apperrors.ErrorTypeNotFound):
		return nil, err
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func validateProfile(p *entities.Profile) error {
	if p.FullName == "" {
		return apperrors.NewValidationError("full_name is required")
	}
	for name, value := range map[string]string{
		"full_name":  p.FullName,
		"university": p.University,
		"program":    p.Program,
	} {
		if utf8.RuneCountInString(value) > maxProfileFieldLength {
			return apperrors.NewValidationError(name + " is too long")
		}
	}
	if p.GraduationYear != 0 && (p.GraduationYear < minGraduationYear || p.GraduationYear > maxGraduationYear) {
		return apperrors.NewValidationError("graduation_year must be between 1900 and 2100")
	}
	return nil
}
