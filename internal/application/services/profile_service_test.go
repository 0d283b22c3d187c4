package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

func TestProfileService_Update_CreatesProfile(t *testing.T) {
	repo := new(mockProfileRepository)
	repo.On("GetByUserID", mock.Anything, "user-1").Return(nil, apperrors.NewNotFoundError("none"))
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *entities.Profile) bool {
		return p.UserID == "user-1" && p.FullName == "Ada Student" && p.CreatedAt.IsZero()
	})).Return(nil)

	svc := NewProfileService(repo)
	profile, err := svc.Update(context.Background(), "user-1", &entities.Profile{
		UserID:         "someone-else",
		FullName:       "  Ada Student ",
		GraduationYear: 2027,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	repo.AssertExpectations(t)
}

func TestProfileService_Update_KeepsCreatedAt(t *testing.T) {
	repo := new(mockProfileRepository)
	existing := &entities.Profile{UserID: "user-1", FullName: "Old", CreatedAt: testNow}
	repo.On("GetByUserID", mock.Anything, "user-1").Return(existing, nil)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	svc := NewProfileService(repo)
	profile, err := svc.Update(context.Background(), "user-1", &entities.Profile{FullName: "New"})
	require.NoError(t, err)
	assert.True(t, profile.CreatedAt.Equal(testNow))
}

func TestProfileService_Update_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		profile *entities.Profile
	}{
		{name: "nil body", profile: nil},
		{name: "missing name", profile: &entities.Profile{FullName: "  "}},
		{name: "year too early", profile: &entities.Profile{FullName: "A", GraduationYear: 1899}},
		{name: "year too late", profile: &entities.Profile{FullName: "A", GraduationYear: 2101}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockProfileRepository)
			svc := NewProfileService(repo)

			_, err := svc.Update(context.Background(), "user-1", tc.profile)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
			repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}
