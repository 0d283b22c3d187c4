package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

// ProfileAdapter implements profile persistence in Postgres.
type ProfileAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProfileAdapter creates a new profile adapter.
func NewProfileAdapter(client *postgres.Client) repositories.ProfileRepository {
	return &ProfileAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByUserID retrieves the profile of a user.
func (a *ProfileAdapter) GetByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	query, args, err := a.db.Select(
		"user_id", "full_name", "university", "program", "graduation_year",
		"created_at", "updated_at",
	).From("profiles").
		Where(goqu.Ex{"user_id": userID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	profile := &entities.Profile{}
	var university, program sql.NullString
	var graduationYear sql.NullInt64

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&profile.UserID,
		&profile.FullName,
		&university,
		&program,
		&graduationYear,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("profile for user %s not found", userID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get profile", err)
	}

	profile.University = university.String
	profile.Program = program.String
	profile.GraduationYear = int(graduationYear.Int64)

	return profile, nil
}

// Upsert inserts the profile or updates the existing row for the user.
func (a *ProfileAdapter) Upsert(ctx context.Context, profile *entities.Profile) error {
	if profile == nil {
		return apperrors.NewInternalError("profile is nil", fmt.Errorf("profile is nil"))
	}

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	record := goqu.Record{
		"user_id":         profile.UserID,
		"full_name":       profile.FullName,
		"university":      sql.NullString{String: profile.University, Valid: profile.University != ""},
		"program":         sql.NullString{String: profile.Program, Valid: profile.Program != ""},
		"graduation_year": sql.NullInt64{Int64: int64(profile.GraduationYear), Valid: profile.GraduationYear != 0},
		"created_at":      profile.CreatedAt,
		"updated_at":      profile.UpdatedAt,
	}

	query, args, err := a.db.Insert("profiles").
		Rows(record).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"full_name":       goqu.L("EXCLUDED.full_name"),
			"university":      goqu.L("EXCLUDED.university"),
			"program":         goqu.L("EXCLUDED.program"),
			"graduation_year": goqu.L("EXCLUDED.graduation_year"),
			"updated_at":      goqu.L("EXCLUDED.updated_at"),
		})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build profile upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to save profile", err)
	}

	return nil
}
