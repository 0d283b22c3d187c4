package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

// SavedEventAdapter implements the SavedEventRepository interface
type SavedEventAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSavedEventAdapter creates a new saved event adapter
func NewSavedEventAdapter(client *postgres.Client) repositories.SavedEventRepository {
	return &SavedEventAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListByUser returns the user's saved events, newest first
func (a *SavedEventAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.SavedEvent, error) {
	query, args, err := a.db.Select("id", "user_id", "event_id", "created_at").
		From("saved_events").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list saved events", err)
	}
	defer rows.Close()

	saved := []*entities.SavedEvent{}
	for rows.Next() {
		s := &entities.SavedEvent{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.EventID, &s.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan saved event", err)
		}
		saved = append(saved, s)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating saved events", err)
	}

	return saved, nil
}

// Get returns the saved record for a user and event
func (a *SavedEventAdapter) Get(ctx context.Context, userID, eventID string) (*entities.SavedEvent, error) {
	query, args, err := a.db.Select("id", "user_id", "event_id", "created_at").
		From("saved_events").
		Where(goqu.Ex{"user_id": userID, "event_id": eventID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	s := &entities.SavedEvent{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.UserID, &s.EventID, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s is not saved by user %s", eventID, userID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get saved event", err)
	}

	return s, nil
}

// Create stores a new saved record
func (a *SavedEventAdapter) Create(ctx context.Context, saved *entities.SavedEvent) error {
	if saved == nil {
		return apperrors.NewInternalError("saved event is nil", fmt.Errorf("saved event is nil"))
	}

	query, args, err := a.db.Insert("saved_events").
		Rows(goqu.Record{
			"id":         saved.ID,
			"user_id":    saved.UserID,
			"event_id":   saved.EventID,
			"created_at": saved.CreatedAt,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build saved event insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("event %s is already saved", saved.EventID))
		}
		return apperrors.NewInternalError("failed to save event", err)
	}

	return nil
}

// Delete removes the saved record for a user and event
func (a *SavedEventAdapter) Delete(ctx context.Context, userID, eventID string) error {
	query, args, err := a.db.Delete("saved_events").
		Where(goqu.Ex{"user_id": userID, "event_id": eventID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to unsave event", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("event %s is not saved by user %s", eventID, userID))
	}

	return nil
}
