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

var applicationColumns = []interface{}{"id", "user_id", "event_id", "message", "status", "created_at"}

// ApplicationAdapter implements the ApplicationRepository interface
type ApplicationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewApplicationAdapter creates a new application adapter
func NewApplicationAdapter(client *postgres.Client) repositories.ApplicationRepository {
	return &ApplicationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create stores a new application
func (a *ApplicationAdapter) Create(ctx context.Context, application *entities.Application) error {
	if application == nil {
		return apperrors.NewInternalError("application is nil", fmt.Errorf("application is nil"))
	}

	record := goqu.Record{
		"id":         application.ID,
		"user_id":    application.UserID,
		"event_id":   application.EventID,
		"message":    sql.NullString{String: application.Message, Valid: application.Message != ""},
		"status":     string(application.Status),
		"created_at": application.CreatedAt,
	}

	query, args, err := a.db.Insert("applications").Rows(record).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build application insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("already applied to event %s", application.EventID))
		}
		return apperrors.NewInternalError("failed to create application", err)
	}

	return nil
}

// GetByUserAndEvent returns the user's application to an event
func (a *ApplicationAdapter) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entities.Application, error) {
	query, args, err := a.db.Select(applicationColumns...).
		From("applications").
		Where(goqu.Ex{"user_id": userID, "event_id": eventID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	application, err := scanApplication(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no application by user %s to event %s", userID, eventID))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get application", err)
	}

	return application, nil
}

// ListByUser returns the user's applications, newest first
func (a *ApplicationAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Application, error) {
	query, args, err := a.db.Select(applicationColumns...).
		From("applications").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list applications", err)
	}
	defer rows.Close()

	applications := []*entities.Application{}
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan application", err)
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating applications", err)
	}

	return applications, nil
}

func scanApplication(row rowScanner) (*entities.Application, error) {
	application := &entities.Application{}
	var message sql.NullString
	var status string

	if err := row.Scan(
		&application.ID,
		&application.UserID,
		&application.EventID,
		&message,
		&status,
		&application.CreatedAt,
	); err != nil {
		return nil, err
	}

	application.Message = message.String
	application.Status = entities.ApplicationStatus(status)
	return application, nil
}
