package database

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

// InterestAdapter stores user interest labels in the interests table
type InterestAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewInterestAdapter creates a new interest adapter
func NewInterestAdapter(client *postgres.Client) repositories.InterestRepository {
	return &InterestAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListByUser returns the user's labels in the order they were saved
func (a *InterestAdapter) ListByUser(ctx context.Context, userID string) ([]string, error) {
	query, args, err := a.db.Select("label").
		From("interests").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("position").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list interests", err)
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, apperrors.NewInternalError("failed to scan interest", err)
		}
		labels = append(labels, label)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating interests", err)
	}

	return labels, nil
}

// ReplaceForUser deletes the user's labels and inserts the new set in one transaction
func (a *InterestAdapter) ReplaceForUser(ctx context.Context, userID string, labels []string) error {
	deleteQuery, deleteArgs, err := a.db.Delete("interests").
		Where(goqu.Ex{"user_id": userID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return apperrors.NewInternalError("failed to clear interests", err)
	}

	if len(labels) > 0 {
		now := time.Now()
		rows := make([]interface{}, 0, len(labels))
		for i, label := range labels {
			rows = append(rows, goqu.Record{
				"user_id":    userID,
				"label":      label,
				"position":   i,
				"created_at": now,
			})
		}

		insertQuery, insertArgs, err := a.db.Insert("interests").
			Rows(rows...).
			Prepared(true).
			ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build insert query", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return apperrors.NewInternalError("failed to save interests", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit interests", err)
	}

	return nil
}
