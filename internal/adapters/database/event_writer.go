package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

// NewEventWriter returns the write side of the event adapter
func NewEventWriter(client *postgres.Client) repositories.EventWriter {
	return &EventAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Upsert inserts an event or updates the existing row with the same ID
func (a *EventAdapter) Upsert(ctx context.Context, event *entities.Event) error {
	if event == nil || event.ID == "" {
		return apperrors.NewValidationError("event id is required")
	}

	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	var deadline sql.NullTime
	if event.Deadline != nil {
		deadline = sql.NullTime{Time: *event.Deadline, Valid: true}
	}

	record := goqu.Record{
		"id":           event.ID,
		"title":        event.Title,
		"description":  event.Description,
		"type":         nullString(event.Type),
		"organization": nullString(event.Organization),
		"location":     nullString(event.Location),
		"date":         event.Date,
		"deadline":     deadline,
		"image_url":    nullString(event.ImageURL),
		"prize":        nullString(event.Prize),
		"tags":         pq.StringArray(event.Tags),
		"created_at":   event.CreatedAt,
		"updated_at":   event.UpdatedAt,
	}

	update := goqu.Record{}
	for _, col := range []string{"title", "description", "type", "organization", "location", "date", "deadline", "image_url", "prize", "tags", "updated_at"} {
		update[col] = goqu.L("EXCLUDED." + col)
	}

	query, args, err := a.db.Insert("events").
		Rows(record).
		OnConflict(goqu.DoUpdate("id", update)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build event upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to upsert event", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
