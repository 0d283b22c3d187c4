package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	"github.com/CodeDreamer16/StarvIn/internal/domain/repositories"
	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

var eventColumns = []interface{}{
	"id", "title", "description", "type", "organization", "location",
	"date", "deadline", "image_url", "prize", "tags",
	"created_at", "updated_at",
}

// EventAdapter implements the EventRepository interface
type EventAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewEventAdapter creates a new event adapter
func NewEventAdapter(client *postgres.Client) repositories.EventRepository {
	return &EventAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByID retrieves an event by ID
func (a *EventAdapter) GetByID(ctx context.Context, id string) (*entities.Event, error) {
	query, args, err := a.db.Select(eventColumns...).
		From("events").
		Where(goqu.Ex{"id": id}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	event, err := scanEvent(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("event with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get event", err)
	}

	return event, nil
}

// GetByIDs retrieves multiple events by their IDs. Unknown IDs are skipped.
func (a *EventAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Event, error) {
	if len(ids) == 0 {
		return []*entities.Event{}, nil
	}

	query, args, err := a.db.Select(eventColumns...).
		From("events").
		Where(goqu.Ex{"id": ids}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryEvents(ctx, query, args)
}

// ListUpcoming retrieves events dated at or after from, earliest first
func (a *EventAdapter) ListUpcoming(ctx context.Context, from time.Time) ([]*entities.Event, error) {
	query, args, err := a.db.Select(eventColumns...).
		From("events").
		Where(goqu.C("date").Gte(from)).
		Order(goqu.I("date").Asc(), goqu.I("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	return a.queryEvents(ctx, query, args)
}

func (a *EventAdapter) queryEvents(ctx context.Context, query string, args []interface{}) ([]*entities.Event, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query events", err)
	}
	defer rows.Close()

	events := []*entities.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan event", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating events", err)
	}

	return events, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*entities.Event, error) {
	event := &entities.Event{}
	var eventType, organization, location, imageURL, prize sql.NullString
	var deadline sql.NullTime
	var tags pq.StringArray

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&eventType,
		&organization,
		&location,
		&event.Date,
		&deadline,
		&imageURL,
		&prize,
		&tags,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.Type = eventType.String
	event.Organization = organization.String
	event.Location = location.String
	event.ImageURL = imageURL.String
	event.Prize = prize.String
	if deadline.Valid {
		d := deadline.Time
		event.Deadline = &d
	}
	if len(tags) > 0 {
		event.Tags = []string(tags)
	}

	return event, nil
}
