package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
)

// schemaStatements create the tables the adapters read and write. Every
// statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		type         TEXT,
		organization TEXT,
		location     TEXT,
		date         TIMESTAMPTZ NOT NULL,
		deadline     TIMESTAMPTZ,
		image_url    TEXT,
		prize        TEXT,
		tags         TEXT[],
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS events_date_idx ON events (date, id)`,
	`CREATE TABLE IF NOT EXISTS interests (
		user_id    TEXT NOT NULL,
		label      TEXT NOT NULL,
		position   INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, label)
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id         TEXT PRIMARY KEY,
		full_name       TEXT NOT NULL,
		university      TEXT,
		program         TEXT,
		graduation_year INTEGER,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS saved_events (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		event_id   TEXT NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		event_id   TEXT NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		message    TEXT,
		status     TEXT NOT NULL DEFAULT 'submitted',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, event_id)
	)`,
}

// InitSchema creates any missing tables and indexes
func InitSchema(ctx context.Context, client *postgres.Client) error {
	for _, stmt := range schemaStatements {
		if _, err := client.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	log.Info().Int("statements", len(schemaStatements)).Msg("PostgreSQL schema initialized")
	return nil
}
