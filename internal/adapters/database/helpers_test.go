package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/CodeDreamer16/StarvIn/internal/infrastructure/clients/postgres"
)

var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func setupMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return postgres.NewClientWithDB(db), mock
}

func eventRowColumns() []string {
	return []string{
		"id", "title", "description", "type", "organization", "location",
		"date", "deadline", "image_url", "prize", "tags",
		"created_at", "updated_at",
	}
}
