package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeDreamer16/StarvIn/internal/domain/entities"
	apperrors "github.com/CodeDreamer16/StarvIn/pkg/errors"
)

func TestSavedEventAdapter_ListByUser(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSavedEventAdapter(client)

	mock.ExpectQuery(`SELECT "id", "user_id", "event_id", "created_at" FROM "saved_events" WHERE \("user_id" = \$1\) ORDER BY "created_at" DESC`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id", "created_at"}).
			AddRow("s-2", "user-1", "evt-2", testNow).
			AddRow("s-1", "user-1", "evt-1", testNow.Add(-time.Hour)))

	saved, err := adapter.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "evt-2", saved[0].EventID)
}

func TestSavedEventAdapter_Get_NotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSavedEventAdapter(client)

	mock.ExpectQuery(`SELECT .* FROM "saved_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id", "created_at"}))

	saved, err := adapter.Get(context.Background(), "user-1", "evt-9")
	assert.Nil(t, saved)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestSavedEventAdapter_Create_DuplicateIsConflict(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSavedEventAdapter(client)

	mock.ExpectExec(`INSERT INTO "saved_events"`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := adapter.Create(context.Background(), &entities.SavedEvent{
		ID: "s-1", UserID: "user-1", EventID: "evt-1", CreatedAt: testNow,
	})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestSavedEventAdapter_Delete(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSavedEventAdapter(client)

	mock.ExpectExec(`DELETE FROM "saved_events" WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, adapter.Delete(context.Background(), "user-1", "evt-1"))
}

func TestSavedEventAdapter_Delete_NotSaved(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSavedEventAdapter(client)

	mock.ExpectExec(`DELETE FROM "saved_events" WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adapter.Delete(context.Background(), "user-1", "evt-1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
