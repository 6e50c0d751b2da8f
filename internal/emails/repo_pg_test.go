package emails

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	entry := LogEntry{
		ID:        "log-1",
		To:        "jane@example.com",
		Subject:   "Opportunity",
		Body:      "We liked your resume.",
		Status:    StatusSent,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO email_logs").
		WithArgs(entry.ID, entry.To, entry.Subject, entry.Body,
			"sent", sqlmock.AnyArg(), entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	require.NoError(t, repo.Create(context.Background(), entry))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "to_address", "subject", "body", "status", "error", "created_at",
	}).
		AddRow("log-2", "b@example.com", "s2", "b2", "failed", "connection refused", now).
		AddRow("log-1", "a@example.com", "s1", "b1", "sent", nil, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM email_logs ORDER BY created_at DESC").
		WithArgs(20).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.ListRecent(context.Background(), 20)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, StatusFailed, got[0].Status)
	assert.Equal(t, "connection refused", got[0].Error)
	assert.Equal(t, StatusSent, got[1].Status)
	assert.Empty(t, got[1].Error)
	require.NoError(t, mock.ExpectationsWereMet())
}
