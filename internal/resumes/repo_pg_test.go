package resumes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResume() Resume {
	return Resume{
		ID:           "res-1",
		OriginalName: "cv.pdf",
		MimeType:     "application/pdf",
		FullText:     "Proficient in Go.\n\nContact: jane@example.com",
		Paragraphs: []Paragraph{
			{Text: "Proficient in Go.", Order: 0},
			{Text: "Contact: jane@example.com", Order: 1},
		},
		Email:      "jane@example.com",
		UploadedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func resumeRows(t *testing.T, resumes ...Resume) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows([]string{
		"id", "original_name", "mime_type", "full_text", "email", "paragraphs", "uploaded_at",
	})
	for _, r := range resumes {
		paragraphs, err := json.Marshal(r.Paragraphs)
		require.NoError(t, err)
		rows.AddRow(r.ID, r.OriginalName, r.MimeType, r.FullText, r.Email, paragraphs, r.UploadedAt)
	}
	return rows
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	res := testResume()
	paragraphs, err := json.Marshal(res.Paragraphs)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(res.ID, res.OriginalName, res.MimeType, res.FullText,
			sqlmock.AnyArg(), paragraphs, res.UploadedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	require.NoError(t, repo.Create(context.Background(), res))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	want := testResume()
	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs(want.ID).
		WillReturnRows(resumeRows(t, want))

	repo := &PGRepo{DB: db}
	got, err := repo.GetByID(context.Background(), want.ID)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("nope").
		WillReturnRows(resumeRows(t))

	repo := &PGRepo{DB: db}
	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	first := testResume()
	second := testResume()
	second.ID = "res-2"
	mock.ExpectQuery("SELECT (.+) FROM resumes ORDER BY uploaded_at DESC").
		WillReturnRows(resumeRows(t, second, first))

	repo := &PGRepo{DB: db}
	got, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "res-2", got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("res-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("res-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	require.NoError(t, repo.Delete(context.Background(), "res-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "res-1"), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
