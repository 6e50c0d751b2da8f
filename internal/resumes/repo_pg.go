package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Paragraphs are stored as a
// jsonb column; the document is written once and always read whole.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, original_name, mime_type, full_text, email, paragraphs, uploaded_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (id, original_name, mime_type, full_text, email, paragraphs, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	paragraphs, err := json.Marshal(res.Paragraphs)
	if err != nil {
		return fmt.Errorf("marshal paragraphs: %w", err)
	}

	var email sql.NullString
	if res.Email != "" {
		email = sql.NullString{String: res.Email, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		res.ID,
		res.OriginalName,
		res.MimeType,
		res.FullText,
		email,
		paragraphs,
		res.UploadedAt,
	)
	return err
}

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1`

	res, err := scanResume(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// List returns all resumes, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
ORDER BY uploaded_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Latest returns the most recently uploaded resume.
func (r *PGRepo) Latest(ctx context.Context) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
ORDER BY uploaded_at DESC
LIMIT 1`

	res, err := scanResume(r.DB.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// Delete removes a resume permanently.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var res Resume
	var email sql.NullString
	var paragraphs []byte
	if err := row.Scan(
		&res.ID,
		&res.OriginalName,
		&res.MimeType,
		&res.FullText,
		&email,
		&paragraphs,
		&res.UploadedAt,
	); err != nil {
		return Resume{}, err
	}
	if email.Valid {
		res.Email = email.String
	}
	if len(paragraphs) > 0 {
		if err := json.Unmarshal(paragraphs, &res.Paragraphs); err != nil {
			return Resume{}, fmt.Errorf("unmarshal paragraphs: %w", err)
		}
	}
	return res, nil
}

var _ Repo = (*PGRepo)(nil)
