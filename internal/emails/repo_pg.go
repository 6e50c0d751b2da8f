package emails

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create appends a log entry.
func (r *PGRepo) Create(ctx context.Context, entry LogEntry) error {
	const query = `
INSERT INTO email_logs (id, to_address, subject, body, status, error, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var sendErr sql.NullString
	if entry.Error != "" {
		sendErr = sql.NullString{String: entry.Error, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.To,
		entry.Subject,
		entry.Body,
		string(entry.Status),
		sendErr,
		entry.CreatedAt,
	)
	return err
}

// ListRecent returns the newest entries first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]LogEntry, error) {
	const query = `
SELECT id, to_address, subject, body, status, error, created_at
FROM email_logs
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LogEntry
	for rows.Next() {
		var entry LogEntry
		var status string
		var sendErr sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&entry.To,
			&entry.Subject,
			&entry.Body,
			&status,
			&sendErr,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entry.Status = Status(status)
		if sendErr.Valid {
			entry.Error = sendErr.String
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
