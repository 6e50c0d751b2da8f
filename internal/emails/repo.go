package emails

import "context"

// Repo defines persistence operations for the email audit trail.
type Repo interface {
	Create(ctx context.Context, entry LogEntry) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]LogEntry, error)
}
