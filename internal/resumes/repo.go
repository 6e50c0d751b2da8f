package resumes

import "context"

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
	// List returns all resumes, newest first.
	List(ctx context.Context) ([]Resume, error)
	// Latest returns the most recently uploaded resume.
	Latest(ctx context.Context) (Resume, error)
	// Delete is a hard delete. Returns ErrNotFound when id is unknown.
	Delete(ctx context.Context, id string) error
}
