package resumes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-chat-backend/internal/extract"
)

// Service contains business logic for resumes.
type Service struct {
	Repo    Repo
	Extract extract.Extractor
}

// Upload parses the uploaded payload, splits it into ordered paragraphs
// and persists the resulting resume.
func (s *Service) Upload(ctx context.Context, fileName, mimeType string, data []byte) (Resume, error) {
	text, err := s.Extract.Parse(data, mimeType)
	if err != nil {
		return Resume{}, err
	}

	raw := extract.SplitParagraphs(text)
	paragraphs := make([]Paragraph, len(raw))
	for i, p := range raw {
		paragraphs[i] = Paragraph{Text: p, Order: i}
	}

	res := Resume{
		ID:           uuid.NewString(),
		OriginalName: fileName,
		MimeType:     mimeType,
		FullText:     text,
		Paragraphs:   paragraphs,
		Email:        extract.FirstEmail(text),
		UploadedAt:   time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// List returns all resumes, newest first.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}

// Latest returns the most recently uploaded resume.
func (s *Service) Latest(ctx context.Context) (Resume, error) {
	return s.Repo.Latest(ctx)
}

// Delete removes a resume permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
