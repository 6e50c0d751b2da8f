package resumes

import "time"

// Paragraph is a blank-line-delimited unit of resume text. Order is its
// zero-based position, used for stable display and citation only.
type Paragraph struct {
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// Resume represents an uploaded resume document. Immutable after upload
// except for deletion.
type Resume struct {
	ID           string
	OriginalName string
	MimeType     string
	FullText     string
	Paragraphs   []Paragraph
	Email        string // first address found in FullText, "" when none
	UploadedAt   time.Time
}
