package resumes

import "time"

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	ResumeID     string    `json:"resumeId"`
	OriginalName string    `json:"originalName"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// InfoResponse is the outward-facing representation of a stored resume.
type InfoResponse struct {
	ResumeID       string    `json:"resumeId"`
	OriginalName   string    `json:"originalName"`
	UploadedAt     time.Time `json:"uploadedAt"`
	ParagraphCount int       `json:"paragraphCount"`
	Email          *string   `json:"email"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message  string `json:"message"`
	ResumeID string `json:"resumeId"`
}

func toInfo(r Resume) InfoResponse {
	var email *string
	if r.Email != "" {
		email = &r.Email
	}
	return InfoResponse{
		ResumeID:       r.ID,
		OriginalName:   r.OriginalName,
		UploadedAt:     r.UploadedAt,
		ParagraphCount: len(r.Paragraphs),
		Email:          email,
	}
}
