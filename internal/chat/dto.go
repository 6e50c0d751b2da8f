package chat

import "resume-chat-backend/internal/search"

// Request is the chat request body.
type Request struct {
	ResumeID string `json:"resumeId"`
	Question string `json:"question"`
}

// Response is the chat response. Matches carries up to five raw hits
// for client-side citation.
type Response struct {
	Found   bool           `json:"found"`
	Answer  string         `json:"answer"`
	Matches []search.Match `json:"matches"`
}
