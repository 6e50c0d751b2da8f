package llm

import (
	"context"
	"errors"
)

// Completer abstracts the optional language-model completion service
// used by the chat orchestrator.
type Completer interface {
	// Suggest proposes what the user might search for instead when the
	// question matched nothing in the resume.
	Suggest(ctx context.Context, question string) (string, error)
	// Answer responds to the question using only the provided resume
	// context, in plain text.
	Answer(ctx context.Context, contextText, question string) (string, error)
}

// ErrNotConfigured signals that no completion provider is set up.
// Callers degrade to verbatim-match answers; this is never a hard
// failure.
var ErrNotConfigured = errors.New("completion service not configured")

// Noop is the null-object Completer used when no provider is configured.
type Noop struct{}

func (Noop) Suggest(ctx context.Context, question string) (string, error) {
	return "", ErrNotConfigured
}

func (Noop) Answer(ctx context.Context, contextText, question string) (string, error) {
	return "", ErrNotConfigured
}

var _ Completer = Noop{}
