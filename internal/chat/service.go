package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"resume-chat-backend/internal/llm"
	"resume-chat-backend/internal/resumes"
	"resume-chat-backend/internal/search"
)

const (
	maxMatches       = 10
	perKeywordLimit  = 3
	citedMatches     = 5
	verbatimMatches  = 3
	minKeywordLength = 3 // keywords must be strictly longer
)

// Service answers natural-language questions about a stored resume.
// The completion service is optional; without it the answer degrades to
// the matched paragraphs verbatim.
type Service struct {
	Resumes   resumes.Repo
	Completer llm.Completer
	Log       *zap.Logger
}

// Ask runs the search-and-answer pipeline for one question.
func (s *Service) Ask(ctx context.Context, resumeID, question string) (Response, error) {
	res, err := s.Resumes.GetByID(ctx, resumeID)
	if err != nil {
		return Response{}, err
	}

	paragraphs := make([]search.Paragraph, len(res.Paragraphs))
	for i, p := range res.Paragraphs {
		paragraphs[i] = search.Paragraph{Text: p.Text, Order: p.Order}
	}
	index := search.New(paragraphs)

	matches := index.Search(question, maxMatches)
	if len(matches) == 0 {
		matches = keywordFallback(index, question)
	}

	var answer string
	if len(matches) == 0 {
		answer = s.suggestAnswer(ctx, question)
	} else {
		answer = s.matchedAnswer(ctx, question, matches)
	}

	cited := matches
	if len(cited) > citedMatches {
		cited = cited[:citedMatches]
	}
	if cited == nil {
		cited = []search.Match{}
	}

	return Response{
		Found:   len(matches) > 0,
		Answer:  answer,
		Matches: cited,
	}, nil
}

// keywordFallback widens the net: the question is re-tokenized into
// words longer than minKeywordLength and each keyword is searched on
// its own. Results are de-duplicated by exact text equality.
func keywordFallback(index *search.Index, question string) []search.Match {
	var all []search.Match
	for _, word := range strings.Fields(strings.ToLower(question)) {
		if len(word) > minKeywordLength {
			all = append(all, index.Search(word, perKeywordLimit)...)
		}
	}

	seen := make(map[string]struct{}, len(all))
	deduped := all[:0]
	for _, m := range all {
		if _, ok := seen[m.Text]; ok {
			continue
		}
		seen[m.Text] = struct{}{}
		deduped = append(deduped, m)
	}

	sort.SliceStable(deduped, func(i, j int) bool { return deduped[i].Score < deduped[j].Score })
	if len(deduped) > maxMatches {
		deduped = deduped[:maxMatches]
	}
	return deduped
}

func (s *Service) suggestAnswer(ctx context.Context, question string) string {
	suggestion, err := s.Completer.Suggest(ctx, question)
	switch {
	case err == nil:
		return fmt.Sprintf("I couldn't find information about %q. %s", question, suggestion)
	case errors.Is(err, llm.ErrNotConfigured):
		return fmt.Sprintf("I couldn't find information about %q. Try searching for specific skills or technologies.", question)
	default:
		s.logger().Warn("completion suggest failed", zap.Error(err))
		return fmt.Sprintf("I couldn't find information about %q. Try searching for specific skills or technologies mentioned in the resume.", question)
	}
}

func (s *Service) matchedAnswer(ctx context.Context, question string, matches []search.Match) string {
	contextText := joinMatchTexts(matches, len(matches), "\n\n")

	answer, err := s.Completer.Answer(ctx, contextText, question)
	switch {
	case err == nil:
		return answer
	case errors.Is(err, llm.ErrNotConfigured):
		return "Relevant information: " + joinMatchTexts(matches, verbatimMatches, " ")
	default:
		s.logger().Warn("completion answer failed", zap.Error(err))
		return "Based on the resume: " + joinMatchTexts(matches, verbatimMatches, " ")
	}
}

func joinMatchTexts(matches []search.Match, limit int, sep string) string {
	if len(matches) > limit {
		matches = matches[:limit]
	}
	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = m.Text
	}
	return strings.Join(texts, sep)
}

func (s *Service) logger() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}
