package extract

import (
	"regexp"
	"strings"
)

var paragraphBoundary = regexp.MustCompile(`\n\s*\n`)

// SplitParagraphs splits text on blank-line boundaries, trims each
// segment and drops empty ones. When nothing survives the split, the
// whole text comes back as a single paragraph so no content is lost.
func SplitParagraphs(text string) []string {
	parts := paragraphBoundary.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}
	return out
}
