// Package search provides an ephemeral fuzzy index over a resume's
// paragraphs. The index is rebuilt for every query; nothing persists.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// scoreThreshold admits moderately dissimilar strings. Tunable,
	// not a contract.
	scoreThreshold = 0.6
	minTokenLength = 3
)

// Paragraph is an indexed unit of resume text.
type Paragraph struct {
	Text  string
	Order int
}

// Match is a scored search hit. Lower score = better match.
type Match struct {
	Text  string  `json:"text"`
	Order int     `json:"order"`
	Score float64 `json:"score"`
}

// Index holds the paragraphs of a single resume for the duration of one
// request.
type Index struct {
	paragraphs []indexed
}

type indexed struct {
	paragraph Paragraph
	lower     string
	tokens    []string
}

// New builds an index over the given paragraphs.
func New(paragraphs []Paragraph) *Index {
	ix := &Index{paragraphs: make([]indexed, 0, len(paragraphs))}
	for _, p := range paragraphs {
		lower := strings.ToLower(p.Text)
		ix.paragraphs = append(ix.paragraphs, indexed{
			paragraph: p,
			lower:     lower,
			tokens:    tokenize(lower),
		})
	}
	return ix
}

// Search returns up to limit paragraphs matching the query, ranked
// ascending by score. An empty query or empty index yields no results,
// never an error.
func (ix *Index) Search(query string, limit int) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(ix.paragraphs) == 0 {
		return nil
	}
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var out []Match
	for _, entry := range ix.paragraphs {
		score, ok := entry.score(tokens)
		if !ok {
			continue
		}
		out = append(out, Match{
			Text:  entry.paragraph.Text,
			Order: entry.paragraph.Order,
			Score: score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// score averages each query token's best dissimilarity against the
// paragraph. Matching is location-agnostic: a token contained anywhere
// in the paragraph scores 0; otherwise the better of token-level
// Levenshtein distance (typo'd words) and approximate substring
// alignment (matches spanning whitespace or punctuation) is used.
func (e indexed) score(queryTokens []string) (float64, bool) {
	if len(e.tokens) == 0 {
		return 0, false
	}
	var total float64
	for _, qt := range queryTokens {
		total += e.tokenScore(qt)
	}
	avg := total / float64(len(queryTokens))
	if avg > scoreThreshold {
		return 0, false
	}
	return avg, true
}

func (e indexed) tokenScore(qt string) float64 {
	if strings.Contains(e.lower, qt) {
		return 0
	}
	qlen := len([]rune(qt))

	best := float64(substringDistance(qt, e.lower)) / float64(qlen)
	for _, pt := range e.tokens {
		max := qlen
		if plen := len([]rune(pt)); plen > max {
			max = plen
		}
		if d := float64(fuzzy.LevenshteinDistance(qt, pt)) / float64(max); d < best {
			best = d
		}
	}
	if best > 1 {
		best = 1
	}
	return best
}

// substringDistance returns the minimum edit distance between the
// pattern and any substring of text (Sellers algorithm: a match may
// begin and end anywhere).
func substringDistance(pattern, text string) int {
	p := []rune(pattern)
	t := []rune(text)
	if len(p) == 0 {
		return 0
	}
	if len(t) == 0 {
		return len(p)
	}

	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for i := 1; i <= len(p); i++ {
		curr[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if p[i-1] == t[j-1] {
				cost = 0
			}
			curr[j] = prev[j-1] + cost
			if v := prev[j] + 1; v < curr[j] {
				curr[j] = v
			}
			if v := curr[j-1] + 1; v < curr[j] {
				curr[j] = v
			}
		}
		prev, curr = curr, prev
	}

	best := prev[0]
	for _, v := range prev {
		if v < best {
			best = v
		}
	}
	return best
}

func tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= minTokenLength {
			out = append(out, f)
		}
	}
	return out
}
