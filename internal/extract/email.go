package extract

import "regexp"

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// FirstEmail returns the first RFC-shaped address found in text, or ""
// when there is none. Best effort, not validated for deliverability.
func FirstEmail(text string) string {
	return emailPattern.FindString(text)
}
