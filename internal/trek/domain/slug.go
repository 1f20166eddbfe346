package domain

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify turns a display name into a URL segment: lowercase, trimmed, with
// each whitespace run replaced by a single dash. Punctuation is kept.
func Slugify(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
