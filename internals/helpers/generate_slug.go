package helper

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

const DefaultSlugMaxLen = 160

// GenerateSlug normalizes free text into a url-safe slug. Empty result means
// the input had no usable characters; callers decide the fallback.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > DefaultSlugMaxLen {
		s = strings.Trim(s[:DefaultSlugMaxLen], "-")
	}
	return s
}
