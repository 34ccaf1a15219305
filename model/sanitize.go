package model

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Titles are plain text; bodies may carry user-generated markup.
var (
	titlePolicy = bluemonday.StrictPolicy()
	textPolicy  = bluemonday.UGCPolicy()
)

// SanitizeTitle strips all markup from a title.
func SanitizeTitle(s string) string {
	return strings.TrimSpace(titlePolicy.Sanitize(s))
}

// SanitizeText removes unsafe markup from a body text.
func SanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}

func sanitizeOptional(s *string, sanitize func(string) string) *string {
	if s == nil {
		return nil
	}
	clean := sanitize(*s)
	return &clean
}
