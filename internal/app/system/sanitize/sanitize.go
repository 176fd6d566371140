// Package sanitize strips markup from free-text input before storage.
//
// Stored text (descriptions, eligibility, notes) is rendered as plain text
// by clients, so the strict policy removes every element and attribute.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from s and returns the trimmed plain text.
// Entity-escaped characters are unescaped so that "a < b" survives a
// sanitize round trip.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
