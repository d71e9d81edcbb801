package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text strips all markup from user supplied free text. Entities are decoded
// back to plain characters unless that would reintroduce angle brackets.
func Text(s string) string {
	cleaned := policy.Sanitize(s)
	if plain := html.UnescapeString(cleaned); !strings.ContainsAny(plain, "<>") {
		cleaned = plain
	}
	return strings.TrimSpace(cleaned)
}
