// Package htmlsanitize strips dangerous markup from rich-text input before
// it is persisted. Bootcamp and course descriptions accept limited HTML from
// untrusted publishers; everything else (scripts, iframes, event handlers,
// javascript: URLs) is removed.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy is built once. bluemonday policies are safe for concurrent use.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// Rich-text editors emit these beyond the UGC defaults.
	p.AllowElements("u", "s", "sub", "sup", "mark")

	// Tables, with the structural attributes editors produce.
	p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td")

	return p
}

// Sanitize returns input with disallowed markup removed. Plain text passes
// through unchanged.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return policy.Sanitize(input)
}

// IsPlainText reports whether input contains no HTML tags at all.
func IsPlainText(input string) bool {
	return !strings.ContainsAny(input, "<>")
}
