// Package sanitize normalizes untrusted search terms before they are used
// for matching. Terms typically arrive from user input fields, so any markup
// is stripped and whitespace is collapsed to a single space.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Term normalizes raw search terms using a strict bluemonday policy.
// The zero value is not usable; construct with NewTerm.
type Term struct {
	policy *bluemonday.Policy
}

// NewTerm creates a term sanitizer that strips all HTML elements.
func NewTerm() *Term {
	return &Term{policy: bluemonday.StrictPolicy()}
}

// Sanitize strips markup from a raw term and collapses runs of whitespace.
// The result is plain text suitable for literal matching: entities produced
// by the policy are decoded back so a term like "fish & chips" matches the
// literal content, not its escaped form.
func (t *Term) Sanitize(raw string) string {
	clean := t.policy.Sanitize(raw)
	clean = html.UnescapeString(clean)
	return strings.Join(strings.Fields(clean), " ")
}
