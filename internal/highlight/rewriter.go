package highlight

import (
	"regexp"
	"strings"

	"github.com/glintlabs/glint/internal/markup"
)

// Rewriter applies a fixed term/marker pair repeatedly, compiling the
// pattern once. Useful for line-at-a-time rendering where Apply's per-call
// compilation would be wasteful.
type Rewriter struct {
	pattern *regexp.Regexp
	marker  markup.Marker
}

// NewRewriter compiles the case-insensitive literal pattern for term.
// An empty or whitespace-only term yields a passthrough rewriter.
func NewRewriter(term string, marker markup.Marker) (*Rewriter, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return &Rewriter{marker: marker}, nil
	}

	pattern, err := compileTerm(term)
	if err != nil {
		return nil, err
	}
	return &Rewriter{pattern: pattern, marker: marker}, nil
}

// Rewrite wraps every occurrence of the term in content and returns the
// rewritten text plus the match count.
func (r *Rewriter) Rewrite(content string) (string, int) {
	if r.pattern == nil {
		return content, 0
	}

	count := 0
	rewritten := r.pattern.ReplaceAllStringFunc(content, func(match string) string {
		count++
		return r.marker.Mark(match)
	})
	return rewritten, count
}
