// Package output renders highlighted content for the non-interactive CLI
// path: lines are read from an input, each match of the search term is
// wrapped by the format's marker, and the result is streamed to a writer.
package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/highlight"
	"github.com/glintlabs/glint/internal/markup"
)

// Format names accepted by the CLI.
const (
	FormatHTML = "html"
	FormatANSI = "ansi"
	FormatAuto = "auto"
)

// Formatter processes content lines for display.
type Formatter interface {
	// Name returns the formatter identifier.
	Name() string

	// ProcessLine rewrites a single line, returning the rewritten text
	// and the number of matches it wrapped.
	ProcessLine(line string) (string, int)
}

// HTMLFormatter wraps matches in highlight spans for embedding in web pages.
type HTMLFormatter struct {
	rewriter *highlight.Rewriter
}

// NewHTMLFormatter creates an HTML formatter for the given term and CSS
// class. An empty class uses the package default.
func NewHTMLFormatter(term, class string) (*HTMLFormatter, error) {
	rewriter, err := highlight.NewRewriter(term, markup.NewHTMLMarker(class))
	if err != nil {
		return nil, err
	}
	return &HTMLFormatter{rewriter: rewriter}, nil
}

// Name returns "html".
func (f *HTMLFormatter) Name() string { return FormatHTML }

// ProcessLine wraps each match in a highlight span.
func (f *HTMLFormatter) ProcessLine(line string) (string, int) {
	return f.rewriter.Rewrite(line)
}

// ANSIFormatter styles matches for terminal display.
type ANSIFormatter struct {
	rewriter *highlight.Rewriter
}

// NewANSIFormatter creates a terminal formatter for the given term.
func NewANSIFormatter(term string) (*ANSIFormatter, error) {
	rewriter, err := highlight.NewRewriter(term, markup.NewANSIMarker())
	if err != nil {
		return nil, err
	}
	return &ANSIFormatter{rewriter: rewriter}, nil
}

// NewANSIFormatterWithStyle creates a terminal formatter with a custom
// match style.
func NewANSIFormatterWithStyle(term string, style lipgloss.Style) (*ANSIFormatter, error) {
	rewriter, err := highlight.NewRewriter(term, markup.NewANSIMarkerWithStyle(style))
	if err != nil {
		return nil, err
	}
	return &ANSIFormatter{rewriter: rewriter}, nil
}

// Name returns "ansi".
func (f *ANSIFormatter) Name() string { return FormatANSI }

// ProcessLine styles each match.
func (f *ANSIFormatter) ProcessLine(line string) (string, int) {
	return f.rewriter.Rewrite(line)
}
