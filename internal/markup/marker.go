// Package markup renders matched text fragments as highlighted output.
//
// A Marker wraps a single matched substring in presentation markup. Two
// implementations are provided: HTMLMarker emits a semantic span element for
// embedding in web pages, and ANSIMarker styles the match for terminal
// display using Lip Gloss.
package markup

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// DefaultClass is the CSS class applied to highlight spans when no class is
// configured.
const DefaultClass = "glint-highlight"

// Marker wraps a matched substring in output markup. Implementations must
// preserve the match text exactly (case included) inside the wrapper.
type Marker interface {
	Mark(match string) string
}

// HTMLMarker wraps matches in a span carrying a CSS class, a semantic mark
// role, an accessible label, and an escaped copy of the match as a data
// attribute.
type HTMLMarker struct {
	Class string
}

// NewHTMLMarker creates an HTML marker with the given CSS class.
// An empty class falls back to DefaultClass.
func NewHTMLMarker(class string) HTMLMarker {
	if class == "" {
		class = DefaultClass
	}
	return HTMLMarker{Class: class}
}

// Mark returns the match wrapped in a highlight span. The span text is the
// original match; the label and data attribute carry the escaped copy.
func (m HTMLMarker) Mark(match string) string {
	escaped := EscapeAttr(match)
	return fmt.Sprintf(`<span class="%s" role="mark" aria-label="%s" data-text="%s">%s</span>`,
		EscapeAttr(m.Class), escaped, escaped, match)
}

// ANSIMarker styles matches for terminal output.
type ANSIMarker struct {
	style lipgloss.Style
}

// NewANSIMarker creates a terminal marker with the default highlight style
// (black on yellow, the conventional search-match look).
func NewANSIMarker() ANSIMarker {
	return ANSIMarker{
		style: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
	}
}

// NewANSIMarkerWithStyle creates a terminal marker with a custom style.
func NewANSIMarkerWithStyle(style lipgloss.Style) ANSIMarker {
	return ANSIMarker{style: style}
}

// Mark renders the match with the marker's style.
func (m ANSIMarker) Mark(match string) string {
	return m.style.Render(match)
}
