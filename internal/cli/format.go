package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/glintlabs/glint/internal/errors"
	"github.com/glintlabs/glint/internal/output"
)

// ResolveFormat maps a requested format to a concrete renderer name. The
// "auto" format (and an empty value) picks ANSI when stdout is a terminal
// and HTML otherwise, so piping into a file yields embeddable markup.
func ResolveFormat(format string) (string, error) {
	switch format {
	case "", output.FormatAuto:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return output.FormatANSI, nil
		}
		return output.FormatHTML, nil
	case output.FormatHTML, output.FormatANSI:
		return format, nil
	default:
		return "", errors.New(errors.ErrRender,
			fmt.Sprintf("Unknown output format %q", format),
			"Use one of: html, ansi, auto")
	}
}

// newFormatter builds the renderer for a resolved format.
func newFormatter(format, searchTerm, class string) (output.Formatter, error) {
	resolved, err := ResolveFormat(format)
	if err != nil {
		return nil, err
	}

	switch resolved {
	case output.FormatHTML:
		f, err := output.NewHTMLFormatter(searchTerm, class)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrHighlight,
				"Cannot build highlighter for term "+searchTerm,
				"")
		}
		return f, nil
	default:
		f, err := output.NewANSIFormatter(searchTerm)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrHighlight,
				"Cannot build highlighter for term "+searchTerm,
				"")
		}
		return f, nil
	}
}
