// Package cli implements the glint command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the widget packages for the actual work:
//
//	glint highlight [file]  - Wrap a search term in highlight markup
//	glint loader            - Render the loading-indicator widget
//	glint init              - Create .glint.yaml config
//	glint version           - Print version information
//
// # Output Formats
//
// highlight and loader produce embeddable HTML by default when stdout
// is piped, and terminal-styled output when stdout is a TTY. The
// --format flag (html, ansi, auto) overrides the detection; see
// ResolveFormat.
//
// # Configuration
//
// Commands read defaults from .glint.yaml, discovered by walking up
// from the working directory (see internal/config). Flags override
// config values, which override the built-in defaults.
//
// # Live View
//
// highlight --watch runs a Bubble Tea program (internal/ui) where the
// highlight follows the user's typing after a quiescence delay. The
// one-shot path shares the same rewriting code via internal/output.
package cli
