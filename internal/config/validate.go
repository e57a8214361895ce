package config

import (
	"fmt"
	"time"

	"github.com/glintlabs/glint/internal/errors"
)

// validFormats are the accepted highlight output formats.
var validFormats = map[string]bool{
	"html": true,
	"ansi": true,
	"auto": true,
}

// MaxWindow caps the quiescence delay. Anything longer makes the widget feel
// broken rather than debounced.
const MaxWindow = 5 * time.Second

// Validate checks the config for errors and returns structured error messages.
// Loader size and color are deliberately not rejected here: the resolver
// coerces unknown values to documented defaults with a diagnostic.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but glint only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Update glint or lower the version field in .glint.yaml")
	}

	if cfg.Highlight.Window < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("highlight.window cannot be negative (got %s)", cfg.Highlight.Window),
			"Use a duration like 150ms, or 0 for the default")
	}

	if cfg.Highlight.Window > MaxWindow {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("highlight.window %s is longer than the %s maximum", cfg.Highlight.Window, MaxWindow),
			"Use a short delay like 150ms; the window only coalesces keystrokes")
	}

	if cfg.Highlight.Format != "" && !validFormats[cfg.Highlight.Format] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown highlight.format %q", cfg.Highlight.Format),
			"Use one of: html, ansi, auto")
	}

	return nil
}
