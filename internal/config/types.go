package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .glint.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Loader    LoaderConfig    `yaml:"loader" mapstructure:"loader"`
	Highlight HighlightConfig `yaml:"highlight" mapstructure:"highlight"`
}

// LoaderConfig holds the loader widget defaults.
type LoaderConfig struct {
	// Size of the indicator: small, medium, or large.
	Size string `yaml:"size" mapstructure:"size"`

	// Color palette entry: primary, secondary, or accent.
	Color string `yaml:"color" mapstructure:"color"`

	// Overlay renders the loader inside a page overlay.
	Overlay bool `yaml:"overlay" mapstructure:"overlay"`

	// Label is the accessible label announced for the widget.
	Label string `yaml:"label" mapstructure:"label"`
}

// HighlightConfig holds the highlight behavior defaults.
type HighlightConfig struct {
	// Class is the CSS class applied to highlight spans.
	Class string `yaml:"class" mapstructure:"class"`

	// Window is the quiescence delay between the last term update and
	// the rewrite.
	Window time.Duration `yaml:"window" mapstructure:"window"`

	// Format selects the output rendering: html, ansi, or auto.
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns a config populated with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Loader: LoaderConfig{
			Size:  "medium",
			Color: "primary",
			Label: "Loading",
		},
		Highlight: HighlightConfig{
			Class:  "glint-highlight",
			Window: 150 * time.Millisecond,
			Format: "auto",
		},
	}
}
