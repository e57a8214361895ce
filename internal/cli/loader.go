package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/errors"
	"github.com/glintlabs/glint/internal/loader"
)

var (
	loaderSize    string
	loaderColor   string
	loaderOverlay bool
	loaderLabel   string
	loaderPreview bool
)

// loaderCmd renders the loading-indicator widget
var loaderCmd = &cobra.Command{
	Use:   "loader",
	Short: "Render the loading-indicator widget",
	Long: `Emit an embeddable HTML loading indicator for the requested size and
color. Unrecognized values fall back to the documented defaults (medium,
primary) with a warning.

Sizes resolve to 16/24/32 pixels; colors resolve to the palette hex values.

With --preview, animates the loader in the terminal instead.

Examples:
  glint loader --size large --color accent
  glint loader --overlay --label "Fetching results"
  glint loader --size small --preview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoader(cmd)
	},
}

func init() {
	rootCmd.AddCommand(loaderCmd)
	loaderCmd.Flags().StringVar(&loaderSize, "size", "", "indicator size: small, medium, or large")
	loaderCmd.Flags().StringVar(&loaderColor, "color", "", "palette entry: primary, secondary, or accent")
	loaderCmd.Flags().BoolVar(&loaderOverlay, "overlay", false, "wrap the loader in a page overlay")
	loaderCmd.Flags().StringVar(&loaderLabel, "label", "", "accessible label for the widget")
	loaderCmd.Flags().BoolVar(&loaderPreview, "preview", false, "animate the loader in the terminal")
}

func runLoader(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	opts := loader.Options{
		Size:    pick(loaderSize, cfg.Loader.Size),
		Color:   pick(loaderColor, cfg.Loader.Color),
		Overlay: loaderOverlay || cfg.Loader.Overlay,
		Label:   pick(loaderLabel, cfg.Loader.Label),
	}
	resolver := loader.New(opts)

	if loaderPreview {
		p := tea.NewProgram(loader.NewPreview(resolver))
		if _, err := p.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender,
				"Loader preview exited with an error",
				"")
		}
		return nil
	}

	cmd.Println(resolver.HTML())
	return nil
}

// pick returns the flag value when set, otherwise the config default.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
