package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag holds the --config persistent flag value.
var configFlag string

var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "Presentational text widgets for the terminal and the web",
	Long: `glint renders two small presentational building blocks:

  loader     - a loading indicator resolved from a size/color configuration,
               emitted as an embeddable HTML snippet or previewed in the
               terminal
  highlight  - search-term highlighting over text, with a debounced live
               view for keystroke-driven search

Configuration defaults come from .glint.yaml (see 'glint init').`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: .glint.yaml discovery)")
}
