package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/errors"
	"github.com/glintlabs/glint/internal/output"
	"github.com/glintlabs/glint/internal/sanitize"
	"github.com/glintlabs/glint/internal/ui"
	"github.com/glintlabs/glint/internal/util"
)

var (
	highlightTerm   string
	highlightFormat string
	highlightClass  string
	highlightWindow string
	highlightWatch  bool
)

// highlightCmd wraps every occurrence of a search term in highlight markup
var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Highlight a search term in text",
	Long: `Wrap every case-insensitive occurrence of a literal search term in
highlight markup. Reads the file argument, or stdin when omitted.

The term is matched literally: regex metacharacters have no special meaning.
HTML output wraps matches in spans carrying a CSS class, a mark role, an
accessible label, and an escaped data attribute. ANSI output styles matches
for the terminal.

With --watch, opens a live view where highlighting follows your typing
after a short quiescence delay.

Examples:
  glint highlight --term cat notes.txt
  cat notes.txt | glint highlight --term "a.b" --format html
  glint highlight --term cat --watch notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHighlight(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(highlightCmd)
	highlightCmd.Flags().StringVar(&highlightTerm, "term", "", "search term to highlight")
	highlightCmd.Flags().StringVar(&highlightFormat, "format", "", "output format: html, ansi, or auto")
	highlightCmd.Flags().StringVar(&highlightClass, "class", "", "CSS class for highlight spans (html format)")
	highlightCmd.Flags().StringVar(&highlightWindow, "window", "", "quiescence delay for --watch (e.g., 150ms)")
	highlightCmd.Flags().BoolVar(&highlightWatch, "watch", false, "open the live type-to-highlight view")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	class := highlightClass
	if class == "" {
		class = cfg.Highlight.Class
	}
	format := highlightFormat
	if format == "" {
		format = cfg.Highlight.Format
	}
	window := cfg.Highlight.Window
	if highlightWindow != "" {
		window, err = time.ParseDuration(highlightWindow)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("'%s' doesn't look like a valid window", highlightWindow),
				"Use a duration like 150ms")
		}
	}

	if highlightWatch {
		return runHighlightWatch(args, window)
	}

	sanitizer := sanitize.NewTerm()
	searchTerm := sanitizer.Sanitize(highlightTerm)

	in, cleanup, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer cleanup()

	formatter, err := newFormatter(format, searchTerm, class)
	if err != nil {
		return err
	}

	stats, err := output.Render(in, cmd.OutOrStdout(), formatter)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Failed while rendering input",
			"Check the input is readable text")
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d %s across %d %s\n",
		stats.Matches, util.Pluralize(stats.Matches, "match", "matches"),
		stats.Lines, util.Pluralize(stats.Lines, "line", "lines"))
	return nil
}

func runHighlightWatch(args []string, window time.Duration) error {
	if len(args) == 0 {
		return errors.New(errors.ErrInput,
			"--watch needs a file argument",
			"The live view reads keystrokes from the terminal, so content cannot come from stdin")
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Cannot read "+args[0],
			"Check the path is correct")
	}

	model := ui.NewLive(ui.LiveOptions{
		Content:   string(content),
		Window:    window,
		Sanitizer: sanitize.NewTerm(),
		Term:      highlightTerm,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Live view exited with an error",
			"")
	}
	return nil
}

// openInput returns the file argument opened for reading, or the command's
// stdin when no argument was given.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrInput,
			"Cannot read "+args[0],
			"Check the path is correct")
	}
	return f, func() { f.Close() }, nil
}
