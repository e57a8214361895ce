package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/errors"
)

var (
	initForce          bool
	initNonInteractive bool
)

// initCmd creates a new .glint.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .glint.yaml configuration",
	Long: `Initialize a new glint configuration file.

Creates a .glint.yaml file in the current directory. Interactive prompts
walk through the loader and highlight defaults; use --yes to skip prompts
and write the documented defaults.

Examples:
  glint init
  glint init --yes
  glint init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config without asking")
	initCmd.Flags().BoolVar(&initNonInteractive, "yes", false, "skip prompts and write defaults")
}

// initFile is the YAML shape written by init. The window is kept as a
// string so the file reads as "150ms" rather than nanoseconds.
type initFile struct {
	Version int `yaml:"version"`
	Loader  struct {
		Size    string `yaml:"size"`
		Color   string `yaml:"color"`
		Overlay bool   `yaml:"overlay"`
		Label   string `yaml:"label"`
	} `yaml:"loader"`
	Highlight struct {
		Class  string `yaml:"class"`
		Window string `yaml:"window"`
		Format string `yaml:"format"`
	} `yaml:"highlight"`
}

func runInit(cmd *cobra.Command) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !initForce {
		if initNonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			cmd.Println("Cancelled.")
			return nil
		}
	}

	defaults := config.DefaultConfig()
	size := defaults.Loader.Size
	color := defaults.Loader.Color
	label := defaults.Loader.Label
	class := defaults.Highlight.Class
	window := defaults.Highlight.Window.String()
	format := defaults.Highlight.Format

	if !initNonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Loader size").
					Description("small=16px, medium=24px, large=32px").
					Options(
						huh.NewOption("small", "small"),
						huh.NewOption("medium", "medium"),
						huh.NewOption("large", "large"),
					).
					Value(&size),
				huh.NewSelect[string]().
					Title("Loader color").
					Options(
						huh.NewOption("primary", "primary"),
						huh.NewOption("secondary", "secondary"),
						huh.NewOption("accent", "accent"),
					).
					Value(&color),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Highlight span class").
					Placeholder(class).
					Value(&class),
				huh.NewInput().
					Title("Quiescence window").
					Description("Delay between the last keystroke and the rewrite").
					Placeholder(window).
					Value(&window).
					Validate(func(s string) error {
						if s == "" {
							return nil
						}
						if _, err := time.ParseDuration(s); err != nil {
							return fmt.Errorf("use a duration like 150ms")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --yes to write defaults")
		}
		if window == "" {
			window = defaults.Highlight.Window.String()
		}
	}

	var file initFile
	file.Version = config.CurrentConfigVersion
	file.Loader.Size = size
	file.Loader.Color = color
	file.Loader.Label = label
	file.Highlight.Class = class
	file.Highlight.Window = window
	file.Highlight.Format = format

	data, err := yaml.Marshal(&file)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config",
			"")
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+configPath,
			"Check directory permissions")
	}

	cmd.Printf("Wrote %s\n", configPath)
	return nil
}
