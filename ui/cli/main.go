// Copyright (c) 2026 Gridpick Team
// Gridpick - interactive terminal grid selector
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Gridpick using the Cobra
// library: the root command, its flags, configuration loading, and the
// handoff to the TUI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridpick/gridpick/internal/config"
	"github.com/gridpick/gridpick/internal/i18n"
	"github.com/gridpick/gridpick/internal/logging"
	"github.com/gridpick/gridpick/internal/theme"
	"github.com/gridpick/gridpick/internal/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string

var appConfig config.Config

// configDefaults are the baseline values used when neither config file,
// environment, nor flags say otherwise.
var configDefaults = map[string]any{
	"palette":  theme.DefaultName,
	"language": "en",
	"debug":    false,
	"log_file": "",
}

// setupDefaultServices loads the configuration and initializes i18n and
// logging. It runs before any command body.
func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	var optionalConfigPath *string
	if cfgFile != "" {
		optionalConfigPath = &cfgFile
	}

	var err error
	appConfig, err = config.LoadConfig[config.Config](cmd, configDefaults, optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Fall back to defaults for critical values the user left empty.
	if appConfig.Palette == "" {
		appConfig.Palette = configDefaults["palette"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = configDefaults["language"].(string)
	}

	// First run: persist the effective defaults so users have a file to
	// edit. Failure to write is not fatal, the app runs on defaults.
	if userPath, pathErr := config.GetConfigPath(false); pathErr == nil {
		if _, statErr := os.Stat(userPath); os.IsNotExist(statErr) && cfgFile == "" {
			if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
				logging.Warnf("could not write default config file: %v", writeErr)
			}
		}
	}

	i18n.Init(appConfig.Language)

	logging.SetDebug(appConfig.Debug)
	if appConfig.LogFile != "" {
		if _, err := logging.OpenLogFile(appConfig.LogFile); err != nil {
			return err
		}
	}

	return nil
}

// resolveBuildVersion composes the version string shown by --version from
// the linker-injected variables.
func resolveBuildVersion() string {
	composite := version
	if gitCommit != "" && gitCommit != "dev" {
		composite = composite + " (" + gitCommit + ")"
	}
	if buildDate != "" {
		composite = composite + " built: " + buildDate
	}
	return composite
}

// NewRootCmd builds the root command. Running it without a subcommand
// launches the TUI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridpick",
		Short: "Gridpick is a keyboard-driven grid selector for your terminal.",
		Long: `Gridpick displays a 3x3 board and moves a selection cursor over it
with wasd or the arrow keys. The selected row, column, and cell are
highlighted; the cursor wraps around at the board edges.`,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := theme.ByName(appConfig.Palette)
			if err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("gridpick needs an interactive terminal")
			}
			logging.Debugf("starting TUI with palette %q, language %q", palette.Name, i18n.GetLang())
			return tui.Run(palette)
		},
		SilenceUsage: true,
	}

	cmd.Version = resolveBuildVersion()

	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("palette", theme.DefaultName, fmt.Sprintf("Color palette (%v)", theme.Names()))
	cmd.PersistentFlags().String("lang", "en", `TUI language ("en", "de")`)
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
