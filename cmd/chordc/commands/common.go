package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pipit-keyboard/chordc/am"
	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/logger"
)

// ErrStale is returned by check when generated files are out of date. It
// has already been reported; main only sets the exit status.
var ErrStale = errors.New("generated files are out of date")

// addBuildFlags adds the flags shared by compile, check and watch
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("settings", "s", "", "Keyboard settings file (default: settings.path from chordc.toml)")
	cmd.Flags().StringP("output", "o", "", "Output directory (default: options.output_directory)")
	cmd.Flags().Bool("no-banner", false, "Omit the generation banner")
	cmd.Flags().Bool("no-tutor", false, "Skip the tutor export")
}

// loadConfig loads the tool config and applies the build flags on top.
// Flags take precedence over every config source.
func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	loaded, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := loaded.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	// Copy so repeated watch builds start from the loaded config
	cfg := *loaded
	flags := cmd.Flags()
	// Paths given on the command line are relative to the working
	// directory, not chordc.toml
	if p, _ := flags.GetString("settings"); p != "" {
		cfg.Settings.Path = absPath(p)
	}
	if p, _ := flags.GetString("output"); p != "" {
		cfg.Output.Directory = absPath(p)
	}
	if off, _ := flags.GetBool("no-banner"); off {
		cfg.Output.Banner = false
	}
	if off, _ := flags.GetBool("no-tutor"); off {
		cfg.Output.Tutor = false
	}

	if logger.ShouldOutput(verbosity(cmd), logger.OutputConfig) {
		logger.Debugw("Using configuration", "config", cfg.String(), logger.FieldFile, cfg.ConfigFile)
	}
	return &cfg, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// verbosity returns the -v count
func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}

// PrintError writes err to w. Internal errors are compiler defects and get
// no remediation hints.
func PrintError(w io.Writer, err error) {
	if errors.IsInternal(err) {
		pterm.Fprintln(w, pterm.Red("internal error: ")+err.Error())
		pterm.Fprintln(w, "This is a bug in chordc. Please report it with the output of -vvvv.")
		return
	}
	pterm.Fprintln(w, pterm.Red("error: ")+err.Error())
	if hint := errors.FlattenHints(err); hint != "" {
		pterm.Fprintln(w, pterm.Yellow("hint: ")+hint)
	}
	if logger.JSONOutput {
		logger.Errorw("Command failed", logger.FieldError, fmt.Sprintf("%+v", err))
	}
}
