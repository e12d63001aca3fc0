package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pipit-keyboard/chordc/am"
	"github.com/pipit-keyboard/chordc/cmd/chordc/commands"
	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/logger"
)

var rootCmd = &cobra.Command{
	Use:   "chordc",
	Short: "chordc - Chorded keyboard layout compiler",
	Long: `chordc - Compile chorded keyboard layouts into firmware configuration.

chordc reads a keyboard settings file and its kmap files, checks the chords
for conflicts, and generates the C++ configuration for the firmware plus
the chord list for the typing tutor.

Available commands:
  compile - Generate firmware configuration and tutor data
  check   - Verify generated files are up to date
  watch   - Recompile on every change
  am      - Manage chordc configuration ("I am")
  version - Show version information

Examples:
  chordc compile               # Compile using chordc.toml
  chordc check                 # Fail if generated files are stale
  chordc watch -v              # Recompile on change, with progress
  chordc am show               # Show current configuration`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")

		// Config errors surface in the command itself; here they only
		// mean the log settings fall back to defaults
		if cfg, err := am.Load(); err == nil {
			jsonLogs = jsonLogs || cfg.Log.JSON
			logger.SetTheme(cfg.LogTheme())
		}

		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	rootCmd.AddCommand(commands.CompileCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		if !errors.Is(err, commands.ErrStale) {
			commands.PrintError(os.Stderr, err)
		}
		os.Exit(1)
	}
}
