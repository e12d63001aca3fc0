package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pipit-keyboard/chordc/logger"
)

// CompileCmd represents the compile command
var CompileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile keyboard settings into firmware configuration",
	Long: `Compile the keyboard settings and kmap files into the C++ configuration
consumed by the firmware build, and export the chord list for the typing tutor.

Chord conflicts and unused names found while compiling are reported on
stderr; they do not fail the build.

Examples:
  chordc compile                          # Use settings.path from chordc.toml
  chordc compile -s keyboard/settings.toml
  chordc compile -o ../pipit-firmware/src # Override the output directory`,
	RunE: runCompile,
}

func init() {
	addBuildFlags(CompileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	b, err := runBuild(cfg, time.Now)
	if err != nil {
		return err
	}

	b.Report.Print(cmd.ErrOrStderr())

	paths, err := b.write()
	if err != nil {
		return err
	}

	v := verbosity(cmd)
	if logger.ShouldOutput(v, logger.OutputFilesWritten) {
		for _, p := range paths {
			pterm.Fprintln(cmd.OutOrStdout(), "  "+p)
		}
	}
	pterm.Fprintln(cmd.OutOrStdout(), pterm.Green("✓")+" Compiled "+b.OutputDir)
	return nil
}
