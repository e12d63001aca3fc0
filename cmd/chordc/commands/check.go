package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pipit-keyboard/chordc/firmware"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that generated files are up to date",
	Long: `Compile the keyboard settings in memory and compare the result with the
files in the output directory. The generation timestamp is ignored.

Exits with status 1 when any file is missing or differs, which makes it
suitable for CI and pre-commit hooks.

Examples:
  chordc check
  chordc check -s keyboard/settings.toml -o ../pipit-firmware/src`,
	RunE: runCheck,
}

func init() {
	addBuildFlags(CheckCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	b, err := runBuild(cfg, time.Now)
	if err != nil {
		return err
	}

	result, err := firmware.Compare(b.OutputDir, b.Files)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.UpToDate {
		pterm.Fprintln(out, pterm.Yellow("✗")+" Generated files are out of date in "+b.OutputDir+":")
		for _, d := range result.Differences {
			pterm.Fprintln(out, "  "+d)
		}
		pterm.Fprintln(out, "Run 'chordc compile' to regenerate.")
		return ErrStale
	}

	pterm.Fprintln(out, pterm.Green("✓")+" Generated files are up to date")
	return nil
}
