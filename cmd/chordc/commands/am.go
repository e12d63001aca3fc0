package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pipit-keyboard/chordc/am"
	"github.com/pipit-keyboard/chordc/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage chordc configuration",
	Long: `am: Manage chordc configuration ("I am")

Display and manage how chordc runs: where the keyboard settings are, where
generated files go, logging and the watch loop. The keyboard itself is
described by the settings file, not here.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (CHORDC_* prefix)
3. Project config (chordc.toml, searched upwards from the working directory)
4. User config (~/.config/chordc/chordc.toml)
5. Default values

Examples:
  chordc am show                    # Show current configuration
  chordc am show --format json      # Show configuration in JSON format
  chordc am get output.directory    # Get specific config value
  chordc am set watch.debounce_ms 100
  chordc am validate                # Validate current configuration
  chordc am init                    # Write a default chordc.toml here`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current chordc configuration from all sources",
	RunE:  runAmShow,
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., settings.path, watch.debounce_ms)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmGet,
}

var amSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the project config",
	Long: `Set a configuration value in the project chordc.toml, or in ./chordc.toml
when no project config exists. The previous file is kept as .back1.`,
	Args: cobra.ExactArgs(2),
	RunE: runAmSet,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate that the current chordc configuration is valid",
	RunE:  runAmValidate,
}

var amInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default chordc.toml",
	Long:  "Write a commented default chordc.toml to path (default: ./chordc.toml)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAmInit,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long:  "Show every setting together with the file or environment variable it came from",
	RunE:  runAmWhere,
}

func init() {
	amShowCmd.Flags().String("format", "toml", "Output format: toml, json, yaml")
	amInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	// Values such as -5 are arguments, not shorthand flags
	amSetCmd.Flags().SetInterspersed(false)

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amSetCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amInitCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# chordc configuration\n%s", data)

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# chordc configuration\n%s", data)

	default:
		return errors.NewConfigError("unsupported format: %s (supported: toml, json, yaml)", format)
	}

	return nil
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	if !am.GetViper().IsSet(key) {
		return errors.NewLookupError(key, "configuration")
	}
	fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
	return nil
}

func runAmSet(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	path := cfg.ConfigFile
	if path == "" {
		path = am.ConfigFileName
	}

	if err := am.SetValue(path, args[0], parseValue(args[1])); err != nil {
		return err
	}
	am.Reset()

	reloaded, err := am.LoadFromFile(path)
	if err != nil {
		return err
	}
	if err := reloaded.Validate(); err != nil {
		return errors.WithHintf(err, "the previous %s was kept as %s.back1", filepath.Base(path), filepath.Base(path))
	}
	pterm.Fprintln(cmd.OutOrStdout(), pterm.Green("✓")+" Set "+args[0]+" in "+path)
	return nil
}

// parseValue keeps TOML types for booleans and integers
func parseValue(s string) interface{} {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	if _, err := os.Stat(cfg.SettingsPath()); err != nil {
		return errors.WithHint(
			errors.NewNotFoundError("settings file %s does not exist", cfg.SettingsPath()),
			"set settings.path in chordc.toml or pass --settings")
	}

	pterm.Fprintln(cmd.OutOrStdout(), pterm.Green("✓")+" Configuration is valid")
	return nil
}

func runAmInit(cmd *cobra.Command, args []string) error {
	path := am.ConfigFileName
	if len(args) == 1 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if err := am.WriteDefault(path, force); err != nil {
		return err
	}
	pterm.Fprintln(cmd.OutOrStdout(), pterm.Green("✓")+" Wrote "+path)
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	intro, err := am.GetConfigIntrospection()
	if err != nil {
		return errors.Wrap(err, "failed to get config introspection")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	fmt.Fprintf(out, "  2. [USER]     %s\n", am.UserConfigPath())
	fmt.Fprintln(out, "  3. [PROJECT]  chordc.toml (searches up directories)")
	fmt.Fprintln(out, "  4. [ENV]      CHORDC_* environment variables")
	fmt.Fprintln(out)

	if intro.ConfigFile != "" {
		fmt.Fprintf(out, "Project config: %s\n\n", intro.ConfigFile)
	}

	data := [][]string{{"Key", "Value", "Source"}}
	for _, s := range intro.Settings {
		source := string(s.Source)
		if s.Source != am.SourceDefault {
			source += " (" + s.SourcePath + ")"
		}
		data = append(data, []string{s.Key, fmt.Sprint(s.Value), source})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	fmt.Fprintln(out, table)
	return nil
}
