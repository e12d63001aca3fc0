package am

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pipit-keyboard/chordc/firmware"
)

// Defaults
const (
	DefaultSettingsPath = "settings.toml"
	DefaultDebounceMS   = 300
	DefaultLogTheme     = "everforest"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("settings.path", DefaultSettingsPath)

	// Empty directories defer to the keyboard settings file
	v.SetDefault("output.directory", "")
	v.SetDefault("output.tutor_directory", "")
	v.SetDefault("output.file_base", firmware.DefaultFileBase)
	v.SetDefault("output.banner", true)
	v.SetDefault("output.tutor", true)

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", DefaultLogTheme)

	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
}

// BindEnvVars binds the settings most often overridden in CI. The names
// match the CHORDC_* automatic binding; a variable named after a whole
// table (CHORDC_OUTPUT) would replace the table with a string.
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("settings.path", "CHORDC_SETTINGS_PATH")
	v.BindEnv("output.directory", "CHORDC_OUTPUT_DIRECTORY")
	v.BindEnv("log.theme", "CHORDC_LOG_THEME")
}

// ResolvePath resolves p against the directory of the project config file.
// Absolute paths and configs without a project file are returned unchanged.
func (c *Config) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.ConfigFile == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.ConfigFile), p)
}

// SettingsPath returns the resolved keyboard settings path
func (c *Config) SettingsPath() string {
	if c.Settings.Path == "" {
		return c.ResolvePath(DefaultSettingsPath)
	}
	return c.ResolvePath(c.Settings.Path)
}

// OutputDirectory returns the directory for generated firmware files. An
// override in the tool config wins; otherwise fromSettings, the
// options.output_directory of the keyboard settings, is taken relative to
// the settings file.
func (c *Config) OutputDirectory(fromSettings string) string {
	if c.Output.Directory != "" {
		return c.ResolvePath(c.Output.Directory)
	}
	return c.relativeToSettings(fromSettings)
}

// TutorDirectory is OutputDirectory for the tutor export.
func (c *Config) TutorDirectory(fromSettings string) string {
	if c.Output.TutorDirectory != "" {
		return c.ResolvePath(c.Output.TutorDirectory)
	}
	return c.relativeToSettings(fromSettings)
}

func (c *Config) relativeToSettings(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(c.SettingsPath()), p)
}

// FileBase returns the generated files' base name
func (c *Config) FileBase() string {
	if c.Output.FileBase == "" {
		return firmware.DefaultFileBase
	}
	return c.Output.FileBase
}

// LogTheme returns the log theme (default: everforest)
func (c *Config) LogTheme() string {
	if c.Log.Theme == "" {
		return DefaultLogTheme
	}
	return c.Log.Theme
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Settings: %s, Output: {Directory: %q, FileBase: %s}, Watch: {DebounceMS: %d}}",
		c.Settings.Path, c.Output.Directory, c.FileBase(), c.Watch.DebounceMS)
}
