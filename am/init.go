package am

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/firmware"
)

// DefaultConfig returns the configuration SetDefaults describes
func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{Path: DefaultSettingsPath},
		Output: OutputConfig{
			FileBase: firmware.DefaultFileBase,
			Banner:   true,
			Tutor:    true,
		},
		Log:   LogConfig{Theme: DefaultLogTheme},
		Watch: WatchConfig{DebounceMS: DefaultDebounceMS},
	}
}

const defaultHeader = `# chordc configuration
#
# Paths are relative to this file. Empty output directories defer to
# options.output_directory and options.tutor_directory in the keyboard
# settings. Every key can be overridden with a CHORDC_ environment
# variable, e.g. CHORDC_WATCH_DEBOUNCE_MS=100.

`

// WriteDefault writes a commented default config to path. An existing file
// is only replaced when force is set, and then kept as a backup.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(
			errors.NewConfigError("%s already exists", path),
			"pass --force to overwrite it")
	}

	var buf bytes.Buffer
	buf.WriteString(defaultHeader)
	if err := toml.NewEncoder(&buf).Encode(DefaultConfig()); err != nil {
		return errors.Wrap(err, "failed to encode default config")
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}
	if err := os.WriteFile(path, buf.Bytes(), DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
