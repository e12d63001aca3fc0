package am

import (
	"slices"
	"strings"

	"github.com/pipit-keyboard/chordc/errors"
)

var knownThemes = []string{"everforest", "gruvbox"}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Settings path: empty falls back to DefaultSettingsPath, see SettingsPath

	// File base names a file inside the output directory, not a path
	if strings.ContainsAny(c.Output.FileBase, `/\`) {
		return errors.NewConfigError("output.file_base must be a file name, got %q", c.Output.FileBase)
	}
	if c.Output.FileBase != "" && strings.HasPrefix(c.Output.FileBase, ".") {
		return errors.NewConfigError("output.file_base cannot start with '.', got %q", c.Output.FileBase)
	}

	// Watch debounce: 0 = recompile on every event, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.NewConfigError("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	if c.Log.Theme != "" && !slices.Contains(knownThemes, c.Log.Theme) {
		return errors.WithHintf(
			errors.NewConfigError("log.theme %q is not a known theme", c.Log.Theme),
			"use one of: %s", strings.Join(knownThemes, ", "))
	}

	return nil
}
