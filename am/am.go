// Package am manages chordc's own configuration ("I am"): where the keyboard
// settings live, where generated files go, logging, and the watch loop.
//
// This is distinct from the keyboard settings file, which describes the
// keyboard itself and is handled by package settings.
package am

// Config represents the chordc tool configuration
type Config struct {
	Settings SettingsConfig `mapstructure:"settings" toml:"settings" yaml:"settings" json:"settings"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" yaml:"output" json:"output"`
	Log      LogConfig      `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
	Watch    WatchConfig    `mapstructure:"watch" toml:"watch" yaml:"watch" json:"watch"`

	// ConfigFile is the project chordc.toml the config was read from, if any.
	// Relative paths are resolved against its directory.
	ConfigFile string `mapstructure:"-" toml:"-" yaml:"-" json:"-"`
}

// SettingsConfig locates the keyboard settings file
type SettingsConfig struct {
	Path string `mapstructure:"path" toml:"path" yaml:"path" json:"path"` // settings TOML, kmap paths are relative to its directory
}

// OutputConfig controls where and how generated files are written
type OutputConfig struct {
	// Directory overrides options.output_directory when set.
	Directory string `mapstructure:"directory" toml:"directory" yaml:"directory" json:"directory"`
	// TutorDirectory overrides options.tutor_directory when set.
	TutorDirectory string `mapstructure:"tutor_directory" toml:"tutor_directory" yaml:"tutor_directory" json:"tutor_directory"`
	// FileBase is the base name of the generated files (default: auto_config).
	FileBase string `mapstructure:"file_base" toml:"file_base" yaml:"file_base" json:"file_base"`
	Banner   bool   `mapstructure:"banner" toml:"banner" yaml:"banner" json:"banner"` // prepend the generation banner (default: true)
	Tutor    bool   `mapstructure:"tutor" toml:"tutor" yaml:"tutor" json:"tutor"`     // export tutor data (default: true)
}

// LogConfig configures log output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme" json:"theme"` // Color theme: gruvbox, everforest
}

// WatchConfig configures `chordc watch`
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms"` // Quiet period before recompiling (0 = recompile on every event)
}

// ConfigFileName is the project config file searched for from the working
// directory upwards.
const ConfigFileName = "chordc.toml"

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
