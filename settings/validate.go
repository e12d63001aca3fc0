package settings

import (
	"strconv"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/types"
	"github.com/pipit-keyboard/chordc/version"
)

// Validate checks the settings for missing sections and out-of-range
// values. It does not check cross references between names; that is the
// model loader's job.
func (s *Settings) Validate() error {
	if err := version.CheckCompatibility(s.CompilerVersion); err != nil {
		return err
	}

	if err := s.Options.Validate(); err != nil {
		return errors.Wrap(err, "invalid [options]")
	}

	if len(s.Modes) == 0 {
		return errors.NewConfigError("missing required section: [modes]")
	}
	for name, mode := range s.Modes {
		if len(mode.Keymaps) == 0 {
			return errors.NewConfigError("mode %q has no keymaps", name)
		}
		for i, k := range mode.Keymaps {
			if k.File == "" {
				return errors.NewConfigError("mode %q keymap %d has no file", name, i)
			}
		}
	}

	if s.PlainKeys == nil {
		return errors.NewConfigError("missing required section: [plain_keys]")
	}

	for i, w := range s.Dictionary {
		if w.Word == "" {
			return errors.NewConfigError("dictionary entry %d has no word", i)
		}
		if err := w.AnagramNum().Validate(); err != nil {
			return errors.Wrapf(err, "dictionary entry %q", w.Word)
		}
	}

	seen := make(map[string]bool)
	for _, c := range s.Commands {
		if seen[c] {
			return errors.NewConfigError("command %q is listed twice", c)
		}
		seen[c] = true
	}

	return s.validateIdentifiers()
}

// validateIdentifiers checks the names that become C enum variants.
func (s *Settings) validateIdentifiers() error {
	check := func(kind string, names []string) error {
		for _, n := range names {
			if !isIdentifier(n) {
				return errors.WithHint(
					errors.NewConfigError("%s %q is not a valid identifier", kind, n),
					"use only ASCII letters, digits and underscores, and do not start with a digit")
			}
		}
		return nil
	}
	modes := make([]string, 0, len(s.Modes))
	for m := range s.Modes {
		modes = append(modes, m)
	}
	plainMods := make([]string, 0, len(s.PlainModifiers))
	for m := range s.PlainModifiers {
		plainMods = append(plainMods, m)
	}
	for _, c := range []struct {
		kind  string
		names []string
	}{
		{"command", s.Commands},
		{"mode", modes},
		{"word modifier", s.WordModifiers},
		{"anagram modifier", s.AnagramModifiers},
		{"plain modifier", plainMods},
	} {
		if err := check(c.kind, c.names); err != nil {
			return err
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// Validate checks the [options] table.
func (o *Options) Validate() error {
	if len(o.RowPins) == 0 {
		return errors.NewConfigError("row_pins cannot be empty")
	}
	if len(o.ColumnPins) == 0 {
		return errors.NewConfigError("column_pins cannot be empty")
	}
	if len(o.KmapFormat) == 0 {
		return errors.NewConfigError("kmap_format cannot be empty")
	}
	if o.RGBLedPins != nil && len(o.RGBLedPins) != 3 {
		return errors.NewConfigError("rgb_led_pins must list exactly 3 pins, got %d", len(o.RGBLedPins))
	}
	if o.OutputDirectory == "" {
		return errors.NewConfigError("output_directory cannot be empty")
	}
	if _, err := o.ChordSpec(); err != nil {
		return err
	}
	if n := o.NumBytesInChord(); n > 255 {
		return errors.NewOutOfRangeError("bytes per chord", n, 1, 255)
	}
	return nil
}

// KmapPaths lists the distinct kmap files of all modes, in sorted mode order
// and then declaration order.
func (s *Settings) KmapPaths() []types.KmapPath {
	var out []types.KmapPath
	seen := make(map[string]bool)
	for _, mode := range s.ModeNames() {
		for _, k := range s.Modes[string(mode)].Keymaps {
			if !seen[k.File] {
				seen[k.File] = true
				out = append(out, types.KmapPath(k.File))
			}
		}
	}
	return out
}

// ModeNames returns the mode names, sorted.
func (s *Settings) ModeNames() []types.ModeName {
	names := make([]types.Name, 0, len(s.Modes))
	for n := range s.Modes {
		names = append(names, types.Name(n))
	}
	return types.SortNames(names)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
