// Package settings defines the keyboard settings file: matrix pins, timing,
// modes and their kmap files, keys, macros, modifiers, commands and the word
// dictionary.
//
// Settings are TOML. Unknown fields are rejected so that typos surface as
// errors instead of silently ignored options.
package settings

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/pelletier/go-toml/v2"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/types"
)

// Settings is the whole settings file.
type Settings struct {
	// CompilerVersion optionally constrains which chordc releases may
	// compile this file, e.g. ">= 1.2".
	CompilerVersion string `toml:"compiler_version"`

	WordModifiers    []string `toml:"word_modifiers"`
	AnagramModifiers []string `toml:"anagram_modifiers"`
	Commands         []string `toml:"commands"`

	Options        Options             `toml:"options"`
	Modes          map[string]ModeInfo `toml:"modes"`
	PlainKeys      map[string]string   `toml:"plain_keys"`
	PlainModifiers map[string]string   `toml:"plain_modifiers"`
	Macros         map[string][]string `toml:"macros"`
	Dictionary     []WordConfig        `toml:"dictionary"`
}

// ModeInfo lists the kmap files of a mode, in lookup order.
type ModeInfo struct {
	Keymaps []KmapInfo `toml:"keymaps"`
}

// KmapInfo is one kmap file of a mode.
type KmapInfo struct {
	File     string `toml:"file"`
	UseWords bool   `toml:"use_words"`
}

// WordConfig is one dictionary entry. Chord is an alternate spelling used
// to build the chord; it defaults to Word.
type WordConfig struct {
	Word    string            `toml:"word"`
	Chord   string            `toml:"chord,omitempty"`
	Anagram *types.AnagramNum `toml:"anagram,omitempty"`
}

// ChordSpelling returns the letters whose chords make up the word's chord.
func (w WordConfig) ChordSpelling() string {
	if w.Chord != "" {
		return w.Chord
	}
	return w.Word
}

// HasAlternateChord reports whether the chord is spelled differently from
// the word.
func (w WordConfig) HasAlternateChord() bool {
	return w.Chord != ""
}

// AnagramNum returns the configured anagram number, defaulting to zero.
func (w WordConfig) AnagramNum() types.AnagramNum {
	if w.Anagram == nil {
		return 0
	}
	return *w.Anagram
}

// Parse decodes settings from r, rejecting unknown fields, and validates
// them.
func Parse(r io.Reader) (*Settings, error) {
	s := &Settings{}
	s.Options.setDefaults()

	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(s); err != nil {
		return nil, decodeError(err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the settings file at path in fsys.
func Load(fsys fs.FS, path string) (*Settings, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read settings '%s'", path)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failure to load settings '%s'", path)
	}
	return s, nil
}

func decodeError(err error) error {
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		return errors.WithDetail(
			errors.NewConfigError("unknown fields in settings: %s", strict.Error()),
			strict.String())
	}
	var decode *toml.DecodeError
	if errors.As(err, &decode) {
		row, col := decode.Position()
		return errors.WithDetail(
			errors.NewConfigError("invalid settings TOML at line %d, column %d: %s", row, col, decode.Error()),
			decode.String())
	}
	return errors.Mark(errors.Wrap(err, "invalid settings"), errors.ErrConfig)
}
