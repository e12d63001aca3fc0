package registry

import (
	"io/fs"
	"maps"
	"slices"
	"time"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/kmap"
	"github.com/pipit-keyboard/chordc/logger"
	"github.com/pipit-keyboard/chordc/settings"
	"github.com/pipit-keyboard/chordc/types"
)

// Load builds the model from validated settings. Kmap paths are resolved in
// fsys, which must be rooted at the settings file's directory.
func Load(cfg *settings.Settings, fsys fs.FS) (*AllData, error) {
	log := logger.ComponentLogger("registry")
	start := time.Now()

	spec, err := cfg.Options.ChordSpec()
	if err != nil {
		return nil, errors.Wrap(err, "failure to load options")
	}
	d := New(cfg.Options, spec)

	stages := []struct {
		name string
		run  func() error
	}{
		{"modes", func() error { return d.loadModes(cfg) }},
		{"chords", func() error { return d.loadChords(fsys) }},
		{"plain keys", func() error { return d.loadPlainKeys(cfg) }},
		{"macros", func() error { return d.loadMacros(cfg) }},
		{"plain modifiers", func() error { return d.loadPlainModifiers(cfg) }},
		{"word modifiers", func() error { return addNames(cfg.WordModifiers, d.AddWordModifier) }},
		{"anagram modifiers", func() error { return addNames(cfg.AnagramModifiers, d.AddAnagramModifier) }},
		{"dictionary", func() error { return d.loadDictionary(cfg) }},
		{"commands", func() error { return addNames(cfg.Commands, d.AddCommand) }},
	}
	for _, stage := range stages {
		if err := stage.run(); err != nil {
			return nil, errors.Wrapf(err, "failure to load %s", stage.name)
		}
		log.Debugw("Loaded", logger.FieldStage, stage.name)
	}

	log.Infow("Loaded keyboard",
		logger.FieldCount, len(d.kmapOrder),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return d, nil
}

func (d *AllData) loadModes(cfg *settings.Settings) error {
	for _, mode := range cfg.ModeNames() {
		var kmaps []KmapInfo
		for _, k := range cfg.Modes[string(mode)].Keymaps {
			kmaps = append(kmaps, KmapInfo{Path: types.KmapPath(k.File), UseWords: k.UseWords})
		}
		if err := d.AddMode(mode, kmaps); err != nil {
			return err
		}
	}
	return nil
}

func (d *AllData) loadChords(fsys fs.FS) error {
	p := kmap.NewParser(d.Options.Format(), d.Spec)
	for _, path := range d.kmapOrder {
		chords, err := p.ParseFile(fsys, string(path))
		if err != nil {
			return errors.Wrapf(err, "failure to parse kmap '%s'", path)
		}
		if err := d.AddChords(path, chords); err != nil {
			return err
		}
	}
	return nil
}

func (d *AllData) loadPlainKeys(cfg *settings.Settings) error {
	seqs := make(map[types.Name]types.Sequence, len(cfg.PlainKeys))
	for name, token := range cfg.PlainKeys {
		seq, err := types.ParseSequence([]string{token})
		if err != nil {
			return errors.Wrapf(err, "plain key %q", name)
		}
		seqs[types.Name(name)] = seq
	}
	return d.SetSequences(types.Plain, seqs)
}

func (d *AllData) loadMacros(cfg *settings.Settings) error {
	seqs := make(map[types.Name]types.Sequence, len(cfg.Macros))
	for name, tokens := range cfg.Macros {
		seq, err := types.ParseSequence(tokens)
		if err != nil {
			return errors.Wrapf(err, "macro %q", name)
		}
		seqs[types.Name(name)] = seq
	}
	return d.SetSequences(types.Macro, seqs)
}

func (d *AllData) loadPlainModifiers(cfg *settings.Settings) error {
	for _, name := range slices.Sorted(maps.Keys(cfg.PlainModifiers)) {
		seq, err := types.ParseSequence([]string{cfg.PlainModifiers[name]})
		if err != nil {
			return errors.Wrapf(err, "plain modifier %q", name)
		}
		if err := d.AddPlainModifier(types.Name(name), seq); err != nil {
			return err
		}
	}
	return nil
}

func (d *AllData) loadDictionary(cfg *settings.Settings) error {
	for _, path := range d.KmapsWithWords() {
		for _, w := range cfg.Dictionary {
			if err := d.AddWord(w, path); err != nil {
				return errors.Wrapf(err, "in kmap '%s'", path)
			}
		}
	}
	return nil
}

func addNames(names []string, add func(types.Name) error) error {
	for _, n := range names {
		if err := add(types.Name(n)); err != nil {
			return err
		}
	}
	return nil
}
