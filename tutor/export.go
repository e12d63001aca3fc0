// Package tutor exports the compiled chords for the typing tutor and holds
// the tutor's practice session.
//
// The export is a YAML document with the chords of every mode and the
// spelling of every letter and dictionary word. The tutor reads it back
// with Read and drives a Session from it.
package tutor

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/logger"
	"github.com/pipit-keyboard/chordc/registry"
	"github.com/pipit-keyboard/chordc/settings"
	"github.com/pipit-keyboard/chordc/types"
)

// FileName is the export's name inside the tutor directory.
const FileName = "tutor_data.yaml"

// Entry is one chord as the tutor draws it.
type Entry struct {
	Switches string `yaml:"switches"`
	Anagram  uint8  `yaml:"anagram,omitempty"`
}

// Data is everything the tutor needs from the compiler.
type Data struct {
	// Modes maps mode name to chord name to chord.
	Modes map[string]map[string]Entry `yaml:"modes"`
	// Spellings maps typed text, a single character or a whole word, to
	// the chord name that types it.
	Spellings map[string]string `yaml:"spellings"`
}

// Export collects every chord reachable from each mode, plus the spellings
// of printable characters and dictionary words.
func Export(d *registry.AllData, cfg *settings.Settings) (*Data, error) {
	data := &Data{
		Modes:     make(map[string]map[string]Entry),
		Spellings: make(map[string]string),
	}

	for _, mode := range d.ModeNames() {
		kmaps, err := d.KmapsForMode(mode)
		if err != nil {
			return nil, err
		}
		entries := make(map[string]Entry)
		for _, k := range kmaps {
			for _, name := range d.ChordNames(k.Path) {
				if _, ok := entries[string(name)]; ok {
					continue
				}
				c, err := d.ChordInMode(name, mode)
				if err != nil {
					return nil, err
				}
				entries[string(name)] = newEntry(c)
			}
		}
		data.Modes[string(mode)] = entries
	}

	for r := rune(' '); r <= '~'; r++ {
		if name, err := d.NameFromSpelling(string(r)); err == nil {
			data.Spellings[string(r)] = string(name)
		}
	}
	for _, w := range cfg.Dictionary {
		if _, ok := data.Spellings[w.Word]; !ok {
			data.Spellings[w.Word] = string(registry.WordName(w))
		}
	}
	return data, nil
}

func newEntry(c types.Chord) Entry {
	return Entry{Switches: c.Base().String(), Anagram: uint8(c.Anagram)}
}

// WriteYAML encodes data to w.
func WriteYAML(w io.Writer, data *Data) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return errors.Wrap(err, "failed to encode tutor data")
	}
	return enc.Close()
}

// Read decodes tutor data written by WriteYAML.
func Read(r io.Reader) (*Data, error) {
	var data Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode tutor data")
	}
	return &data, nil
}

// Save writes data to FileName inside dir and returns the file's path.
func Save(dir string, data *Data) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create tutor directory %s", dir)
	}
	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := WriteYAML(f, data); err != nil {
		return "", err
	}
	logger.ComponentLogger("tutor").Infow("Saved tutor data",
		logger.FieldFile, path,
		logger.FieldCount, len(data.Spellings))
	return path, nil
}
