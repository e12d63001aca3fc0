// Package registry aggregates everything loaded from the settings file and
// the kmap files into one model: chords per kmap, sequences per type, modes,
// modifiers and words. The firmware emitter, the checker and the tutor
// export only read from it.
package registry

import (
	"fmt"
	"slices"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/kmap"
	"github.com/pipit-keyboard/chordc/settings"
	"github.com/pipit-keyboard/chordc/types"
)

// KmapInfo is one kmap of a mode, in lookup order.
type KmapInfo struct {
	Path     types.KmapPath
	UseWords bool
}

// AllData is the compiled model of a keyboard.
type AllData struct {
	Options settings.Options
	Spec    types.ChordSpec

	chords    map[types.KmapPath]map[types.Name]types.Chord
	sequences map[types.SeqType]map[types.Name]types.Sequence

	plainMods   []types.Name
	wordMods    []types.Name
	anagramMods []types.Name
	commands    []types.Name

	modes      map[types.ModeName][]KmapInfo
	kmapOrder  []types.KmapPath
	kmapIDs    map[types.KmapPath]string
	duplicates map[types.KmapPath][]types.Name

	maxAnagram types.AnagramNum
}

// New returns an empty model for the given options and chord spec.
func New(opts settings.Options, spec types.ChordSpec) *AllData {
	d := &AllData{
		Options:    opts,
		Spec:       spec,
		chords:     make(map[types.KmapPath]map[types.Name]types.Chord),
		sequences:  make(map[types.SeqType]map[types.Name]types.Sequence),
		modes:      make(map[types.ModeName][]KmapInfo),
		kmapIDs:    make(map[types.KmapPath]string),
		duplicates: make(map[types.KmapPath][]types.Name),
	}
	for _, t := range types.AllSeqTypes {
		d.sequences[t] = make(map[types.Name]types.Sequence)
	}
	return d
}

// AddMode registers a mode and gives each kmap it names a nickname
// (kmap0, kmap1, ...) the first time that kmap is seen.
func (d *AllData) AddMode(name types.ModeName, kmaps []KmapInfo) error {
	if _, ok := d.modes[name]; ok {
		return errors.NewConfigError("mode %q is defined twice", name)
	}
	if len(kmaps) == 0 {
		return errors.NewConfigError("mode %q has no keymaps", name)
	}
	d.modes[name] = slices.Clone(kmaps)
	for _, k := range kmaps {
		if _, ok := d.kmapIDs[k.Path]; !ok {
			d.kmapIDs[k.Path] = fmt.Sprintf("kmap%d", len(d.kmapOrder))
			d.kmapOrder = append(d.kmapOrder, k.Path)
			d.chords[k.Path] = make(map[types.Name]types.Chord)
		}
	}
	return nil
}

// AddChords stores the chords parsed from one kmap. A name repeated within
// the batch is an error. A name the kmap already holds from an earlier call
// keeps its first chord and is recorded as a duplicate for the checker.
func (d *AllData) AddChords(path types.KmapPath, chords []kmap.NamedChord) error {
	existing, ok := d.chords[path]
	if !ok {
		return errors.NewLookupError(string(path), "kmap list")
	}
	batch := make(map[types.Name]int, len(chords))
	for _, nc := range chords {
		if line, seen := batch[nc.Name]; seen {
			return errors.NewConfigError("chord %q is defined twice in '%s' (lines %d and %d)",
				nc.Name, path, line, nc.Line)
		}
		batch[nc.Name] = nc.Line

		if _, dup := existing[nc.Name]; dup {
			d.duplicates[path] = append(d.duplicates[path], nc.Name)
			continue
		}
		existing[nc.Name] = nc.Chord
		d.noteAnagram(nc.Chord.Anagram)
	}
	return nil
}

// AddChord stores a single chord, failing if the kmap already has one by
// that name.
func (d *AllData) AddChord(path types.KmapPath, name types.Name, chord types.Chord) error {
	existing, ok := d.chords[path]
	if !ok {
		return errors.NewLookupError(string(path), "kmap list")
	}
	if _, dup := existing[name]; dup {
		return errors.NewConfigError("chord %q is already defined in '%s'", name, path)
	}
	existing[name] = chord
	d.noteAnagram(chord.Anagram)
	return nil
}

func (d *AllData) noteAnagram(n types.AnagramNum) {
	if n > d.maxAnagram {
		d.maxAnagram = n
	}
}

// AddSequence stores a sequence. Names are unique per sequence type.
func (d *AllData) AddSequence(t types.SeqType, name types.Name, seq types.Sequence) error {
	m, ok := d.sequences[t]
	if !ok {
		return errors.AssertionFailedf("unknown sequence type %d", t)
	}
	if _, dup := m[name]; dup {
		return errors.NewConfigError("%s sequence %q is defined twice", t, name)
	}
	m[name] = seq
	return nil
}

// SetSequences stores every sequence of seqs under type t, in name order.
func (d *AllData) SetSequences(t types.SeqType, seqs map[types.Name]types.Sequence) error {
	names := make([]types.Name, 0, len(seqs))
	for n := range seqs {
		names = append(names, n)
	}
	for _, n := range types.SortNames(names) {
		if err := d.AddSequence(t, n, seqs[n]); err != nil {
			return err
		}
	}
	return nil
}

// AddCommand registers a command. Its sequence is a single pseudo key press
// naming the command enum variant.
func (d *AllData) AddCommand(name types.Name) error {
	if slices.Contains(d.commands, name) {
		return errors.AssertionFailedf("command %q added twice", name)
	}
	d.commands = append(d.commands, name)
	return d.AddSequence(types.Command, name, types.Sequence{{Key: name.Upper()}})
}

// AddPlainModifier registers a modifier key such as shift. Its sequence must
// be a single key press holding only modifiers.
func (d *AllData) AddPlainModifier(name types.Name, seq types.Sequence) error {
	kp, err := seq.LoneKeyPress()
	if err != nil {
		return errors.Wrapf(err, "plain modifier %q", name)
	}
	if kp.Key != "" || len(kp.Mods) == 0 {
		return errors.NewConfigError("plain modifier %q must press only modifier keys, got %q", name, kp.String())
	}
	if err := d.AddSequence(types.Plain, name, seq); err != nil {
		return err
	}
	d.plainMods = append(d.plainMods, name)
	return nil
}

// AddWordModifier registers a modifier that changes how a word is typed.
func (d *AllData) AddWordModifier(name types.Name) error {
	if d.isModifier(name) {
		return errors.NewConfigError("modifier %q is listed twice", name)
	}
	d.wordMods = append(d.wordMods, name)
	return nil
}

// AddAnagramModifier registers a modifier that selects an anagram number.
func (d *AllData) AddAnagramModifier(name types.Name) error {
	if d.isModifier(name) {
		return errors.NewConfigError("modifier %q is listed twice", name)
	}
	d.anagramMods = append(d.anagramMods, name)
	return nil
}

func (d *AllData) isModifier(name types.Name) bool {
	return slices.Contains(d.plainMods, name) ||
		slices.Contains(d.wordMods, name) ||
		slices.Contains(d.anagramMods, name)
}
