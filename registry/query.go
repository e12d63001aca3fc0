package registry

import (
	"maps"
	"slices"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/types"
)

// Chord returns the chord named name in the given kmap.
func (d *AllData) Chord(name types.Name, path types.KmapPath) (types.Chord, bool) {
	c, ok := d.chords[path][name]
	return c, ok
}

// ChordInMode returns the chord for name from the first kmap of the mode
// that defines it. A name no kmap of the mode defines gets the empty chord.
func (d *AllData) ChordInMode(name types.Name, mode types.ModeName) (types.Chord, error) {
	kmaps, ok := d.modes[mode]
	if !ok {
		return types.Chord{}, errors.NewLookupError(string(mode), "modes")
	}
	for _, k := range kmaps {
		if c, ok := d.chords[k.Path][name]; ok {
			return c, nil
		}
	}
	return d.Spec.EmptyChord(), nil
}

// ChordsIn returns the chords of a kmap. The map must not be modified.
func (d *AllData) ChordsIn(path types.KmapPath) map[types.Name]types.Chord {
	return d.chords[path]
}

// ChordNames lists the chord names of a kmap, sorted.
func (d *AllData) ChordNames(path types.KmapPath) []types.Name {
	return types.SortNames(slices.Collect(maps.Keys(d.chords[path])))
}

// SequencesOfType returns the sequences of type t. The map must not be
// modified.
func (d *AllData) SequencesOfType(t types.SeqType) map[types.Name]types.Sequence {
	return d.sequences[t]
}

// SequenceNames lists the sequence names of type t, sorted.
func (d *AllData) SequenceNames(t types.SeqType) []types.Name {
	return types.SortNames(slices.Collect(maps.Keys(d.sequences[t])))
}

// SequenceOfAnyType finds name among all sequence types, in type order.
func (d *AllData) SequenceOfAnyType(name types.Name) (types.Sequence, types.SeqType, error) {
	for _, t := range types.AllSeqTypes {
		if seq, ok := d.sequences[t][name]; ok {
			return seq, t, nil
		}
	}
	return nil, 0, errors.NewLookupError(string(name), "sequences")
}

// KmapPaths lists every kmap in first-seen order.
func (d *AllData) KmapPaths() []types.KmapPath {
	return slices.Clone(d.kmapOrder)
}

// KmapNickname is the identifier-safe name of a kmap, e.g. kmap0.
func (d *AllData) KmapNickname(path types.KmapPath) (string, error) {
	id, ok := d.kmapIDs[path]
	if !ok {
		return "", errors.NewLookupError(string(path), "kmap list")
	}
	return id, nil
}

// KmapsForMode lists the kmaps of a mode in lookup order.
func (d *AllData) KmapsForMode(mode types.ModeName) ([]KmapInfo, error) {
	kmaps, ok := d.modes[mode]
	if !ok {
		return nil, errors.NewLookupError(string(mode), "modes")
	}
	return slices.Clone(kmaps), nil
}

// KmapsWithWords lists the kmaps that at least one mode uses for words, in
// first-seen order.
func (d *AllData) KmapsWithWords() []types.KmapPath {
	withWords := make(map[types.KmapPath]bool)
	for _, kmaps := range d.modes {
		for _, k := range kmaps {
			if k.UseWords {
				withWords[k.Path] = true
			}
		}
	}
	var out []types.KmapPath
	for _, p := range d.kmapOrder {
		if withWords[p] {
			out = append(out, p)
		}
	}
	return out
}

// ModeNames lists the modes, sorted.
func (d *AllData) ModeNames() []types.ModeName {
	return types.SortNames(slices.Collect(maps.Keys(d.modes)))
}

// PlainModifiers lists the plain modifiers in declaration order.
func (d *AllData) PlainModifiers() []types.Name { return slices.Clone(d.plainMods) }

// WordModifiers lists the word modifiers in declaration order.
func (d *AllData) WordModifiers() []types.Name { return slices.Clone(d.wordMods) }

// AnagramModifiers lists the anagram modifiers in declaration order.
func (d *AllData) AnagramModifiers() []types.Name { return slices.Clone(d.anagramMods) }

// Commands lists the commands in declaration order.
func (d *AllData) Commands() []types.Name { return slices.Clone(d.commands) }

// ModifierNames lists every modifier: plain, then word, then anagram.
func (d *AllData) ModifierNames() []types.Name {
	out := slices.Clone(d.plainMods)
	out = append(out, d.wordMods...)
	return append(out, d.anagramMods...)
}

// WordOrAnagramModifiers is the set of modifiers that may share a chord
// with a name that is not itself such a modifier.
func (d *AllData) WordOrAnagramModifiers() types.NameSet {
	s := types.NewNameSet(d.wordMods...)
	for _, n := range d.anagramMods {
		s.Add(n)
	}
	return s
}

// ModChords returns the chord of every modifier in ModifierNames order, as
// seen from the mode.
func (d *AllData) ModChords(mode types.ModeName) ([]types.Chord, error) {
	return d.chordsInMode(d.ModifierNames(), mode)
}

// AnagramChords returns the chord of every anagram modifier, as seen from
// the mode.
func (d *AllData) AnagramChords(mode types.ModeName) ([]types.Chord, error) {
	return d.chordsInMode(d.anagramMods, mode)
}

func (d *AllData) chordsInMode(names []types.Name, mode types.ModeName) ([]types.Chord, error) {
	out := make([]types.Chord, 0, len(names))
	for _, n := range names {
		c, err := d.ChordInMode(n, mode)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// AnagramMask is every switch used by any anagram modifier in the mode.
func (d *AllData) AnagramMask(mode types.ModeName) (types.Chord, error) {
	chords, err := d.AnagramChords(mode)
	if err != nil {
		return types.Chord{}, err
	}
	mask := d.Spec.EmptyChord()
	for _, c := range chords {
		mask = mask.Intersect(c)
	}
	return mask.Base(), nil
}

// AnagramModNumbers is the anagram number each anagram modifier selects:
// the n-th modifier selects n+1.
func (d *AllData) AnagramModNumbers() []types.AnagramNum {
	out := make([]types.AnagramNum, len(d.anagramMods))
	for i := range out {
		out[i] = types.AnagramNum(i + 1)
	}
	return out
}

// MaxAnagramNum is the largest anagram number of any stored chord.
func (d *AllData) MaxAnagramNum() types.AnagramNum {
	return d.maxAnagram
}

// MaxSequenceLength is the number of key presses in the longest sequence.
func (d *AllData) MaxSequenceLength() int {
	longest := 0
	for _, seqs := range d.sequences {
		for _, s := range seqs {
			longest = max(longest, len(s))
		}
	}
	return longest
}

// AllKeyPresses returns every key press of every sequence, in type order
// and then name order. With compressedOnly, only Huffman-coded types are
// included.
func (d *AllData) AllKeyPresses(compressedOnly bool) []types.KeyPress {
	var out []types.KeyPress
	for _, t := range types.AllSeqTypes {
		if compressedOnly && !t.UsesCompression() {
			continue
		}
		for _, n := range d.SequenceNames(t) {
			out = append(out, d.sequences[t][n]...)
		}
	}
	return out
}

// Duplicates lists the chord names the kmap defined more than once, sorted.
func (d *AllData) Duplicates(path types.KmapPath) []types.Name {
	return types.SortNames(slices.Clone(d.duplicates[path]))
}
