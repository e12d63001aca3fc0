package registry

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/settings"
	"github.com/pipit-keyboard/chordc/types"
)

// Word is a dictionary entry compiled against one kmap.
type Word struct {
	Name  types.Name
	Seq   types.Sequence
	Chord types.Chord
}

// WordName is the unique name of a dictionary entry:
// word_<spelling>[_<chord spelling>]_<anagram>.
func WordName(w settings.WordConfig) types.Name {
	name := "word_" + w.Word
	if w.HasAlternateChord() {
		name += "_" + w.Chord
	}
	return types.Name(fmt.Sprintf("%s_%d", name, w.AnagramNum()))
}

// AddWord compiles a dictionary entry against the kmap and stores its chord
// there. The word's sequence is stored once, however many kmaps use words.
func (d *AllData) AddWord(w settings.WordConfig, path types.KmapPath) error {
	word, err := d.BuildWord(w, path)
	if err != nil {
		return err
	}
	if existing, ok := d.sequences[types.Word][word.Name]; ok {
		if !existing.Equal(word.Seq) {
			return errors.AssertionFailedf("word %q built two different sequences", word.Name)
		}
	} else if err := d.AddSequence(types.Word, word.Name, word.Seq); err != nil {
		return err
	}
	return d.AddChord(path, word.Name, word.Chord)
}

// BuildWord compiles a dictionary entry without storing it.
func (d *AllData) BuildWord(w settings.WordConfig, path types.KmapPath) (Word, error) {
	seq, err := wordSequence(w.Word)
	if err != nil {
		return Word{}, errors.Wrapf(err, "failed to make sequence for: '%s'", w.Word)
	}
	chord, err := d.wordChord(w, path)
	if err != nil {
		return Word{}, errors.Wrapf(err, "failed to make chord for: '%s'", w.Word)
	}
	return Word{Name: WordName(w), Seq: seq, Chord: chord}, nil
}

// wordSequence types the word one grapheme cluster at a time.
func wordSequence(spelling string) (types.Sequence, error) {
	var seq types.Sequence
	g := uniseg.NewGraphemes(spelling)
	for g.Next() {
		kp, err := types.KeyPressFromChar(g.Str())
		if err != nil {
			return nil, err
		}
		seq = append(seq, kp)
	}
	return seq, nil
}

// wordChord presses together the chords of every letter of the chord
// spelling, as found in the kmap under the letter's plain key name.
func (d *AllData) wordChord(w settings.WordConfig, path types.KmapPath) (types.Chord, error) {
	num := w.AnagramNum()
	if err := num.Validate(); err != nil {
		return types.Chord{}, err
	}
	chord := d.Spec.EmptyChord()
	for _, letter := range strings.ToLower(w.ChordSpelling()) {
		name, err := d.NameFromSpelling(string(letter))
		if err != nil {
			return types.Chord{}, err
		}
		c, ok := d.Chord(name, path)
		if !ok {
			return types.Chord{}, errors.NewLookupError(string(name), "chords")
		}
		chord = chord.Intersect(c)
	}
	return chord.WithAnagram(num), nil
}

// NameFromSpelling finds the plain key whose sequence types the character.
// When several plain keys type it, the first by name wins.
func (d *AllData) NameFromSpelling(char string) (types.Name, error) {
	want, err := types.KeyPressFromChar(char)
	if err != nil {
		return "", err
	}
	for _, name := range d.SequenceNames(types.Plain) {
		kp, err := d.sequences[types.Plain][name].LoneKeyPress()
		if err != nil {
			continue
		}
		if kp.Equal(want) {
			return name, nil
		}
	}
	return "", errors.NewLookupError(char, "plain keys")
}
