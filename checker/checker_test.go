package checker

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chordtest "github.com/pipit-keyboard/chordc/internal/testing"
	"github.com/pipit-keyboard/chordc/kmap"
	"github.com/pipit-keyboard/chordc/registry"
	"github.com/pipit-keyboard/chordc/settings"
	"github.com/pipit-keyboard/chordc/types"
)

func TestCheckKeyboard(t *testing.T) {
	fsys := chordtest.KeyboardFS()
	cfg, err := settings.Load(fsys, chordtest.SettingsPath)
	require.NoError(t, err)
	sub, err := fs.Sub(fsys, "keyboard")
	require.NoError(t, err)
	d, err := registry.Load(cfg, sub)
	require.NoError(t, err)

	r := Check(d)
	assert.Empty(t, r.UnusedChords)
	assert.Equal(t, []types.Name{"z"}, r.UnusedSequences)
	// cat and act share switches but have distinct anagram numbers.
	assert.Empty(t, r.Conflicts)
	assert.Empty(t, r.Duplicates)

	sections := r.Sections()
	require.Len(t, sections, 1)
	assert.Equal(t, Section{Heading: "Unused sequences:", Items: []string{"z"}}, sections[0])
}

func chord(bits ...bool) types.Chord {
	return types.ChordFromBools(bits)
}

func newData(t *testing.T, chords []kmap.NamedChord) *registry.AllData {
	t.Helper()
	spec, err := types.NewChordSpec([]types.Pin{1}, []types.Pin{2, 3},
		types.KmapFormat{{{Row: 1, Column: 2}, {Row: 1, Column: 3}}})
	require.NoError(t, err)

	d := registry.New(settings.Options{}, spec)
	require.NoError(t, d.AddMode("default", []registry.KmapInfo{{Path: "k.kmap"}}))
	require.NoError(t, d.AddChords("k.kmap", chords))
	return d
}

func TestConflicts(t *testing.T) {
	d := newData(t, []kmap.NamedChord{
		{Name: "a", Chord: chord(true, false)},
		{Name: "b", Chord: chord(true, false)},
		{Name: "c", Chord: chord(false, true).WithAnagram(2)},
		{Name: "nospace", Chord: chord(true, true)},
		{Name: "x", Chord: chord(true, true)},
	})
	require.NoError(t, d.AddWordModifier("nospace"))

	r := Check(d)
	require.Len(t, r.Conflicts, 1)
	assert.Equal(t, types.KmapPath("k.kmap"), r.Conflicts[0].Kmap)

	var got []string
	for _, s := range r.Conflicts[0].Sets {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{
		"anagrams: [(a, b)]",
		"anagrams: [???, ???, c]",
	}, got)

	// Nothing has a sequence, so every chord is unused except the modifier.
	assert.Equal(t, []types.Name{"a", "b", "c", "x"}, r.UnusedChords)
	assert.Empty(t, r.UnusedSequences)
}

func TestAnagramSetValid(t *testing.T) {
	mods := types.NewNameSet("nospace", "capital")

	tests := []struct {
		name string
		set  AnagramSet
		want bool
	}{
		{"single", AnagramSet{0: {"a"}}, true},
		{"consecutive anagrams", AnagramSet{0: {"cat"}, 1: {"act"}}, true},
		{"skipped anagram", AnagramSet{0: {"cat"}, 2: {"act"}}, false},
		{"modifier pair", AnagramSet{0: {"nospace", "x"}}, true},
		{"two modifiers", AnagramSet{0: {"nospace", "capital"}}, false},
		{"two plain names", AnagramSet{0: {"a", "b"}}, false},
		{"three names", AnagramSet{0: {"nospace", "a", "b"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Valid(mods))
		})
	}
}

func TestDuplicatesSection(t *testing.T) {
	d := newData(t, []kmap.NamedChord{{Name: "a", Chord: chord(true, false)}})
	require.NoError(t, d.AddChords("k.kmap", []kmap.NamedChord{{Name: "a", Chord: chord(false, true)}}))

	r := Check(d)
	require.Len(t, r.Duplicates, 1)
	assert.Equal(t, []types.Name{"a"}, r.Duplicates[0].Names)

	var headings []string
	for _, s := range r.Sections() {
		headings = append(headings, s.Heading)
	}
	assert.Contains(t, headings, "Chords defined more than once in 'k.kmap':")
}

func TestPrint(t *testing.T) {
	d := newData(t, []kmap.NamedChord{
		{Name: "a", Chord: chord(true, false)},
		{Name: "b", Chord: chord(true, false)},
	})

	var buf bytes.Buffer
	Check(d).Print(&buf)
	out := pterm.RemoveColorFromString(buf.String())

	assert.Contains(t, out, "Unused chords:\n  a\n  b\n\n")
	assert.Contains(t, out, `Conflicting chords (in parens) or skipped anagrams ("???") in 'k.kmap':`)
	assert.Contains(t, out, "  anagrams: [(a, b)]\n")
}

func TestEmptyReport(t *testing.T) {
	r := &Report{}
	assert.True(t, r.Empty())

	var buf bytes.Buffer
	r.Print(&buf)
	assert.Empty(t, buf.String())
}
