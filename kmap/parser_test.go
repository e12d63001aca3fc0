package kmap

import (
	"strconv"
	"testing"
	"testing/fstest"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoByTwo is a 2-row, 2-column matrix listed row by row.
func twoByTwo(t *testing.T) *Parser {
	t.Helper()
	format := types.KmapFormat{
		{{Row: 1, Column: 3}, {Row: 1, Column: 4}},
		{{Row: 2, Column: 3}, {Row: 2, Column: 4}},
	}
	spec, err := types.NewChordSpec([]types.Pin{1, 2}, []types.Pin{3, 4}, format)
	require.NoError(t, err)
	return NewParser(format, spec)
}

func TestParseTwoBlocks(t *testing.T) {
	p := twoByTwo(t)

	chords, err := p.Parse("test.kmap", "A B\n.X.X\nX..X\n")
	require.NoError(t, err)
	require.Len(t, chords, 2)

	assert.Equal(t, types.Name("A"), chords[0].Name)
	assert.Equal(t, types.Name("B"), chords[1].Name)

	// firmware order is (1,3) (2,3) (1,4) (2,4)
	assert.Equal(t, []byte{0x06}, chords[0].Chord.Bytes())
	assert.Equal(t, []byte{0x0C}, chords[1].Chord.Bytes())
	assert.Equal(t, 8, chords[0].Chord.Len())
	assert.Equal(t, 1, chords[0].Line)
}

func TestParseMultiByteMarkers(t *testing.T) {
	p := twoByTwo(t)

	// Any character other than '.' marks a pressed switch
	chords, err := p.Parse("test.kmap", "A B\n.é.ü\né..ö\n")
	require.NoError(t, err)
	require.Len(t, chords, 2)
	assert.Equal(t, []byte{0x06}, chords[0].Chord.Bytes())
	assert.Equal(t, []byte{0x0C}, chords[1].Chord.Bytes())
}

func TestParseIgnoresCommentsAndWhitespace(t *testing.T) {
	p := twoByTwo(t)

	text := `# letters
   a   b

  X.  ..
  ..  .X
# more
c
xx
xx
`
	chords, err := p.Parse("test.kmap", text)
	require.NoError(t, err)
	require.Len(t, chords, 3)

	assert.Equal(t, []byte{0x01}, chords[0].Chord.Bytes())
	assert.Equal(t, []byte{0x08}, chords[1].Chord.Bytes())
	assert.Equal(t, []byte{0x0F}, chords[2].Chord.Bytes())
	assert.Equal(t, 2, chords[0].Line)
	assert.Equal(t, 7, chords[2].Line)
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"body line too long", "A\n.X.\nX.\n", 2},
		{"second body line too short", "# c\nA B\n.X.X\nX..\n", 4},
		{"truncated block", "A\n.X\nX.\nB\n.X\n", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := twoByTwo(t).Parse("test.kmap", tt.text)
			require.Error(t, err)
			assert.True(t, errors.IsSyntaxError(err))
			assert.Contains(t, err.Error(), "near line "+strconv.Itoa(tt.line))
		})
	}
}

func TestParseEmptyFileIsInternal(t *testing.T) {
	_, err := twoByTwo(t).Parse("empty.kmap", " \n\n")
	assert.True(t, errors.IsInternal(err))
}

func TestParseFile(t *testing.T) {
	fsys := fstest.MapFS{
		"layouts/a.kmap": {Data: []byte("A\nX.\n.X\n")},
	}
	p := twoByTwo(t)

	chords, err := p.ParseFile(fsys, "layouts/a.kmap")
	require.NoError(t, err)
	require.Len(t, chords, 1)
	assert.Equal(t, []byte{0x09}, chords[0].Chord.Bytes())

	_, err = p.ParseFile(fsys, "layouts/missing.kmap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read kmap 'layouts/missing.kmap'")
}
