package types

import (
	"testing"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordBytesLSBFirst(t *testing.T) {
	bits := make([]bool, 16)
	bits[0] = true
	bits[3] = true
	bits[9] = true

	c := ChordFromBools(bits)
	assert.Equal(t, []byte{0x09, 0x02}, c.Bytes())
}

func TestChordIntersect(t *testing.T) {
	a := ChordFromBools([]bool{true, false, false, false}).WithAnagram(2)
	b := ChordFromBools([]bool{false, false, true, false})

	got := a.Intersect(b)
	assert.Equal(t, []bool{true, false, true, false}, got.Switches())
	assert.Equal(t, AnagramNum(2), got.Anagram)

	// intersecting into an empty chord widens it
	empty := Chord{}
	assert.True(t, empty.IsEmpty())
	widened := empty.Intersect(b)
	assert.Equal(t, 4, widened.Len())
	assert.True(t, widened.BaseEqual(b))
}

func TestChordBaseEquality(t *testing.T) {
	a := ChordFromBools([]bool{true, true, false}).WithAnagram(1)
	b := ChordFromBools([]bool{true, true, false, false, false})

	assert.True(t, a.BaseEqual(b))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Base().Equal(b))
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.BaseKey(), b.BaseKey())
}

func TestChordString(t *testing.T) {
	assert.Equal(t, "X.X.", ChordFromBools([]bool{true, false, true, false}).String())
	assert.Equal(t, "X/3", ChordFromBools([]bool{true}).WithAnagram(3).String())
}

func TestAnagramNum(t *testing.T) {
	assert.NoError(t, MaxAnagramNum.Validate())

	err := AnagramNum(16).Validate()
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "anagram number is out of range: 16")

	assert.Equal(t, []AnagramNum{0, 1, 2}, AnagramNum(2).UpTo())
}
