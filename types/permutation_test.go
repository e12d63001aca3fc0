package types

import (
	"testing"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirmwareOrderIsColumnMajor(t *testing.T) {
	order := FirmwareOrder([]Pin{1, 2}, []Pin{7, 8, 9})

	assert.Equal(t, []SwitchPos{
		{1, 7}, {2, 7},
		{1, 8}, {2, 8},
		{1, 9}, {2, 9},
	}, order)
}

func TestPermutationBijective(t *testing.T) {
	rows := []Pin{10, 11, 12}
	cols := []Pin{1, 2, 3, 4}
	format := KmapFormat{
		{{10, 4}, {10, 3}, {10, 2}, {10, 1}},
		{{11, 1}, {11, 2}, {11, 3}, {11, 4}},
		{{12, 2}, {12, 1}, {12, 4}, {12, 3}},
	}

	p, err := NewPermutation(format.FlatOrder(), FirmwareOrder(rows, cols))
	require.NoError(t, err)
	require.Equal(t, 12, p.Len())

	seen := make(map[int]bool)
	for i := 0; i < p.Len(); i++ {
		j := p.Forward(i)
		assert.False(t, seen[j], "firmware index %d hit twice", j)
		seen[j] = true
		assert.Equal(t, i, p.Inverse(j))
	}
	assert.Len(t, seen, 12)

	// first kmap switch is (10, 4): column 4 is scanned last, row 10 first
	assert.Equal(t, 9, p.Forward(0))
}

func TestPermutationApplyRoundTrip(t *testing.T) {
	from := []SwitchPos{{2, 1}, {1, 1}, {2, 2}, {1, 2}}
	p, err := NewPermutation(from, FirmwareOrder([]Pin{1, 2}, []Pin{1, 2}))
	require.NoError(t, err)

	bits := []bool{true, false, false, true}
	fw, err := p.Apply(bits)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, fw)

	back, err := p.Unapply(fw)
	require.NoError(t, err)
	assert.Equal(t, bits, back)

	_, err = p.Apply([]bool{true})
	assert.True(t, errors.IsInternal(err))
}

func TestPermutationErrors(t *testing.T) {
	to := FirmwareOrder([]Pin{1, 2}, []Pin{5})

	tests := []struct {
		name string
		from []SwitchPos
		want string
	}{
		{"unknown pin pair", []SwitchPos{{1, 5}, {3, 5}}, "pin pair (3, 5) not found"},
		{"repeated position", []SwitchPos{{1, 5}, {1, 5}}, "appears twice in kmap format"},
		{"missing position", []SwitchPos{{1, 5}}, "lists 1 switches but the matrix has 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPermutation(tt.from, to)
			require.Error(t, err)
			assert.True(t, errors.IsConfigError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNumBytesInChord(t *testing.T) {
	for rows := 0; rows <= 9; rows++ {
		for cols := 0; cols <= 9; cols++ {
			n := NumBytesInChord(rows, cols)
			positions := rows * cols
			assert.GreaterOrEqual(t, n*8, positions)
			assert.Less(t, n*8-positions, 8, "rows=%d cols=%d", rows, cols)
		}
	}
}

func TestNewChordSpec(t *testing.T) {
	format := KmapFormat{
		{{1, 5}, {1, 6}, {1, 7}},
		{{2, 5}, {2, 6}, {2, 7}},
		{{3, 5}, {3, 6}, {3, 7}},
	}
	spec, err := NewChordSpec([]Pin{1, 2, 3}, []Pin{5, 6, 7}, format)
	require.NoError(t, err)

	assert.Equal(t, 2, spec.NumBytes)
	assert.Equal(t, 9, spec.NumMatrixPositions)
	assert.Equal(t, 16, spec.Width())

	// top-right switch (1, 7) is firmware index 6
	bits := make([]bool, 9)
	bits[2] = true
	c, err := spec.FromKmapOrder(bits)
	require.NoError(t, err)
	assert.Equal(t, 16, c.Len())
	assert.True(t, c.Pressed(6))
	assert.Equal(t, []byte{0x40, 0x00}, c.Bytes())

	_, err = NewChordSpec([]Pin{1, 2}, []Pin{5, 6, 7}, format)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'kmap_format' does not match")
}
