package types

import "github.com/pipit-keyboard/chordc/errors"

// ChordSpec holds everything derived from the matrix shape that is needed to
// build and encode chords.
type ChordSpec struct {
	NumBytes           int
	NumMatrixPositions int
	ToFirmwareOrder    *Permutation
}

// NumBytesInChord is the number of bytes needed to hold one bit per switch.
func NumBytesInChord(rows, columns int) int {
	return (rows*columns + 7) / 8
}

// NewChordSpec derives the chord layout from the configured pins and kmap
// format.
func NewChordSpec(rowPins, columnPins []Pin, format KmapFormat) (ChordSpec, error) {
	perm, err := NewPermutation(format.FlatOrder(), FirmwareOrder(rowPins, columnPins))
	if err != nil {
		return ChordSpec{}, errors.Wrap(err,
			"'kmap_format' does not match the pins in 'row_pins' and 'column_pins'")
	}
	return ChordSpec{
		NumBytes:           NumBytesInChord(len(rowPins), len(columnPins)),
		NumMatrixPositions: len(rowPins) * len(columnPins),
		ToFirmwareOrder:    perm,
	}, nil
}

// Width is the byte-aligned number of bits in a chord.
func (s ChordSpec) Width() int {
	return s.NumBytes * 8
}

// EmptyChord returns a chord of the spec's width with no switch pressed.
func (s ChordSpec) EmptyChord() Chord {
	return NewChord(s.Width())
}

// FromKmapOrder builds a chord from switch states listed in kmap order.
func (s ChordSpec) FromKmapOrder(bits []bool) (Chord, error) {
	ordered, err := s.ToFirmwareOrder.Apply(bits)
	if err != nil {
		return Chord{}, err
	}
	c := s.EmptyChord()
	copy(c.switches, ordered)
	return c, nil
}
