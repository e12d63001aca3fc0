package types

import (
	"github.com/pipit-keyboard/chordc/errors"
)

// Permutation maps kmap-order switch indices to firmware-order indices.
// It is strictly bijective: every firmware index has exactly one kmap index.
type Permutation struct {
	forward []int
	inverse []int
}

// NewPermutation builds the permutation taking positions in from to their
// index in to. Both lists must hold the same switches, each exactly once.
func NewPermutation(from, to []SwitchPos) (*Permutation, error) {
	index := make(map[SwitchPos]int, len(to))
	for i, pos := range to {
		if _, dup := index[pos]; dup {
			return nil, errors.NewConfigError("pin pair %s appears twice in firmware order", pos)
		}
		index[pos] = i
	}

	p := &Permutation{
		forward: make([]int, len(from)),
		inverse: make([]int, len(to)),
	}
	for i := range p.inverse {
		p.inverse[i] = -1
	}

	for i, pos := range from {
		j, ok := index[pos]
		if !ok {
			return nil, errors.NewConfigError("pin pair %s not found in 'row_pins' and 'column_pins'", pos)
		}
		if p.inverse[j] != -1 {
			return nil, errors.NewConfigError("pin pair %s appears twice in kmap format", pos)
		}
		p.forward[i] = j
		p.inverse[j] = i
	}

	if len(from) != len(to) {
		return nil, errors.WithHintf(
			errors.NewConfigError("kmap format lists %d switches but the matrix has %d", len(from), len(to)),
			"every (row, column) pin pair must appear exactly once in 'kmap_format'")
	}
	return p, nil
}

// Len is the number of switches the permutation covers.
func (p *Permutation) Len() int {
	return len(p.forward)
}

// Forward returns the firmware index of kmap index i.
func (p *Permutation) Forward(i int) int {
	return p.forward[i]
}

// Inverse returns the kmap index of firmware index j.
func (p *Permutation) Inverse(j int) int {
	return p.inverse[j]
}

// Apply reorders bits given in kmap order into firmware order.
func (p *Permutation) Apply(bits []bool) ([]bool, error) {
	if len(bits) != len(p.forward) {
		return nil, errors.AssertionFailedf("permutation of length %d applied to %d bits", len(p.forward), len(bits))
	}
	out := make([]bool, len(bits))
	for i, b := range bits {
		out[p.forward[i]] = b
	}
	return out, nil
}

// Unapply reorders bits given in firmware order back into kmap order.
func (p *Permutation) Unapply(bits []bool) ([]bool, error) {
	if len(bits) != len(p.inverse) {
		return nil, errors.AssertionFailedf("permutation of length %d applied to %d bits", len(p.inverse), len(bits))
	}
	out := make([]bool, len(bits))
	for j, b := range bits {
		out[p.inverse[j]] = b
	}
	return out, nil
}
