package types

import "github.com/pipit-keyboard/chordc/errors"

// Sequence is what gets typed when a chord fires.
type Sequence []KeyPress

// ParseSequence parses a list of raw key press tokens.
func ParseSequence(tokens []string) (Sequence, error) {
	seq := make(Sequence, 0, len(tokens))
	for i, tok := range tokens {
		kp, err := ParseKeyPress(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "key press %d", i)
		}
		seq = append(seq, kp)
	}
	return seq, nil
}

// LoneKeyPress returns the only key press of a one-element sequence.
func (s Sequence) LoneKeyPress() (KeyPress, error) {
	if len(s) != 1 {
		return KeyPress{}, errors.Newf("expected a single key press, found %d", len(s))
	}
	return s[0], nil
}

// Equal compares two sequences press by press.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
