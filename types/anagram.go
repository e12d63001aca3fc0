package types

import "github.com/pipit-keyboard/chordc/errors"

// AnagramNum disambiguates names that share the same base chord.
type AnagramNum uint8

// MaxAnagramNum is the largest anagram number the lookup table can encode.
const MaxAnagramNum AnagramNum = 15

// Validate rejects anagram numbers above MaxAnagramNum.
func (a AnagramNum) Validate() error {
	if a > MaxAnagramNum {
		return errors.NewOutOfRangeError("anagram number", int(a), 0, int(MaxAnagramNum))
	}
	return nil
}

// UpTo returns every anagram number from zero to a, in order.
func (a AnagramNum) UpTo() []AnagramNum {
	out := make([]AnagramNum, 0, int(a)+1)
	for i := 0; i <= int(a); i++ {
		out = append(out, AnagramNum(i))
	}
	return out
}
