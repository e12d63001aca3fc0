package types

import (
	"fmt"
	"strings"
)

// Chord is the set of switches pressed together, in firmware order, plus the
// anagram number that tells apart names sharing the same switches.
type Chord struct {
	switches []bool
	Anagram  AnagramNum
}

// NewChord returns a chord of the given width with no switch pressed.
func NewChord(width int) Chord {
	return Chord{switches: make([]bool, width)}
}

// ChordFromBools builds a chord from switch states already in firmware order.
func ChordFromBools(switches []bool) Chord {
	c := Chord{switches: make([]bool, len(switches))}
	copy(c.switches, switches)
	return c
}

// Len is the number of switch positions in the chord.
func (c Chord) Len() int {
	return len(c.switches)
}

// Pressed reports whether switch i is part of the chord.
func (c Chord) Pressed(i int) bool {
	return i < len(c.switches) && c.switches[i]
}

// Switches returns a copy of the switch states.
func (c Chord) Switches() []bool {
	out := make([]bool, len(c.switches))
	copy(out, c.switches)
	return out
}

// Intersect combines two chords into one where every switch of either must
// be pressed together. The result is as wide as the wider input and keeps the
// receiver's anagram number.
func (c Chord) Intersect(other Chord) Chord {
	width := max(len(c.switches), len(other.switches))
	out := Chord{switches: make([]bool, width), Anagram: c.Anagram}
	for i := range out.switches {
		out.switches[i] = c.Pressed(i) || other.Pressed(i)
	}
	return out
}

// WithAnagram returns a copy of the chord stamped with n.
func (c Chord) WithAnagram(n AnagramNum) Chord {
	out := ChordFromBools(c.switches)
	out.Anagram = n
	return out
}

// IsEmpty reports whether no switch is pressed.
func (c Chord) IsEmpty() bool {
	for _, s := range c.switches {
		if s {
			return false
		}
	}
	return true
}

// Base returns the chord with its anagram number cleared.
func (c Chord) Base() Chord {
	return c.WithAnagram(0)
}

// BaseEqual reports whether both chords press the same switches, ignoring
// anagram numbers.
func (c Chord) BaseEqual(other Chord) bool {
	return c.BaseKey() == other.BaseKey()
}

// Equal reports whether both chords press the same switches with the same
// anagram number.
func (c Chord) Equal(other Chord) bool {
	return c.Anagram == other.Anagram && c.BaseEqual(other)
}

// BaseKey is a comparable value identifying the pressed switches. Trailing
// unpressed positions do not affect it.
func (c Chord) BaseKey() string {
	b := c.Bytes()
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}

// Key is a comparable value identifying the chord including its anagram.
func (c Chord) Key() string {
	return fmt.Sprintf("%x/%d", c.BaseKey(), c.Anagram)
}

// Bytes packs the switches into bytes, least significant bit first: byte i
// holds switches 8i through 8i+7 and switch 8i is bit 0.
func (c Chord) Bytes() []byte {
	out := make([]byte, (len(c.switches)+7)/8)
	for i, s := range c.switches {
		if s {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

func (c Chord) String() string {
	var sb strings.Builder
	for _, s := range c.switches {
		if s {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	if c.Anagram != 0 {
		fmt.Fprintf(&sb, "/%d", c.Anagram)
	}
	return sb.String()
}
