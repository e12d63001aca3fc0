package settings

import "github.com/pipit-keyboard/chordc/errors"

// Verbosity controls the firmware's serial debug output.
type Verbosity int

const (
	VerbosityNone Verbosity = iota
	VerbositySome
	VerbosityAll
)

var verbosityNames = []string{"None", "Some", "All"}

func (v Verbosity) String() string { return verbosityNames[v] }

func (v *Verbosity) UnmarshalText(text []byte) error {
	i, err := parseEnum("debug_messages", string(text), verbosityNames)
	*v = Verbosity(i)
	return err
}

func (v Verbosity) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// BoardName selects the target microcontroller board.
type BoardName int

const (
	FeatherM0BLE BoardName = iota
	TeensyLC
)

var boardNames = []string{"FEATHER_M0_BLE", "TEENSY_LC"}

func (b BoardName) String() string { return boardNames[b] }

func (b *BoardName) UnmarshalText(text []byte) error {
	i, err := parseEnum("board_name", string(text), boardNames)
	*b = BoardName(i)
	return err
}

func (b BoardName) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// WordSpacePosition says where the firmware types the space around a word.
type WordSpacePosition int

const (
	SpaceBefore WordSpacePosition = iota
	SpaceAfter
	SpaceNone
)

var wordSpaceNames = []string{"Before", "After", "None"}

func (w WordSpacePosition) String() string { return wordSpaceNames[w] }

func (w *WordSpacePosition) UnmarshalText(text []byte) error {
	i, err := parseEnum("word_space_position", string(text), wordSpaceNames)
	*w = WordSpacePosition(i)
	return err
}

func (w WordSpacePosition) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func parseEnum(field, value string, names []string) (int, error) {
	for i, n := range names {
		if n == value {
			return i, nil
		}
	}
	return 0, errors.WithHintf(
		errors.NewConfigError("invalid %s: %q", field, value),
		"valid values: %v", names)
}
