package settings

import (
	"github.com/pipit-keyboard/chordc/ctree"
	"github.com/pipit-keyboard/chordc/types"
)

// Options is the [options] table.
type Options struct {
	ChordDelay    uint16    `toml:"chord_delay"`
	HeldDelay     uint16    `toml:"held_delay"`
	DebounceDelay uint16    `toml:"debounce_delay"`
	DebugMessages Verbosity `toml:"debug_messages"`
	BoardName     BoardName `toml:"board_name"`

	RowPins    []types.Pin      `toml:"row_pins"`
	ColumnPins []types.Pin      `toml:"column_pins"`
	KmapFormat [][][2]types.Pin `toml:"kmap_format"`

	RGBLedPins      []types.Pin `toml:"rgb_led_pins,omitempty"`
	BatteryLevelPin *types.Pin  `toml:"battery_level_pin,omitempty"`

	WordSpacePosition WordSpacePosition `toml:"word_space_position"`

	OutputDirectory string `toml:"output_directory"`
	TutorDirectory  string `toml:"tutor_directory"`

	EnableLEDTypingFeedback   bool `toml:"enable_led_typing_feedback"`
	EnableAudioTypingFeedback bool `toml:"enable_audio_typing_feedback"`
}

const (
	DefaultOutputDirectory = "pipit-firmware"
	DefaultTutorDirectory  = "tutor"
)

func (o *Options) setDefaults() {
	o.OutputDirectory = DefaultOutputDirectory
	o.TutorDirectory = DefaultTutorDirectory
}

// Format returns the kmap format as switch positions.
func (o *Options) Format() types.KmapFormat {
	format := make(types.KmapFormat, len(o.KmapFormat))
	for i, line := range o.KmapFormat {
		format[i] = make([]types.SwitchPos, len(line))
		for j, pair := range line {
			format[i][j] = types.SwitchPos{Row: pair[0], Column: pair[1]}
		}
	}
	return format
}

// ChordSpec derives the chord layout. It fails if the kmap format does not
// cover every matrix position exactly once.
func (o *Options) ChordSpec() (types.ChordSpec, error) {
	return types.NewChordSpec(o.RowPins, o.ColumnPins, o.Format())
}

func (o *Options) NumRows() int            { return len(o.RowPins) }
func (o *Options) NumColumns() int         { return len(o.ColumnPins) }
func (o *Options) NumMatrixPositions() int { return o.NumRows() * o.NumColumns() }
func (o *Options) NumBytesInChord() int {
	return types.NumBytesInChord(o.NumRows(), o.NumColumns())
}

// Tree renders the options for the main config header: the literal options
// first, then the values derived from them.
func (o *Options) Tree() ctree.Group {
	g := ctree.Group{
		ctree.Define{Name: "CHORD_DELAY", Value: itoa(int(o.ChordDelay))},
		ctree.Define{Name: "HELD_DELAY", Value: itoa(int(o.HeldDelay))},
		ctree.Define{Name: "DEBOUNCE_DELAY", Value: itoa(int(o.DebounceDelay))},
		ctree.Define{Name: "DEBUG_MESSAGES", Value: itoa(int(o.DebugMessages))},
		ctree.Define{Name: "WORD_SPACE_POSITION", Value: itoa(int(o.WordSpacePosition))},
		ctree.Ifdef{Name: o.BoardName.String(), Enabled: true},
		ctree.Array1D{Name: "row_pins", Values: ctree.Values(o.RowPins), IsExtern: true},
		ctree.Array1D{Name: "column_pins", Values: ctree.Values(o.ColumnPins), IsExtern: true},
		ctree.Ifdef{Name: "ENABLE_LED_TYPING_FEEDBACK", Enabled: o.EnableLEDTypingFeedback},
		ctree.Ifdef{Name: "ENABLE_AUDIO_TYPING_FEEDBACK", Enabled: o.EnableAudioTypingFeedback},
	}

	if o.RGBLedPins != nil {
		g = append(g, ctree.Array1D{Name: "rgb_led_pins", Values: ctree.Values(o.RGBLedPins), IsExtern: true})
	}
	if o.BatteryLevelPin != nil {
		g = append(g, ctree.ConstVar{
			Name:     "battery_level_pin",
			Type:     "uint8_t",
			Value:    itoa(int(*o.BatteryLevelPin)),
			IsExtern: true,
		})
	}

	return append(g,
		ctree.Define{Name: "NUM_ROWS", Value: itoa(o.NumRows())},
		ctree.Define{Name: "NUM_COLUMNS", Value: itoa(o.NumColumns())},
		ctree.Define{Name: "NUM_MATRIX_POSITIONS", Value: itoa(o.NumMatrixPositions())},
		ctree.Define{Name: "NUM_BYTES_IN_CHORD", Value: itoa(o.NumBytesInChord())},
		ctree.Define{Name: "NUM_RGB_LED_PINS", Value: itoa(len(o.RGBLedPins))},
		ctree.Ifdef{Name: "ENABLE_RGB_LED", Enabled: o.RGBLedPins != nil},
		ctree.Ifdef{Name: "HAS_BATTERY", Enabled: o.BatteryLevelPin != nil},
	)
}

// EarlyTree renders the flags firmware headers test before they include the
// main config: the board and the hardware features.
func (o *Options) EarlyTree() ctree.Group {
	return ctree.Group{
		ctree.Ifdef{Name: o.BoardName.String(), Enabled: true},
		ctree.Define{Name: "DEBUG_MESSAGES", Value: itoa(int(o.DebugMessages))},
		ctree.Ifdef{Name: "ENABLE_LED_TYPING_FEEDBACK", Enabled: o.EnableLEDTypingFeedback},
		ctree.Ifdef{Name: "ENABLE_AUDIO_TYPING_FEEDBACK", Enabled: o.EnableAudioTypingFeedback},
		ctree.Ifdef{Name: "ENABLE_RGB_LED", Enabled: o.RGBLedPins != nil},
		ctree.Ifdef{Name: "HAS_BATTERY", Enabled: o.BatteryLevelPin != nil},
	}
}
