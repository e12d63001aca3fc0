package settings

import (
	"strings"
	"testing"

	"github.com/pipit-keyboard/chordc/ctree"
	"github.com/pipit-keyboard/chordc/errors"
	chordtest "github.com/pipit-keyboard/chordc/internal/testing"
	"github.com/pipit-keyboard/chordc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Settings {
	t.Helper()
	s, err := Load(chordtest.KeyboardFS(), chordtest.SettingsPath)
	require.NoError(t, err)
	return s
}

func TestLoadFixture(t *testing.T) {
	s := loadFixture(t)

	assert.Equal(t, uint16(30), s.Options.ChordDelay)
	assert.Equal(t, VerbosityNone, s.Options.DebugMessages)
	assert.Equal(t, TeensyLC, s.Options.BoardName)
	assert.Equal(t, SpaceAfter, s.Options.WordSpacePosition)
	assert.Equal(t, []types.Pin{1, 2}, s.Options.RowPins)
	require.NotNil(t, s.Options.BatteryLevelPin)
	assert.Equal(t, types.Pin(9), *s.Options.BatteryLevelPin)
	assert.Nil(t, s.Options.RGBLedPins)
	assert.Equal(t, DefaultOutputDirectory, s.Options.OutputDirectory)
	assert.Equal(t, DefaultTutorDirectory, s.Options.TutorDirectory)

	assert.Equal(t, []types.ModeName{"default", "gaming"}, s.ModeNames())
	assert.Equal(t, []types.KmapPath{
		"layouts/letters.kmap",
		"layouts/commands.kmap",
		"layouts/gaming.kmap",
	}, s.KmapPaths())
	assert.True(t, s.Modes["default"].Keymaps[0].UseWords)
	assert.False(t, s.Modes["default"].Keymaps[1].UseWords)

	require.Len(t, s.Dictionary, 3)
	assert.Equal(t, "cat", s.Dictionary[0].ChordSpelling())
	assert.Equal(t, types.AnagramNum(1), s.Dictionary[1].AnagramNum())
	assert.Equal(t, "ot", s.Dictionary[2].ChordSpelling())
	assert.True(t, s.Dictionary[2].HasAlternateChord())

	assert.Equal(t, []string{"MODIFIERKEY_SHIFT+KEY_H", "KEY_E", "KEY_L", "KEY_L", "KEY_O"}, s.Macros["hello"])
}

func TestUnknownFieldsRejected(t *testing.T) {
	text := strings.Replace(chordtest.Settings, "chord_delay = 30", "chord_delay = 30\nchrod_delay = 31", 1)

	_, err := Parse(strings.NewReader(text))
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "unknown fields")
}

func TestInvalidEnumRejected(t *testing.T) {
	text := strings.Replace(chordtest.Settings, `board_name = "TEENSY_LC"`, `board_name = "ARDUINO_UNO"`, 1)

	_, err := Parse(strings.NewReader(text))
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr string
	}{
		{"anagram out of range", "anagram = 1", "anagram = 16", "anagram number is out of range: 16"},
		{"pin missing from matrix", "[2, 8]]", "[3, 8]]", "pin pair (3, 8) not found"},
		{"rgb pins", "battery_level_pin = 9", "rgb_led_pins = [1, 2]", "exactly 3 pins"},
		{"duplicate command", `"switch_to_default"]`, `"switch_to_gaming"]`, "listed twice"},
		{"command identifier", `"switch_to_default"]`, `"switch-to-default"]`, "not a valid identifier"},
		{"mode identifier", "[modes.gaming]", "[modes.2gaming]", "not a valid identifier"},
		{"compiler constraint", "word_modifiers", "compiler_version = \"nonsense\"\nword_modifiers", "invalid compiler_version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Replace(chordtest.Settings, tt.from, tt.to, 1)
			require.NotEqual(t, chordtest.Settings, text)

			_, err := Parse(strings.NewReader(text))
			require.Error(t, err)
			assert.True(t, errors.IsConfigError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMissingSections(t *testing.T) {
	_, err := Parse(strings.NewReader(`
[options]
row_pins = [1]
column_pins = [2]
kmap_format = [[[1, 2]]]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required section: [modes]")
}

func TestOptionsTree(t *testing.T) {
	s := loadFixture(t)

	f, err := ctree.Render(s.Options.Tree())
	require.NoError(t, err)

	for _, want := range []string{
		"#define CHORD_DELAY 30\n",
		"#define DEBUG_MESSAGES 0\n",
		"#define WORD_SPACE_POSITION 1\n",
		"#define TEENSY_LC\n",
		"extern const uint8_t row_pins[];\n",
		"extern const uint8_t battery_level_pin;\n",
		"#define NUM_ROWS 2\n",
		"#define NUM_COLUMNS 4\n",
		"#define NUM_MATRIX_POSITIONS 8\n",
		"#define NUM_BYTES_IN_CHORD 1\n",
		"#define NUM_RGB_LED_PINS 0\n",
		"#define HAS_BATTERY\n",
	} {
		assert.Contains(t, f.H, want)
	}
	assert.NotContains(t, f.H, "ENABLE_RGB_LED")
	assert.NotContains(t, f.H, "rgb_led_pins")
	assert.Contains(t, f.C, "extern const uint8_t battery_level_pin = 9;\n")
	assert.Contains(t, f.C, "extern const uint8_t column_pins[] = {\n 5, 6, 7, 8, \n};\n")
}

func TestOptionsEarlyTree(t *testing.T) {
	s := loadFixture(t)
	s.Options.DebugMessages = VerbosityAll

	f, err := ctree.Render(s.Options.EarlyTree())
	require.NoError(t, err)
	assert.Equal(t, "#define TEENSY_LC\n#define DEBUG_MESSAGES 2\n#define HAS_BATTERY\n", f.H)
	assert.Empty(t, f.C)
}
