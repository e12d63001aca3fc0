package types

// Keycode is a named USB HID usage code, as #defined for the firmware.
type Keycode struct {
	Name  string
	Value int
}

// ModifierPrefix starts the name of every modifier keycode.
const ModifierPrefix = "MODIFIERKEY_"

// keycodes lists every key and modifier the settings file may name. The
// first entry doubles as the include guard for the generated definitions.
var keycodes = []Keycode{
	{"KEY_A", 4}, {"KEY_B", 5}, {"KEY_C", 6}, {"KEY_D", 7},
	{"KEY_E", 8}, {"KEY_F", 9}, {"KEY_G", 10}, {"KEY_H", 11},
	{"KEY_I", 12}, {"KEY_J", 13}, {"KEY_K", 14}, {"KEY_L", 15},
	{"KEY_M", 16}, {"KEY_N", 17}, {"KEY_O", 18}, {"KEY_P", 19},
	{"KEY_Q", 20}, {"KEY_R", 21}, {"KEY_S", 22}, {"KEY_T", 23},
	{"KEY_U", 24}, {"KEY_V", 25}, {"KEY_W", 26}, {"KEY_X", 27},
	{"KEY_Y", 28}, {"KEY_Z", 29},
	{"KEY_1", 30}, {"KEY_2", 31}, {"KEY_3", 32}, {"KEY_4", 33},
	{"KEY_5", 34}, {"KEY_6", 35}, {"KEY_7", 36}, {"KEY_8", 37},
	{"KEY_9", 38}, {"KEY_0", 39},
	{"KEY_ENTER", 40},
	{"KEY_ESC", 41},
	{"KEY_BACKSPACE", 42},
	{"KEY_TAB", 43},
	{"KEY_SPACE", 44},
	{"KEY_MINUS", 45},
	{"KEY_EQUAL", 46},
	{"KEY_LEFT_BRACE", 47},
	{"KEY_RIGHT_BRACE", 48},
	{"KEY_BACKSLASH", 49},
	{"KEY_SEMICOLON", 51},
	{"KEY_QUOTE", 52},
	{"KEY_TILDE", 53},
	{"KEY_COMMA", 54},
	{"KEY_PERIOD", 55},
	{"KEY_SLASH", 56},
	{"KEY_CAPS_LOCK", 57},
	{"KEY_F1", 58}, {"KEY_F2", 59}, {"KEY_F3", 60}, {"KEY_F4", 61},
	{"KEY_F5", 62}, {"KEY_F6", 63}, {"KEY_F7", 64}, {"KEY_F8", 65},
	{"KEY_F9", 66}, {"KEY_F10", 67}, {"KEY_F11", 68}, {"KEY_F12", 69},
	{"KEY_PRINTSCREEN", 70},
	{"KEY_SCROLL_LOCK", 71},
	{"KEY_PAUSE", 72},
	{"KEY_INSERT", 73},
	{"KEY_HOME", 74},
	{"KEY_PAGE_UP", 75},
	{"KEY_DELETE", 76},
	{"KEY_END", 77},
	{"KEY_PAGE_DOWN", 78},
	{"KEY_RIGHT", 79},
	{"KEY_LEFT", 80},
	{"KEY_DOWN", 81},
	{"KEY_UP", 82},
	{"MODIFIERKEY_CTRL", 0x01},
	{"MODIFIERKEY_SHIFT", 0x02},
	{"MODIFIERKEY_ALT", 0x04},
	{"MODIFIERKEY_GUI", 0x08},
	{"MODIFIERKEY_RIGHT_CTRL", 0x10},
	{"MODIFIERKEY_RIGHT_SHIFT", 0x20},
	{"MODIFIERKEY_RIGHT_ALT", 0x40},
	{"MODIFIERKEY_RIGHT_GUI", 0x80},
}

var keycodeIndex = func() map[string]int {
	m := make(map[string]int, len(keycodes))
	for _, k := range keycodes {
		m[k.Name] = k.Value
	}
	return m
}()

// Keycodes returns the keycode table in definition order.
func Keycodes() []Keycode {
	out := make([]Keycode, len(keycodes))
	copy(out, keycodes)
	return out
}

// IsKeycode reports whether name is a known key or modifier code.
func IsKeycode(name string) bool {
	_, ok := keycodeIndex[name]
	return ok
}

// KeycodeValue returns the HID value of a named keycode.
func KeycodeValue(name string) (int, bool) {
	v, ok := keycodeIndex[name]
	return v, ok
}

// charKeys maps unshifted characters to their key.
var charKeys = map[rune]string{
	' ': "KEY_SPACE", '\n': "KEY_ENTER", '\t': "KEY_TAB",
	'-': "KEY_MINUS", '=': "KEY_EQUAL",
	'[': "KEY_LEFT_BRACE", ']': "KEY_RIGHT_BRACE", '\\': "KEY_BACKSLASH",
	';': "KEY_SEMICOLON", '\'': "KEY_QUOTE", '`': "KEY_TILDE",
	',': "KEY_COMMA", '.': "KEY_PERIOD", '/': "KEY_SLASH",
	'1': "KEY_1", '2': "KEY_2", '3': "KEY_3", '4': "KEY_4", '5': "KEY_5",
	'6': "KEY_6", '7': "KEY_7", '8': "KEY_8", '9': "KEY_9", '0': "KEY_0",
}

// shiftedKeys maps characters typed with shift held to their key.
var shiftedKeys = map[rune]string{
	'!': "KEY_1", '@': "KEY_2", '#': "KEY_3", '$': "KEY_4", '%': "KEY_5",
	'^': "KEY_6", '&': "KEY_7", '*': "KEY_8", '(': "KEY_9", ')': "KEY_0",
	'_': "KEY_MINUS", '+': "KEY_EQUAL",
	'{': "KEY_LEFT_BRACE", '}': "KEY_RIGHT_BRACE", '|': "KEY_BACKSLASH",
	':': "KEY_SEMICOLON", '"': "KEY_QUOTE", '~': "KEY_TILDE",
	'<': "KEY_COMMA", '>': "KEY_PERIOD", '?': "KEY_SLASH",
}
