package testing

import (
	"testing/fstest"
)

// SettingsPath is where KeyboardFS keeps the settings file.
const SettingsPath = "keyboard/settings.toml"

// Settings describes a 2x4 matrix with two modes. The plain key z has no
// chord anywhere.
const Settings = `word_modifiers = ["nospace", "capital"]
anagram_modifiers = ["anagram1"]
commands = ["switch_to_gaming", "switch_to_default"]

[options]
chord_delay = 30
held_delay = 400
debounce_delay = 5
debug_messages = "None"
board_name = "TEENSY_LC"
row_pins = [1, 2]
column_pins = [5, 6, 7, 8]
kmap_format = [
  [[1, 5], [1, 6], [1, 7], [1, 8]],
  [[2, 5], [2, 6], [2, 7], [2, 8]],
]
battery_level_pin = 9
word_space_position = "After"

[modes.default]
keymaps = [
  { file = "layouts/letters.kmap", use_words = true },
  { file = "layouts/commands.kmap" },
]

[modes.gaming]
keymaps = [
  { file = "layouts/gaming.kmap" },
  { file = "layouts/commands.kmap" },
]

[plain_keys]
a = "KEY_A"
c = "KEY_C"
t = "KEY_T"
o = "KEY_O"
z = "KEY_Z"
space = "KEY_SPACE"

[plain_modifiers]
shift = "MODIFIERKEY_SHIFT"

[macros]
hello = ["MODIFIERKEY_SHIFT+KEY_H", "KEY_E", "KEY_L", "KEY_L", "KEY_O"]

[[dictionary]]
word = "cat"

[[dictionary]]
word = "act"
anagram = 1

[[dictionary]]
word = "to"
chord = "ot"
`

// LettersKmap holds the letters, modifiers and the macro.
const LettersKmap = `# letters
a     c     t     o
X...  .X..  ..X.  ...X
....  ....  ....  ....

space  shift  nospace  capital
....   ....   ....     ....
X...   .X..   ..X.     ...X

anagram1  hello
X..X      XXXX
X..X      ....
`

// GamingKmap moves a and space.
const GamingKmap = `a     space
X...  ....
X...  XX..
`

// CommandsKmap is shared by both modes.
const CommandsKmap = `switch_to_gaming  switch_to_default
XXXX              XXXX
XXXX              XX..
`

// KeyboardFS returns a filesystem holding the settings and its kmaps.
func KeyboardFS() fstest.MapFS {
	return fstest.MapFS{
		SettingsPath:                     {Data: []byte(Settings)},
		"keyboard/layouts/letters.kmap":  {Data: []byte(LettersKmap)},
		"keyboard/layouts/gaming.kmap":   {Data: []byte(GamingKmap)},
		"keyboard/layouts/commands.kmap": {Data: []byte(CommandsKmap)},
	}
}
