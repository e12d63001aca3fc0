package types

import (
	"testing"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyPress(t *testing.T) {
	tests := []struct {
		token string
		want  KeyPress
	}{
		{"KEY_A", KeyPress{Key: "KEY_A"}},
		{"MODIFIERKEY_SHIFT+KEY_A", KeyPress{Key: "KEY_A", Mods: []string{"MODIFIERKEY_SHIFT"}}},
		{"MODIFIERKEY_CTRL", KeyPress{Mods: []string{"MODIFIERKEY_CTRL"}}},
		{"MODIFIERKEY_CTRL + MODIFIERKEY_CTRL + KEY_Z", KeyPress{Key: "KEY_Z", Mods: []string{"MODIFIERKEY_CTRL"}}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseKeyPress(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyPressErrors(t *testing.T) {
	_, err := ParseKeyPress("KEY_NOPE")
	assert.True(t, errors.IsLookupError(err))

	_, err = ParseKeyPress("KEY_A+KEY_B")
	assert.True(t, errors.IsConfigError(err))

	_, err = ParseKeyPress("MODIFIERKEY_SHIFT+")
	assert.True(t, errors.IsConfigError(err))
}

func TestKeyPressFromChar(t *testing.T) {
	tests := []struct {
		char string
		want string
	}{
		{"a", "KEY_A"},
		{"Q", "MODIFIERKEY_SHIFT+KEY_Q"},
		{"7", "KEY_7"},
		{"?", "MODIFIERKEY_SHIFT+KEY_SLASH"},
		{"'", "KEY_QUOTE"},
		{" ", "KEY_SPACE"},
	}

	for _, tt := range tests {
		got, err := KeyPressFromChar(tt.char)
		require.NoError(t, err, tt.char)
		assert.Equal(t, tt.want, got.String(), tt.char)
	}

	_, err := KeyPressFromChar("é")
	assert.True(t, errors.IsLookupError(err))
	_, err = KeyPressFromChar("ab")
	assert.True(t, errors.IsLookupError(err))
}

func TestKeyOrBlank(t *testing.T) {
	assert.Equal(t, "KEY_A", NewKeyPress("KEY_A").KeyOrBlank())
	assert.Equal(t, BlankKey, NewKeyPress("", "MODIFIERKEY_ALT").KeyOrBlank())
	assert.True(t, KeyPress{}.IsEmpty())
}

func TestKeyPressEqualIgnoresModOrder(t *testing.T) {
	a := NewKeyPress("KEY_A", "MODIFIERKEY_CTRL", "MODIFIERKEY_ALT")
	b := NewKeyPress("KEY_A", "MODIFIERKEY_ALT", "MODIFIERKEY_CTRL")
	assert.True(t, a.Equal(b))
	assert.Equal(t, "MODIFIERKEY_CTRL+MODIFIERKEY_ALT+KEY_A", a.String())
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence([]string{"KEY_H", "KEY_I", "MODIFIERKEY_SHIFT+KEY_1"})
	require.NoError(t, err)
	assert.Len(t, seq, 3)

	_, err = seq.LoneKeyPress()
	assert.Error(t, err)

	_, err = ParseSequence([]string{"KEY_H", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key press 1")
}

func TestKeycodesTable(t *testing.T) {
	codes := Keycodes()
	require.NotEmpty(t, codes)
	assert.Equal(t, "KEY_A", codes[0].Name)

	seen := make(map[string]bool)
	for _, k := range codes {
		assert.False(t, seen[k.Name], "duplicate keycode %s", k.Name)
		seen[k.Name] = true
	}

	v, ok := KeycodeValue("MODIFIERKEY_SHIFT")
	assert.True(t, ok)
	assert.Equal(t, 0x02, v)
}

func TestSeqType(t *testing.T) {
	assert.Equal(t, "WORD_SEQ", Word.EnumVariant())
	assert.True(t, Macro.UsesCompression())
	assert.False(t, Command.UsesCompression())
	assert.False(t, Special.UsesCompression())
	assert.False(t, Command.UsesMods())
	assert.Len(t, AllSeqTypes, 5)
}

func TestNameSet(t *testing.T) {
	a := NewNameSet("x", "y", "z")
	b := NewNameSet("y")
	assert.Equal(t, []Name{"x", "z"}, a.Difference(b))
	assert.Equal(t, []Name{"x", "y", "z"}, a.Sorted())
	assert.Equal(t, []Name{"a", "b"}, SortNames([]Name{"b", "a"}))
}
