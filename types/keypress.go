package types

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pipit-keyboard/chordc/errors"
)

// BlankKey is the placeholder key code emitted after the modifiers of a key
// press that has no real key, so every encoded key press ends with a key.
const BlankKey = "0"

// KeyPress is one key with the modifiers held while it is pressed.
type KeyPress struct {
	Key  string
	Mods []string
}

// NewKeyPress builds a key press, dropping repeated modifiers while keeping
// their declaration order.
func NewKeyPress(key string, mods ...string) KeyPress {
	kp := KeyPress{Key: key}
	for _, m := range mods {
		if !slices.Contains(kp.Mods, m) {
			kp.Mods = append(kp.Mods, m)
		}
	}
	return kp
}

// ParseKeyPress parses a raw settings token such as
// "MODIFIERKEY_SHIFT+KEY_A". Every part must be a known keycode and at most
// one part may be a non-modifier key.
func ParseKeyPress(token string) (KeyPress, error) {
	var key string
	var mods []string
	for _, part := range strings.Split(token, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return KeyPress{}, errors.NewConfigError("empty key name in %q", token)
		}
		if !IsKeycode(part) {
			return KeyPress{}, errors.NewLookupError(part, "keycode table")
		}
		if strings.HasPrefix(part, ModifierPrefix) {
			mods = append(mods, part)
			continue
		}
		if key != "" {
			return KeyPress{}, errors.NewConfigError("key press %q names more than one key", token)
		}
		key = part
	}
	return NewKeyPress(key, mods...), nil
}

// KeyPressFromChar returns the key press that types the single character s.
func KeyPressFromChar(s string) (KeyPress, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return KeyPress{}, errors.NewLookupError(s, "character table")
	}
	switch {
	case r >= 'a' && r <= 'z':
		return NewKeyPress("KEY_" + string(r-'a'+'A')), nil
	case r >= 'A' && r <= 'Z':
		return NewKeyPress("KEY_"+string(r), "MODIFIERKEY_SHIFT"), nil
	}
	if key, ok := charKeys[r]; ok {
		return NewKeyPress(key), nil
	}
	if key, ok := shiftedKeys[r]; ok {
		return NewKeyPress(key, "MODIFIERKEY_SHIFT"), nil
	}
	return KeyPress{}, errors.NewLookupError(s, "character table")
}

// KeyOrBlank returns the key code, or BlankKey if the press has no key.
func (k KeyPress) KeyOrBlank() string {
	if k.Key == "" {
		return BlankKey
	}
	return k.Key
}

// IsEmpty reports whether the press has neither key nor modifiers.
func (k KeyPress) IsEmpty() bool {
	return k.Key == "" && len(k.Mods) == 0
}

// Equal compares key and modifiers, ignoring modifier order.
func (k KeyPress) Equal(other KeyPress) bool {
	if k.Key != other.Key || len(k.Mods) != len(other.Mods) {
		return false
	}
	for _, m := range k.Mods {
		if !slices.Contains(other.Mods, m) {
			return false
		}
	}
	return true
}

func (k KeyPress) String() string {
	parts := slices.Clone(k.Mods)
	if k.Key != "" {
		parts = append(parts, k.Key)
	}
	return strings.Join(parts, "+")
}
