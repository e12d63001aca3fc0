package ctree

import (
	"fmt"
	"strings"
	"unicode"
)

// Values formats each element with fmt.Sprint.
func Values[T any](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Bool renders a C++ boolean literal.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Initializer renders a brace initializer, e.g. {1, 2, 3}.
func Initializer(values ...string) string {
	return "{" + strings.Join(values, ", ") + "}"
}

// Identifier turns an arbitrary name into a valid upper case C identifier:
// letters and digits are kept, everything else becomes an underscore, and a
// leading digit gets an underscore prefix.
func Identifier(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	id := sb.String()
	if id == "" || unicode.IsDigit(rune(id[0])) {
		id = "_" + id
	}
	return id
}
