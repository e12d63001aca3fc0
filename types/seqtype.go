package types

import "strings"

// SeqType classifies a sequence by what it is used for.
type SeqType int

const (
	Plain SeqType = iota
	Word
	Macro
	Command
	Special
)

// AllSeqTypes lists every sequence type in enum order.
var AllSeqTypes = []SeqType{Plain, Word, Macro, Command, Special}

var seqTypeNames = map[SeqType]string{
	Plain:   "plain",
	Word:    "word",
	Macro:   "macro",
	Command: "command",
	Special: "special",
}

func (t SeqType) String() string {
	if s, ok := seqTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// EnumVariant is the C enum variant naming this type, e.g. PLAIN_SEQ.
func (t SeqType) EnumVariant() string {
	return strings.ToUpper(t.String()) + "_SEQ"
}

// UsesCompression reports whether sequences of this type are Huffman coded.
// Commands and specials are stored as raw bytes.
func (t SeqType) UsesCompression() bool {
	switch t {
	case Plain, Word, Macro:
		return true
	default:
		return false
	}
}

// UsesMods reports whether stored key presses carry modifiers.
func (t SeqType) UsesMods() bool {
	return t != Command
}
