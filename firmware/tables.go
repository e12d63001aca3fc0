package firmware

import (
	"fmt"
	"strings"

	"github.com/pipit-keyboard/chordc/ctree"
	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/huffman"
	"github.com/pipit-keyboard/chordc/registry"
	"github.com/pipit-keyboard/chordc/types"
)

const (
	modEnumType     = "mod_enum"
	commandEnumType = "command_enum"
	seqTypeEnumType = "seq_type_enum"
	modeEnumType    = "mode_enum"
)

// keyCode truncates a key, modifier or enum variant to the byte the firmware
// stores.
func keyCode(code string) string {
	return fmt.Sprintf("static_cast<uint8_t>(%s)", code)
}

// modsCode ors modifiers together, or is 0 without any.
func modsCode(mods []string) string {
	if len(mods) == 0 {
		return "0"
	}
	return keyCode(strings.Join(mods, "|"))
}

// nonEmpty pads values to one element, since C++ has no zero-length arrays.
// The firmware sizes these tables by their NUM_* define.
func nonEmpty(values []string, filler string) []string {
	if len(values) == 0 {
		return []string{filler}
	}
	return values
}

func modVariant(name types.Name) string  { return "MOD_" + name.Upper() }
func modeVariant(name types.Name) string { return name.Upper() + "_MODE" }

func huffmanTree(table *huffman.Table) (ctree.Node, error) {
	var entries []string
	for _, sym := range table.Symbols() {
		bits, err := table.Uint32(sym)
		if err != nil {
			return nil, err
		}
		n, err := table.NumBits(sym)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ctree.Initializer(
			fmt.Sprint(bits), fmt.Sprint(n), keyCode(sym.Code), ctree.Bool(sym.IsMod)))
	}
	return ctree.Group{
		ctree.ConstVar{
			Name:     "MIN_HUFFMAN_CODE_BIT_LEN",
			Type:     "uint8_t",
			Value:    fmt.Sprint(table.MinBitLength()),
			IsExtern: true,
		},
		ctree.Array1D{Name: "huffman_lookup", Type: "HuffmanChar", Values: entries, IsExtern: true},
	}, nil
}

func modifiersTree(d *registry.AllData) (ctree.Node, error) {
	variants := func(names []types.Name) []string {
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = modVariant(n)
		}
		return out
	}

	var plainKeys []string
	for _, name := range d.PlainModifiers() {
		seq, _, err := d.SequenceOfAnyType(name)
		if err != nil {
			return nil, err
		}
		kp, err := seq.LoneKeyPress()
		if err != nil {
			return nil, errors.Wrapf(err, "plain modifier %q", name)
		}
		plainKeys = append(plainKeys, modsCode(kp.Mods))
	}

	all := d.ModifierNames()
	noMod := fmt.Sprintf("static_cast<%s>(0)", modEnumType)
	return ctree.Group{
		ctree.EnumDecl{TypeName: modEnumType, Variants: variants(all)},
		ctree.Define{Name: "NUM_MODIFIERS", Value: fmt.Sprint(len(all))},
		ctree.Define{Name: "NUM_WORD_MODS", Value: fmt.Sprint(len(d.WordModifiers()))},
		ctree.Define{Name: "NUM_PLAIN_MODS", Value: fmt.Sprint(len(d.PlainModifiers()))},
		ctree.Define{Name: "NUM_ANAGRAM_MODS", Value: fmt.Sprint(len(d.AnagramModifiers()))},
		ctree.ConstVar{
			Name:     "MAX_ANAGRAM_NUM",
			Type:     "uint8_t",
			Value:    fmt.Sprint(d.MaxAnagramNum()),
			IsExtern: true,
		},
		ctree.Array1D{Name: "word_mods", Type: modEnumType, Values: nonEmpty(variants(d.WordModifiers()), noMod), IsExtern: true},
		ctree.Array1D{Name: "plain_mods", Type: modEnumType, Values: nonEmpty(variants(d.PlainModifiers()), noMod), IsExtern: true},
		ctree.Array1D{Name: "anagram_mods", Type: modEnumType, Values: nonEmpty(variants(d.AnagramModifiers()), noMod), IsExtern: true},
		ctree.Array1D{Name: "anagram_mod_numbers", Type: "uint8_t", Values: nonEmpty(ctree.Values(d.AnagramModNumbers()), "0"), IsExtern: true},
		ctree.Array1D{Name: "plain_mod_keys", Type: "uint8_t", Values: nonEmpty(plainKeys, "0"), IsExtern: true},
	}, nil
}

func commandEnum(d *registry.AllData) ctree.Node {
	var variants []string
	for _, c := range d.Commands() {
		variants = append(variants, c.Upper())
	}
	return ctree.Group{
		ctree.EnumDecl{TypeName: commandEnumType, Variants: variants},
		ctree.Define{Name: "NUM_COMMANDS", Value: fmt.Sprint(len(variants))},
	}
}

func seqTypeEnum() ctree.Node {
	var variants []string
	for _, t := range types.AllSeqTypes {
		variants = append(variants, t.EnumVariant())
	}
	return ctree.Group{
		ctree.EnumDecl{TypeName: seqTypeEnumType, Variants: variants},
		ctree.Define{Name: "NUM_SEQ_TYPES", Value: fmt.Sprint(len(variants))},
	}
}

func modeEnum(d *registry.AllData) ctree.Node {
	var variants []string
	for _, m := range d.ModeNames() {
		variants = append(variants, modeVariant(m))
	}
	return ctree.Group{
		ctree.EnumDecl{TypeName: modeEnumType, Variants: variants},
		ctree.Define{Name: "NUM_MODES", Value: fmt.Sprint(len(variants))},
	}
}
