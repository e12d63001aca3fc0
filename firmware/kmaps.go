package firmware

import (
	"fmt"
	"math"

	"github.com/pipit-keyboard/chordc/ctree"
	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/huffman"
	"github.com/pipit-keyboard/chordc/registry"
	"github.com/pipit-keyboard/chordc/types"
)

const null = "NULL"

// kmapStructs maps a kmap and sequence type to the name of its KmapStruct.
// Missing entries mean the kmap has no chords of that type.
type kmapStructs map[types.KmapPath]map[types.SeqType]string

func modesTree(d *registry.AllData, table *huffman.Table) (ctree.Node, error) {
	maxLen := d.MaxSequenceLength()
	if maxLen > math.MaxUint8 {
		return nil, errors.NewOutOfRangeError("longest sequence length", maxLen, 0, math.MaxUint8)
	}
	g := ctree.Group{
		ctree.ConstVar{
			Name:     "MAX_KEYS_IN_SEQUENCE",
			Type:     "uint8_t",
			Value:    fmt.Sprint(maxLen),
			IsExtern: true,
		},
	}

	structs := make(kmapStructs)
	for _, path := range d.KmapPaths() {
		tree, names, err := kmapTree(d, table, path)
		if err != nil {
			return nil, errors.Wrapf(err, "kmap '%s'", path)
		}
		g = append(g, tree)
		structs[path] = names
	}

	var modeStructs []string
	for _, mode := range d.ModeNames() {
		tree, name, err := modeTree(d, mode, structs)
		if err != nil {
			return nil, errors.Wrapf(err, "mode %q", mode)
		}
		g = append(g, tree)
		modeStructs = append(modeStructs, "&"+name)
	}

	return append(g, ctree.Array1D{
		Name:     "mode_structs",
		Type:     "ModeStruct*",
		Values:   modeStructs,
		IsExtern: true,
	}), nil
}

// kmapTree renders one KmapStruct per sequence type that has chords in the
// kmap.
func kmapTree(d *registry.AllData, table *huffman.Table, path types.KmapPath) (ctree.Node, map[types.SeqType]string, error) {
	nickname, err := d.KmapNickname(path)
	if err != nil {
		return nil, nil, err
	}
	chords := d.ChordsIn(path)

	g := ctree.Group{}
	names := make(map[types.SeqType]string)
	for _, t := range types.AllSeqTypes {
		seqs := d.SequencesOfType(t)
		var entries []types.Name
		for _, n := range d.ChordNames(path) {
			if _, ok := seqs[n]; ok {
				entries = append(entries, n)
			}
		}
		if len(entries) == 0 {
			continue
		}
		if len(entries) > math.MaxUint16 {
			return nil, nil, errors.NewOutOfRangeError(t.String()+" chords in one kmap", len(entries), 0, math.MaxUint16)
		}

		prefix := fmt.Sprintf("%s_%s", t, nickname)
		rows := make([][]string, len(entries))
		ordered := make([]types.Sequence, len(entries))
		for i, n := range entries {
			c := chords[n]
			rows[i] = append([]string{fmt.Sprint(c.Anagram)}, ctree.Values(c.Bytes())...)
			ordered[i] = seqs[n]
		}

		data, offsets, err := encodeSequences(t, ordered, table)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s sequences", t)
		}
		data = nonEmpty(data, "0")

		structName := prefix + "_struct"
		g = append(g,
			ctree.Array2D{Name: prefix + "_chords", Values: rows},
			ctree.Array1D{Name: prefix + "_seq_offsets", Type: "uint32_t", Values: ctree.Values(offsets)},
			ctree.Array1D{Name: prefix + "_sequences", Values: data},
			ctree.ConstVar{
				Name: structName,
				Type: "KmapStruct",
				Value: ctree.Initializer(
					fmt.Sprint(len(entries)),
					fmt.Sprintf("&%s_chords[0][0]", prefix),
					prefix+"_seq_offsets",
					prefix+"_sequences",
					ctree.Bool(t.UsesCompression()),
					ctree.Bool(t.UsesMods()),
				),
			},
		)
		names[t] = structName
	}
	return g, names, nil
}

// encodeSequences lays the sequences out one after another. Compressed types
// form one Huffman bit stream with offsets in bits; raw types store a key
// byte, plus a modifier byte if the type uses modifiers, per key press, with
// offsets in bytes. There is one more offset than sequences.
func encodeSequences(t types.SeqType, seqs []types.Sequence, table *huffman.Table) ([]string, []uint32, error) {
	offsets := make([]uint32, 0, len(seqs)+1)
	if t.UsesCompression() {
		var stream []bool
		for _, seq := range seqs {
			offsets = append(offsets, uint32(len(stream)))
			bits, err := table.EncodeSequence(seq)
			if err != nil {
				return nil, nil, err
			}
			stream = append(stream, bits...)
		}
		offsets = append(offsets, uint32(len(stream)))
		return ctree.Values(huffman.Pack(stream)), offsets, nil
	}

	var data []string
	for _, seq := range seqs {
		offsets = append(offsets, uint32(len(data)))
		for _, kp := range seq {
			data = append(data, keyCode(kp.KeyOrBlank()))
			if t.UsesMods() {
				data = append(data, modsCode(kp.Mods))
			}
		}
	}
	offsets = append(offsets, uint32(len(data)))
	return data, offsets, nil
}

func chordRows(chords []types.Chord) [][]string {
	rows := make([][]string, len(chords))
	for i, c := range chords {
		rows[i] = ctree.Values(c.Bytes())
	}
	return rows
}

// modeTree renders the lookup tables of one mode and its ModeStruct.
func modeTree(d *registry.AllData, mode types.ModeName, structs kmapStructs) (ctree.Node, string, error) {
	kmaps, err := d.KmapsForMode(mode)
	if err != nil {
		return nil, "", err
	}
	modChords, err := d.ModChords(mode)
	if err != nil {
		return nil, "", err
	}
	anagramChords, err := d.AnagramChords(mode)
	if err != nil {
		return nil, "", err
	}
	mask, err := d.AnagramMask(mode)
	if err != nil {
		return nil, "", err
	}

	prefix := string(mode)
	rows := make([][]string, len(types.AllSeqTypes))
	for i, t := range types.AllSeqTypes {
		for _, k := range kmaps {
			name, ok := structs[k.Path][t]
			if ok {
				rows[i] = append(rows[i], "&"+name)
			} else {
				rows[i] = append(rows[i], null)
			}
		}
	}

	g := ctree.Group{
		ctree.Array2D{Name: prefix + "_mode_kmaps", Type: "KmapStruct*", Values: rows},
		ctree.Array1D{Name: prefix + "_anagram_mask", Values: ctree.Values(mask.Bytes())},
	}

	anagramRef := null
	if len(anagramChords) > 0 {
		g = append(g, ctree.Array2D{Name: prefix + "_anagram_chords", Values: chordRows(anagramChords)})
		anagramRef = fmt.Sprintf("&%s_anagram_chords[0][0]", prefix)
	}
	modRef := null
	if len(modChords) > 0 {
		g = append(g, ctree.Array2D{Name: prefix + "_mod_chords", Values: chordRows(modChords)})
		modRef = fmt.Sprintf("&%s_mod_chords[0][0]", prefix)
	}

	structName := prefix + "_mode_struct"
	g = append(g, ctree.ConstVar{
		Name: structName,
		Type: "ModeStruct",
		Value: ctree.Initializer(
			fmt.Sprint(len(kmaps)),
			fmt.Sprintf("&%s_mode_kmaps[0][0]", prefix),
			prefix+"_anagram_mask",
			anagramRef,
			modRef,
		),
	})
	return g, structName, nil
}
