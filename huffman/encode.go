package huffman

import (
	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/types"
)

// EncodeKeyPress returns the bits of one key press: its modifiers, then its
// key or the blank key.
func (t *Table) EncodeKeyPress(kp types.KeyPress) ([]bool, error) {
	if kp.IsEmpty() {
		return nil, errors.New("cannot encode an empty key press")
	}
	var bits []bool
	for _, m := range kp.Mods {
		code, err := t.Bits(Symbol{Code: m, IsMod: true})
		if err != nil {
			return nil, err
		}
		bits = append(bits, code...)
	}
	code, err := t.Bits(Symbol{Code: kp.KeyOrBlank()})
	if err != nil {
		return nil, err
	}
	return append(bits, code...), nil
}

// EncodeSequence concatenates the bits of every key press in seq.
func (t *Table) EncodeSequence(seq types.Sequence) ([]bool, error) {
	var bits []bool
	for _, kp := range seq {
		b, err := t.EncodeKeyPress(kp)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s", kp)
		}
		bits = append(bits, b...)
	}
	return bits, nil
}

// Pack stores bits in bytes, least significant bit first: bit i goes to byte
// i/8 at position i%8. The last byte is zero padded.
func Pack(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

// Unpack reverses Pack, returning the first n bits of data.
func Unpack(data []byte, n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = data[i/8]&(1<<(i%8)) != 0
	}
	return bits
}

// SequenceBytes encodes seq and packs it, also returning the bit length.
func (t *Table) SequenceBytes(seq types.Sequence) ([]byte, int, error) {
	bits, err := t.EncodeSequence(seq)
	if err != nil {
		return nil, 0, err
	}
	return Pack(bits), len(bits), nil
}

// Decode reads key presses back out of an encoded stream the way the
// firmware does: read the minimum code length, then extend one bit at a time
// until the bits read so far match a code.
func (t *Table) Decode(bits []bool) (types.Sequence, error) {
	byCode := make(map[string]Symbol, len(t.codes))
	for s, code := range t.codes {
		byCode[bitString(code)] = s
	}

	var seq types.Sequence
	var mods []string
	pos := 0
	for pos < len(bits) {
		n := t.minBits
		var sym Symbol
		found := false
		for ; pos+n <= len(bits); n++ {
			if s, ok := byCode[bitString(bits[pos:pos+n])]; ok {
				sym, found = s, true
				break
			}
		}
		if !found {
			return nil, errors.Newf("no huffman code matches the bits at offset %d", pos)
		}
		pos += n

		if sym.IsMod {
			mods = append(mods, sym.Code)
			continue
		}
		key := sym.Code
		if key == types.BlankKey {
			key = ""
		}
		seq = append(seq, types.NewKeyPress(key, mods...))
		mods = nil
	}
	if len(mods) > 0 {
		return nil, errors.New("encoded stream ends with modifiers but no key")
	}
	return seq, nil
}

func bitString(bits []bool) string {
	b := make([]byte, len(bits))
	for i, v := range bits {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
