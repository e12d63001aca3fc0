// Package huffman builds the prefix-free code table used to compress key
// sequences stored in the firmware.
//
// Every key press is encoded as the codes of its modifiers in declaration
// order followed by the code of its key. A press with modifiers but no key
// ends with the code of types.BlankKey, so the decoder always knows where one
// press stops and the next begins.
package huffman

import (
	"container/heap"
	"slices"
	"strings"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/types"
)

const tableName = "huffman code table"

// Symbol is one letter of the code alphabet.
type Symbol struct {
	Code  string
	IsMod bool
}

func (s Symbol) String() string {
	return s.Code
}

func compareSymbols(a, b Symbol) int {
	if c := strings.Compare(a.Code, b.Code); c != 0 {
		return c
	}
	switch {
	case a.IsMod == b.IsMod:
		return 0
	case !a.IsMod:
		return -1
	default:
		return 1
	}
}

// Table maps every symbol seen in the input to its bit code.
type Table struct {
	codes   map[Symbol][]bool
	symbols []Symbol
	minBits int
}

// NewTable counts every modifier and key in keys and builds the code table.
// An empty input is an internal error: a table needs at least one leaf.
func NewTable(keys []types.KeyPress) (*Table, error) {
	counts := make(map[Symbol]int)
	for _, kp := range keys {
		counts[Symbol{Code: kp.KeyOrBlank()}]++
		for _, m := range kp.Mods {
			counts[Symbol{Code: m, IsMod: true}]++
		}
	}
	if len(counts) == 0 {
		return nil, errors.AssertionFailedf("cannot build a huffman table from an empty alphabet")
	}

	symbols := make([]Symbol, 0, len(counts))
	for s := range counts {
		symbols = append(symbols, s)
	}
	slices.SortFunc(symbols, compareSymbols)

	t := &Table{
		codes:   make(map[Symbol][]bool, len(symbols)),
		symbols: symbols,
	}

	root := buildTree(symbols, counts)
	if root.leaf {
		// a lone symbol still needs one bit so the stream can be read
		t.codes[root.symbol] = []bool{false}
	} else {
		t.assign(root, nil)
	}

	t.minBits = -1
	for _, code := range t.codes {
		if t.minBits < 0 || len(code) < t.minBits {
			t.minBits = len(code)
		}
	}
	return t, nil
}

func (t *Table) assign(n *node, prefix []bool) {
	if n.leaf {
		t.codes[n.symbol] = prefix
		return
	}
	t.assign(n.left, append(slices.Clone(prefix), false))
	t.assign(n.right, append(slices.Clone(prefix), true))
}

// Bits returns the code of sym.
func (t *Table) Bits(sym Symbol) ([]bool, error) {
	code, ok := t.codes[sym]
	if !ok {
		return nil, errors.NewLookupError(sym.Code, tableName)
	}
	return slices.Clone(code), nil
}

// NumBits returns the length of the code of sym.
func (t *Table) NumBits(sym Symbol) (int, error) {
	code, ok := t.codes[sym]
	if !ok {
		return 0, errors.NewLookupError(sym.Code, tableName)
	}
	return len(code), nil
}

// MinBitLength is the length of the shortest code in the table.
func (t *Table) MinBitLength() int {
	return t.minBits
}

// Symbols returns every symbol in the table, sorted.
func (t *Table) Symbols() []Symbol {
	return slices.Clone(t.symbols)
}

// Uint32 returns the code of sym as an integer whose bit i is code bit i.
func (t *Table) Uint32(sym Symbol) (uint32, error) {
	code, ok := t.codes[sym]
	if !ok {
		return 0, errors.NewLookupError(sym.Code, tableName)
	}
	if len(code) > 32 {
		return 0, errors.Newf("huffman code for %s is %d bits long, more than fit in 32", sym.Code, len(code))
	}
	var v uint32
	for i, b := range code {
		if b {
			v |= 1 << i
		}
	}
	return v, nil
}

// node is a huffman tree node. Leaves carry a symbol, branches two children.
type node struct {
	weight int
	id     int // creation order, breaks weight ties
	leaf   bool
	symbol Symbol
	left   *node
	right  *node
}

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].id < h[j].id
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// buildTree merges the two lightest nodes until one remains. The first node
// popped becomes the left child.
func buildTree(symbols []Symbol, counts map[Symbol]int) *node {
	h := make(nodeHeap, 0, len(symbols))
	nextID := 0
	for _, s := range symbols {
		h = append(h, &node{weight: counts[s], id: nextID, leaf: true, symbol: s})
		nextID++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			weight: left.weight + right.weight,
			id:     nextID,
			left:   left,
			right:  right,
		})
		nextID++
	}
	return heap.Pop(&h).(*node)
}
