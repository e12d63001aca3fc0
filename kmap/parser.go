// Package kmap parses kmap layout files into chords.
//
// A kmap file is a sequence of blocks. Each block is one line of
// whitespace-separated chord names followed by one body line per line of
// the configured kmap format. A body line holds the switch grid for every
// named chord side by side; '.' marks an unpressed switch and any other
// character a pressed one. Lines starting with '#' and blank lines are
// ignored everywhere.
package kmap

import (
	"io/fs"
	"strings"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/logger"
	"github.com/pipit-keyboard/chordc/types"
)

const (
	commentStart  = "#"
	unpressedChar = '.'
)

// NamedChord is one chord read from a kmap file.
type NamedChord struct {
	Name  types.Name
	Chord types.Chord
	Line  int // 1-based line of the block's name line
}

// Parser turns kmap text into chords in firmware order.
type Parser struct {
	itemsPerLine []int
	linesInBlock int
	spec         types.ChordSpec
}

// NewParser creates a parser for the given kmap format and chord spec.
func NewParser(format types.KmapFormat, spec types.ChordSpec) *Parser {
	return &Parser{
		itemsPerLine: format.ItemsPerLine(),
		linesInBlock: 1 + format.NumLines(), // 1 extra for the name line
		spec:         spec,
	}
}

type sourceLine struct {
	num   int
	words []string
}

// Parse reads every chord in text. path is used only for messages.
func (p *Parser) Parse(path string, text string) ([]NamedChord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.AssertionFailedf("kmap file is empty: %s", path)
	}

	var lines []sourceLine
	for i, raw := range strings.Split(text, "\n") {
		l := strings.TrimSpace(raw)
		if l == "" || strings.HasPrefix(l, commentStart) {
			continue
		}
		lines = append(lines, sourceLine{num: i + 1, words: strings.Fields(l)})
	}

	var out []NamedChord
	for start := 0; start < len(lines); start += p.linesInBlock {
		end := min(start+p.linesInBlock, len(lines))
		chords, err := p.parseSection(lines[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, chords...)
	}

	logger.ComponentLogger("kmap").Debugw("Parsed kmap",
		logger.FieldKmap, path,
		logger.FieldCount, len(out))
	return out, nil
}

// ParseFile reads and parses the kmap at path in fsys.
func (p *Parser) ParseFile(fsys fs.FS, path string) ([]NamedChord, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read kmap '%s'", path)
	}
	return p.Parse(path, string(data))
}

func (p *Parser) parseSection(section []sourceLine) ([]NamedChord, error) {
	if len(section) != p.linesInBlock {
		return nil, errors.NewSyntaxError(section[len(section)-1].num)
	}

	names := section[0].words
	numBlocks := len(names)
	blocks := make([][]bool, numBlocks)

	for l, line := range section[1:] {
		body := []rune(strings.Join(line.words, ""))
		numItems := p.itemsPerLine[l]
		if len(body) != numItems*numBlocks {
			return nil, errors.NewSyntaxError(line.num)
		}
		for b := 0; b < numBlocks; b++ {
			for _, ch := range body[b*numItems : (b+1)*numItems] {
				blocks[b] = append(blocks[b], ch != unpressedChar)
			}
		}
	}

	out := make([]NamedChord, 0, numBlocks)
	for b, name := range names {
		chord, err := p.spec.FromKmapOrder(blocks[b])
		if err != nil {
			return nil, err
		}
		out = append(out, NamedChord{
			Name:  types.Name(name),
			Chord: chord,
			Line:  section[0].num,
		})
	}
	return out, nil
}
