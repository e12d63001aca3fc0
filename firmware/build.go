// Package firmware turns a compiled keyboard model into the configuration
// sources the firmware is built with: auto_config.h and auto_config.cpp for
// the main configuration, and auto_config_early.h for the flags the
// firmware needs before anything else.
//
// The firmware's config_types.h is expected to declare:
//
//	struct HuffmanChar { uint32_t bits; uint8_t num_bits; uint8_t key_code; bool is_mod; };
//	struct KmapStruct {
//	    uint16_t num_chords;
//	    const uint8_t* chords;       // num_chords rows of 1 anagram byte + NUM_BYTES_IN_CHORD
//	    const uint32_t* seq_offsets; // num_chords+1 offsets, in bits if use_compression
//	    const uint8_t* sequences;
//	    bool use_compression;
//	    bool use_mods;
//	};
//	struct ModeStruct {
//	    uint8_t num_kmaps;
//	    const KmapStruct* const* kmaps; // [NUM_SEQ_TYPES][num_kmaps], NULL where empty
//	    const uint8_t* anagram_mask;
//	    const uint8_t* anagram_chords;  // [num anagram mods][NUM_BYTES_IN_CHORD]
//	    const uint8_t* mod_chords;      // [NUM_MODIFIERS][NUM_BYTES_IN_CHORD]
//	};
package firmware

import (
	"fmt"
	"time"

	"github.com/pipit-keyboard/chordc/ctree"
	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/huffman"
	"github.com/pipit-keyboard/chordc/logger"
	"github.com/pipit-keyboard/chordc/registry"
	"github.com/pipit-keyboard/chordc/types"
)

// DefaultFileBase names the main output files.
const DefaultFileBase = "auto_config"

// bannerPrefix starts the only line of generated output that changes
// between otherwise identical runs.
const bannerPrefix = " * Automatically generated by"

// Options control what Build emits.
type Options struct {
	// WithBanner adds a comment naming the generation time.
	WithBanner bool
	// FileBase names the main files; the early header gets an _early suffix.
	FileBase string
	// Now defaults to time.Now.
	Now func() time.Time
}

func (o Options) fileBase() string {
	if o.FileBase == "" {
		return DefaultFileBase
	}
	return o.FileBase
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// File is one generated source file.
type File struct {
	Name string
	Text string
}

// NewTable builds the Huffman table for every compressed sequence.
func NewTable(d *registry.AllData) (*huffman.Table, error) {
	keys := d.AllKeyPresses(true)
	if len(keys) == 0 {
		return nil, errors.WithHint(
			errors.NewConfigError("no key presses to encode"),
			"define at least one plain key, macro or dictionary word")
	}
	return huffman.NewTable(keys)
}

// Compile builds the Huffman table and the output files.
func Compile(d *registry.AllData, opts Options) ([]File, error) {
	table, err := NewTable(d)
	if err != nil {
		return nil, errors.Wrap(err, "failure to build huffman table")
	}
	return Build(d, table, opts)
}

// Build renders the output files: the main header and body, then the
// early header.
func Build(d *registry.AllData, table *huffman.Table, opts Options) ([]File, error) {
	log := logger.ComponentLogger("firmware")
	start := time.Now()

	var banner string
	if opts.WithBanner {
		banner = Banner(opts.now())
	}

	main, err := mainTree(d, table, banner)
	if err != nil {
		return nil, err
	}
	mainFmt, err := ctree.Render(main)
	if err != nil {
		return nil, errors.Wrap(err, "failure to render main config")
	}
	earlyFmt, err := ctree.Render(earlyTree(d, banner))
	if err != nil {
		return nil, errors.Wrap(err, "failure to render early config")
	}

	base := opts.fileBase()
	h, c := mainFmt.Files(base)
	earlyH, _ := earlyFmt.Files(base + "_early")
	files := []File{
		{Name: base + ".h", Text: h},
		{Name: base + ".cpp", Text: c},
		{Name: base + "_early.h", Text: earlyH},
	}

	log.Debugw("Rendered firmware config",
		logger.FieldCount, len(files),
		logger.FieldSymbols, len(table.Symbols()),
		logger.FieldMinBits, table.MinBitLength(),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return files, nil
}

// Banner is the comment at the top of every generated file.
func Banner(now time.Time) string {
	return fmt.Sprintf("/**\n%s chordc on:  %s\n * Do not make changes here, they will be overwritten.\n */\n\n",
		bannerPrefix, now.Format(time.ANSIC))
}

func mainTree(d *registry.AllData, table *huffman.Table, banner string) (ctree.Node, error) {
	huff, err := huffmanTree(table)
	if err != nil {
		return nil, errors.Wrap(err, "failure to render huffman table")
	}
	mods, err := modifiersTree(d)
	if err != nil {
		return nil, errors.Wrap(err, "failure to render modifiers")
	}
	modes, err := modesTree(d, table)
	if err != nil {
		return nil, errors.Wrap(err, "failure to render modes")
	}

	return ctree.Group{
		intro(banner),
		ctree.Namespace{
			Name: "conf",
			Body: ctree.Group{
				d.Options.Tree(),
				huff,
				mods,
				commandEnum(d),
				seqTypeEnum(),
				modeEnum(d),
				modes,
			},
		},
		debugMacros,
	}, nil
}

func earlyTree(d *registry.AllData, banner string) ctree.Node {
	g := ctree.Group{}
	if banner != "" {
		g = append(g, ctree.LiteralH(banner))
	}
	return append(g, ctree.LiteralH("#pragma once\n"), d.Options.EarlyTree())
}

func intro(banner string) ctree.Node {
	g := ctree.Group{}
	if banner != "" {
		g = append(g, ctree.LiteralC(banner), ctree.LiteralH(banner))
	}
	return append(g,
		ctree.LiteralH("#pragma once\n"),
		ctree.IncludeSelf{},
		ctree.IncludeH{Path: "<stdint.h>"},
		ctree.IncludeH{Path: `"config_types.h"`},
		ctree.LiteralH("typedef void (*voidFuncPtr)(void);\n"),
		keycodeDefinitions(),
	)
}

// keycodeDefinitions defines every keycode unless the platform already has
// them, judged by the first one.
func keycodeDefinitions() ctree.Node {
	codes := types.Keycodes()
	defs := make(ctree.Group, 0, len(codes))
	for _, k := range codes {
		defs = append(defs, ctree.Define{Name: k.Name, Value: fmt.Sprintf("0x%02X", k.Value)})
	}
	return ctree.Ifndef{Name: codes[0].Name, Body: defs}
}

var debugMacros = ctree.LiteralH(`
#if DEBUG_MESSAGES == 0
    #define DEBUG1(msg)
    #define DEBUG1_LN(msg)
    #define DEBUG2(msg)
    #define DEBUG2_LN(msg)
#else
   #define ENABLE_SERIAL_DEBUG
   #include <Arduino.h>
   #define DEBUG1(msg) Serial.print(msg)
   #define DEBUG1_LN(msg) Serial.println(msg)
   #if DEBUG_MESSAGES == 1
       #define DEBUG2(msg)
       #define DEBUG2_LN(msg)
   #else
       #define DEBUG2(msg) Serial.print(msg)
       #define DEBUG2_LN(msg) Serial.println(msg)
   #endif

#endif

`)
