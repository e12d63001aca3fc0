package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Checker diagnostics, errors with hints, final status
//	1 (-v)      - + Progress through compile stages, files written
//	2 (-vv)     - + Stage timing, config values loaded
//	3 (-vvv)    - + Per-kmap parse and per-mode render details
//	4 (-vvvv)   - + Huffman table and model dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputDiagnostics OutputCategory = iota // Checker findings
	OutputErrors                            // Errors with hints
	OutputUserStatus                        // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress     // Compile stage progress
	OutputFilesWritten // Paths of generated files

	// Level 2 (-vv) - Detailed
	OutputTiming // Stage timing
	OutputConfig // Config values loaded/applied

	// Level 3 (-vvv) - Debug
	OutputInternalOp // Per-kmap, per-mode internals

	// Level 4 (-vvvv) - Full dump
	OutputDataDump // Huffman table and model contents
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputDiagnostics: VerbosityUser,
	OutputErrors:      VerbosityUser,
	OutputUserStatus:  VerbosityUser,

	OutputProgress:     VerbosityInfo,
	OutputFilesWritten: VerbosityInfo,

	OutputTiming: VerbosityDebug,
	OutputConfig: VerbosityDebug,

	OutputInternalOp: VerbosityTrace,

	OutputDataDump: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputDiagnostics:  "diagnostics",
	OutputErrors:       "errors",
	OutputUserStatus:   "status",
	OutputProgress:     "progress",
	OutputFilesWritten: "files",
	OutputTiming:       "timing",
	OutputConfig:       "config",
	OutputInternalOp:   "internal",
	OutputDataDump:     "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
