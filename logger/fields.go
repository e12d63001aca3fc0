package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across chordc.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldStage     = "stage"

	// Model
	FieldKmap    = "kmap"
	FieldMode    = "mode"
	FieldName    = "name"
	FieldSeqType = "seq_type"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount   = "count"
	FieldSymbols = "symbols"
	FieldMinBits = "min_bits"

	// Files and paths
	FieldFile = "file"
	FieldLine = "line"
	FieldDir  = "dir"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("kmap")
//	log.Debugw("Parsed kmap", logger.FieldFile, path, logger.FieldCount, n)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	kmapLogger := logger.ChildLogger(base, logger.FieldKmap, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
