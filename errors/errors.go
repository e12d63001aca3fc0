// Package errors provides error handling for chordc.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context chains
//   - User-facing hints
//   - Assertion failures for internal invariant violations
//
// Errors fall into two groups. Configuration, lookup and syntax errors are
// recoverable and user-facing: they are wrapped with context at every stage
// so the final message reads as a causal chain, e.g.
//
//	failure to load chords: failure to parse kmap 'a.kmap': syntax error in kmap file near line 12
//
// Internal invariant violations (non-rectangular arrays, empty huffman
// alphabets, duplicate commands) are created with AssertionFailedf and
// detected with IsInternal. They are never decorated with hints.
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf                 = crdb.AssertionFailedf
	NewAssertionErrorWithWrappedErrf = crdb.NewAssertionErrorWithWrappedErrf
	HasAssertionFailure              = crdb.HasAssertionFailure
)

// Sentinel errors for the compiler's error taxonomy.
// Use these with errors.Is(); the constructors below mark new errors with them.
var (
	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")

	// ErrLookup indicates a name, chord, sequence or symbol has no entry
	ErrLookup = New("lookup failed")

	// ErrSyntax indicates a malformed input file
	ErrSyntax = New("syntax error")

	// ErrOutOfRange indicates a configuration value outside its allowed range
	ErrOutOfRange = New("value out of range")

	// ErrConfig indicates an invalid or inconsistent configuration
	ErrConfig = New("invalid configuration")
)

// IsInternal reports whether err stems from an internal invariant violation.
// Such errors indicate a defect in the compiler, not in the user's input.
func IsInternal(err error) bool {
	return err != nil && HasAssertionFailure(err)
}

// IsLookupError checks if an error is or wraps ErrLookup
func IsLookupError(err error) bool {
	return err != nil && Is(err, ErrLookup)
}

// IsSyntaxError checks if an error is or wraps ErrSyntax
func IsSyntaxError(err error) bool {
	return err != nil && Is(err, ErrSyntax)
}

// IsConfigError checks if an error is a configuration validation error,
// including out-of-range values.
func IsConfigError(err error) bool {
	return err != nil && IsAny(err, ErrConfig, ErrOutOfRange)
}

// NewLookupError reports that key has no entry in the named container.
func NewLookupError(key, container string) error {
	return Mark(Newf("failed to look up %q in %s", key, container), ErrLookup)
}

// NewSyntaxError reports a malformed kmap file near a 1-based line number.
func NewSyntaxError(line int) error {
	return Mark(Newf("syntax error in kmap file near line %d", line), ErrSyntax)
}

// NewOutOfRangeError reports a configuration value outside [min, max].
func NewOutOfRangeError(name string, value, min, max int) error {
	return Mark(Newf("%s is out of range: %d (must be between %d and %d)", name, value, min, max), ErrOutOfRange)
}

// NewConfigError creates a configuration error with a formatted message
func NewConfigError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrConfig)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrNotFound)
}
