package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
	}{
		{name: "JSON output mode", jsonOutput: true, verbosity: VerbosityUser},
		{name: "Console output mode", jsonOutput: false, verbosity: VerbosityDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			if err := Initialize(tt.jsonOutput, tt.verbosity); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			if Logger == nil {
				t.Fatal("Initialize() did not set global Logger")
			}
			if JSONOutput != tt.jsonOutput {
				t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
			}

			Logger.Sync()
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{VerbosityAll + 3, zapcore.DebugLevel},
		{-1, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		category  OutputCategory
		want      bool
	}{
		{"diagnostics always shown", VerbosityUser, OutputDiagnostics, true},
		{"progress hidden by default", VerbosityUser, OutputProgress, false},
		{"progress at -v", VerbosityInfo, OutputProgress, true},
		{"timing needs -vv", VerbosityInfo, OutputTiming, false},
		{"data dump at -vvvv", VerbosityAll, OutputDataDump, true},
		{"unknown category needs max verbosity", VerbosityTrace, OutputCategory(999), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldOutput(tt.verbosity, tt.category); got != tt.want {
				t.Errorf("ShouldOutput(%d, %s) = %v, want %v", tt.verbosity, CategoryName(tt.category), got, tt.want)
			}
		})
	}
}

func TestLoggingFunctionsWithNop(t *testing.T) {
	Logger = nil
	// Must not panic with a nil logger
	Infow("message", FieldCount, 1)
	Warnw("message")
	Debugf("message %d", 1)

	if err := Initialize(false, VerbosityUser); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	Infof("message %s", "ok")
	Errorw("message", FieldError, "boom")
	Cleanup()
}
