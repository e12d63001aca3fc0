package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

// The minimal encoder must never silently discard fields.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "registry",
		Message:    "Loaded model",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String(FieldKmap, "layouts/default.kmap"), "layouts/default.kmap"},
		{zap.Int(FieldCount, 42), "42"},
		{zap.Int64(FieldDurationMS, 7), "7ms"},
		{zap.String(FieldMode, "default"), "mode=default"},
		{zap.Bool("with_banner", false), "with_banner=false"},
		{zap.Float64("ratio", 0.5), "ratio=0.5"},
		{zap.Int32("anagram", 3), "anagram=3"},
	}

	fields := make([]zapcore.Field, 0, len(testFields))
	for _, tf := range testFields {
		fields = append(fields, tf.field)
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	if err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	output := stripANSI(buf.String())

	for _, tf := range testFields {
		if !strings.Contains(output, tf.mustFind) {
			t.Errorf("output %q is missing %q", output, tf.mustFind)
		}
	}
	if !strings.Contains(output, "registry") {
		t.Errorf("output %q is missing logger name", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestMinimalEncoderLevels(t *testing.T) {
	encoder := newMinimalEncoder()

	tests := []struct {
		level zapcore.Level
		want  string
	}{
		{zapcore.WarnLevel, "WARN"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DebugLevel, "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			buf, err := encoder.EncodeEntry(zapcore.Entry{Level: tt.level, Time: time.Now(), Message: "m"}, nil)
			if err != nil {
				t.Fatalf("EncodeEntry() error = %v", err)
			}
			if !strings.Contains(stripANSI(buf.String()), tt.want) {
				t.Errorf("expected %s in %q", tt.want, buf.String())
			}
		})
	}

	buf, _ := encoder.EncodeEntry(zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "m"}, nil)
	if strings.Contains(stripANSI(buf.String()), "INFO") {
		t.Error("info level should not be labelled")
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("gruvbox")
	if colors() != gruvbox {
		t.Error("expected gruvbox palette")
	}

	SetTheme("no-such-theme")
	if colors() != gruvbox {
		t.Error("unknown theme should leave the palette unchanged")
	}
}
