package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(GetLevel())

	logger := New("test")

	SetLevel(Notice)
	logger.Info("hidden message")
	logger.Notice("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("Expected notice message in output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("depth %d", 5)
	if !strings.Contains(buf.String(), "depth 5") {
		t.Errorf("Expected debug message in output, got %q", buf.String())
	}
}

func TestVerbosityLevel(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		veryVerbose bool
		expected    Level
	}{
		{"default", false, false, Notice},
		{"verbose", true, false, Info},
		{"very verbose", false, true, Debug},
		{"both", true, true, Debug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerbosityLevel(tt.verbose, tt.veryVerbose); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
