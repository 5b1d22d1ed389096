package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Warning)
	logger.Info("hidden info")
	logger.Warningf("visible %s", "warning")

	out := buf.String()
	if strings.Contains(out, "hidden info") {
		t.Errorf("Info message should be filtered at Warning level, got %q", out)
	}
	if !strings.Contains(out, "visible warning") {
		t.Errorf("Expected warning message in output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("scanline %d", 42)
	if !strings.Contains(buf.String(), "scanline 42") {
		t.Errorf("Expected debug message at Debug level, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{" notice ", Notice, false},
		{"Warning", Warning, false},
		{"error", Error, false},
		{"verbose", Notice, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestSetLevel_SurvivesSinkChange(t *testing.T) {
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	SetLevel(Error)
	var buf bytes.Buffer
	SetSink(&buf)

	if GetLevel() != Error {
		t.Errorf("Expected level to stay Error after SetSink, got %v", GetLevel())
	}
	New("test").Warning("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}
