package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelPriority(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected int
	}{
		{Debug, 0},
		{Info, 1},
		{Warn, 2},
		{Error, 3},
		{LogLevel("unknown"), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := levelPriority(tt.level); got != tt.expected {
				t.Errorf("levelPriority(%s) = %d, want %d", tt.level, got, tt.expected)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	for input, want := range map[string]LogLevel{
		"debug": Debug, "info": Info, "warn": Warn, "error": Error, "bogus": Info,
	} {
		SetLevel(input)
		if got := Level(); got != want {
			t.Errorf("SetLevel(%q) -> %s, want %s", input, got, want)
		}
	}
}

func TestLogFiltersBelowMinimum(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel("warn")
	defer SetLevel("info")

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestInitWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(dir, false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Errorf("disk %s", "line")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "[ERROR] disk line") {
		t.Fatalf("log file missing line: %q", data)
	}
}
