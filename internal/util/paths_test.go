package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataAndConfigDirHonorXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/conf")
	if got := DataDir("app"); got != filepath.Join("/tmp/data", "app") {
		t.Fatalf("DataDir = %q", got)
	}
	if got := ConfigDir("app"); got != filepath.Join("/tmp/conf", "app") {
		t.Fatalf("ConfigDir = %q", got)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	if got := DataDir("app"); got != filepath.Join(home, ".local", "share", "app") {
		t.Fatalf("DataDir = %q", got)
	}
}

func TestDocumentsDirFromUserDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	cfgDir := filepath.Join(home, ".config")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	content := "# comment\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "user-dirs.dirs"), []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got := DocumentsDir(); got != filepath.Join(home, "Docs") {
		t.Fatalf("DocumentsDir = %q", got)
	}
	if got := ReportsDir("app"); got != filepath.Join(home, "Docs", "APP") {
		t.Fatalf("ReportsDir = %q", got)
	}
}

func TestParseUserDirMissingKey(t *testing.T) {
	if got := parseUserDir("XDG_MUSIC_DIR=\"x\"", "XDG_DOCUMENTS_DIR"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
