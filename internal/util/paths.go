package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where app keeps its database and logs:
// $XDG_DATA_HOME/app, falling back to ~/.local/share/app.
func DataDir(app string) string {
	return xdgDir("XDG_DATA_HOME", app, ".local", "share")
}

// ConfigDir is $XDG_CONFIG_HOME/app, falling back to ~/.config/app.
func ConfigDir(app string) string {
	return xdgDir("XDG_CONFIG_HOME", app, ".config")
}

// ReportsDir is the folder exported sheets are written to by default.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

// DocumentsDir resolves the user's documents folder from the environment,
// then from ~/.config/user-dirs.dirs, then ~/Documents.
func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home := homeDir()
	if home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := parseUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func xdgDir(envKey, app string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(envKey)); base != "" {
		return filepath.Join(base, app)
	}
	home := homeDir()
	if home == "" {
		return filepath.Join(".", app)
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, app)...)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// parseUserDir reads KEY="value" from a user-dirs.dirs file.
func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		if value, ok := strings.CutPrefix(line, key+"="); ok {
			return strings.Trim(value, "\"")
		}
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	return strings.ReplaceAll(path, "$HOME", homeDir())
}
