package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/dialtimer/internal/config"
)

var configForce bool

// configDirFunc returns the config directory path, replaceable in tests.
var configDirFunc = config.Dir

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or manage configuration",
	Long: `Show or manage dialtimer configuration.

Running bare 'dialtimer config' is the same as 'dialtimer config show'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowRun()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create config file with commented defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		return configInitRun()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowRun()
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// configTemplate is the template for generating config.yaml with comments.
const configTemplate = `# dialtimer configuration
# Every key can also be set as an environment variable, e.g.
# DIALTIMER_AUDIO_ENABLED=true

# SQLite database holding the timers
# db_path: {{ .DBPath }}

# Rotating log file directory and level (debug, info, warn, error)
# log_dir: {{ .LogDir }}
# log_level: {{ .LogLevel }}

# Below this many seconds a drag snaps to whole seconds, above to minutes
# second_threshold: {{ .SecondThreshold }}

# Countdown step and the window that turns two taps into a reset
# tick_interval: {{ .TickInterval }}
# double_tap_window: {{ .DoubleTapWindow }}

audio:
  # Play sounds on tap, minute change while dragging, and expiry
  enabled: {{ .AudioEnabled }}
  # volume: {{ .AudioVolume }}
`

type configTemplateData struct {
	DBPath          string
	LogDir          string
	LogLevel        string
	SecondThreshold int
	TickInterval    string
	DoubleTapWindow string
	AudioEnabled    bool
	AudioVolume     float64
}

func renderConfigTemplate(c config.Config) ([]byte, error) {
	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, configTemplateData{
		DBPath:          c.DBPath,
		LogDir:          c.LogDir,
		LogLevel:        c.LogLevel,
		SecondThreshold: int(c.SecondThreshold.Seconds()),
		TickInterval:    c.TickInterval.String(),
		DoubleTapWindow: c.DoubleTapWindow.String(),
		AudioEnabled:    c.Audio.Enabled,
		AudioVolume:     c.Audio.Volume,
	})
	return buf.Bytes(), err
}

func configInitRun() error {
	dir := configDirFunc()
	path := filepath.Join(dir, config.ConfigFileName+".yaml")
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}
	data, err := renderConfigTemplate(config.Default())
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	ui.Success("Config written to %s", path)
	return nil
}

func configShowRun() error {
	path := cfgFile
	if path == "" {
		path = filepath.Join(configDirFunc(), config.ConfigFileName+".yaml")
	}
	inFile := configFileKeys(path)

	rows := [][]string{{"config_file", path, ""}}
	for _, kv := range [][2]string{
		{"db_path", cfg.DBPath},
		{"log_dir", cfg.LogDir},
		{"log_level", cfg.LogLevel},
		{"second_threshold", cfg.SecondThreshold.String()},
		{"tick_interval", cfg.TickInterval.String()},
		{"double_tap_window", cfg.DoubleTapWindow.String()},
		{"audio.enabled", fmt.Sprintf("%t", cfg.Audio.Enabled)},
		{"audio.volume", fmt.Sprintf("%.2f", cfg.Audio.Volume)},
	} {
		rows = append(rows, []string{kv[0], kv[1], keySource(kv[0], inFile)})
	}
	return renderRows(ui.Table([]string{"Key", "Value", "Source"}), rows)
}

// keySource reports where a config key's value came from.
func keySource(key string, inFile map[string]bool) string {
	env := config.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if _, ok := os.LookupEnv(env); ok {
		return "env"
	}
	if inFile[key] {
		return "file"
	}
	return "default"
}

// configFileKeys returns the dotted keys set in the YAML file at path.
func configFileKeys(path string) map[string]bool {
	keys := make(map[string]bool)
	data, err := os.ReadFile(path)
	if err != nil {
		return keys
	}
	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return keys
	}
	flattenKeys("", parsed, keys)
	return keys
}

func flattenKeys(prefix string, m map[string]any, out map[string]bool) {
	for key, val := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := val.(map[string]any); ok {
			flattenKeys(full, nested, out)
			continue
		}
		out[full] = true
	}
}
