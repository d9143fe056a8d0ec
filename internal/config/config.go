package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/akyairhashvil/dialtimer/internal/util"
)

// Config is the resolved runtime configuration.
type Config struct {
	DBPath          string
	LogDir          string
	LogLevel        string
	SecondThreshold time.Duration
	TickInterval    time.Duration
	DoubleTapWindow time.Duration
	Audio           AudioConfig
}

// AudioConfig controls the sound feedback collaborator.
type AudioConfig struct {
	Enabled bool
	Volume  float64
}

// Dir returns the directory holding config.yaml.
func Dir() string {
	return util.ConfigDir(AppName)
}

// NewViper returns a viper instance with search paths, env binding and
// defaults applied. An explicit path overrides the search paths.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	dataDir := util.DataDir(AppName)
	v.SetDefault("db_path", filepath.Join(dataDir, DBFileName))
	v.SetDefault("log_dir", filepath.Join(dataDir, "logs"))
	v.SetDefault("log_level", "info")
	v.SetDefault("second_threshold", int(SecondThreshold/time.Second))
	v.SetDefault("tick_interval", TickInterval.String())
	v.SetDefault("double_tap_window", DoubleTapWindow.String())
	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.volume", DefaultAudioVolume)
	return v
}

// Load reads the config file (optional unless path is explicit), env and
// defaults into a validated Config.
func Load(path string) (Config, error) {
	v := NewViper(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return FromViper(v), nil
}

// FromViper extracts a validated Config from v.
func FromViper(v *viper.Viper) Config {
	cfg := Config{
		DBPath:          v.GetString("db_path"),
		LogDir:          v.GetString("log_dir"),
		LogLevel:        strings.ToLower(v.GetString("log_level")),
		SecondThreshold: time.Duration(v.GetInt("second_threshold")) * time.Second,
		TickInterval:    v.GetDuration("tick_interval"),
		DoubleTapWindow: v.GetDuration("double_tap_window"),
		Audio: AudioConfig{
			Enabled: v.GetBool("audio.enabled"),
			Volume:  v.GetFloat64("audio.volume"),
		},
	}
	return Validate(cfg)
}

// Validate replaces nonsensical values with defaults.
func Validate(cfg Config) Config {
	if cfg.SecondThreshold <= 0 {
		cfg.SecondThreshold = SecondThreshold
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = TickInterval
	}
	if cfg.DoubleTapWindow <= 0 {
		cfg.DoubleTapWindow = DoubleTapWindow
	}
	cfg.Audio.Volume = util.Clamp(cfg.Audio.Volume, 0, 1)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		cfg.LogLevel = "info"
	}
	return cfg
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return FromViper(NewViper(""))
}
