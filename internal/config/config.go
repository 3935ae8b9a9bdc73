// Package config loads cdown settings. Sources, highest precedence first:
// command-line flags, CDOWN_* environment variables, the config file, and
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, e.g.
// CDOWN_DISPLAY_COLOR.
const EnvPrefix = "CDOWN"

// Config holds all configuration for cdown.
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Display  DisplayConfig  `mapstructure:"display"`
	Sound    SoundConfig    `mapstructure:"sound"`
	Log      LogConfig      `mapstructure:"log"`
}

// DefaultsConfig holds values used when the command line is silent.
type DefaultsConfig struct {
	Duration string `mapstructure:"duration"`
}

// DisplayConfig holds how the clock face looks.
type DisplayConfig struct {
	Color    string `mapstructure:"color"`
	Border   bool   `mapstructure:"border"`
	Progress bool   `mapstructure:"progress"`
	Title    bool   `mapstructure:"title"`
}

// SoundConfig holds the completion chime settings.
type SoundConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"color":      "display.color",
	"border":     "display.border",
	"progress":   "display.progress",
	"sound-file": "sound.file",
	"log-file":   "log.file",
}

// Load reads configuration. path names an explicit config file; when empty
// the user config directory is searched and a missing file is fine. flags
// may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(UserConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading user config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Sound.File = os.ExpandEnv(cfg.Sound.File)
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)
	return cfg, nil
}

// setDefaults configures default values from Default.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("defaults.duration", d.Defaults.Duration)

	v.SetDefault("display.color", d.Display.Color)
	v.SetDefault("display.border", d.Display.Border)
	v.SetDefault("display.progress", d.Display.Progress)
	v.SetDefault("display.title", d.Display.Title)

	v.SetDefault("sound.enabled", d.Sound.Enabled)
	v.SetDefault("sound.file", d.Sound.File)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{Duration: "3min"},
		Display:  DisplayConfig{Color: "lightblue", Title: true},
		Sound:    SoundConfig{Enabled: true},
		Log:      LogConfig{Level: "normal"},
	}
}

// UserConfigDir returns the XDG config directory for cdown.
func UserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "cdown")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "cdown")
	}
	return filepath.Join(home, ".config", "cdown")
}
