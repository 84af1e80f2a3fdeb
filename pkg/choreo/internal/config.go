package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Duration is a time.Duration written as a string ("300ms") in config files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	if parsed < 0 {
		return fmt.Errorf("invalid duration %q: negative", text)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(raw))
}

// AnimationConfig holds the timing defaults.
type AnimationConfig struct {
	DefaultDuration    Duration `toml:"default_duration" yaml:"default_duration"`
	TransitionDuration Duration `toml:"transition_duration" yaml:"transition_duration"`
	FrameRate          int      `toml:"frame_rate" yaml:"frame_rate"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	Path  string `toml:"path" yaml:"path"`
}

// Config is the library configuration, read from a TOML or YAML file.
type Config struct {
	Animation AnimationConfig `toml:"animation" yaml:"animation"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Animation: AnimationConfig{
			DefaultDuration:    Duration{constants.DefaultKeyframeDuration},
			TransitionDuration: Duration{constants.DefaultTransitionDuration},
			FrameRate:          constants.DefaultFrameRate,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads path over the defaults. The format is chosen by extension:
// .toml, or .yaml/.yml.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			GetInternalLogger().Warn("Unknown config keys", "path", path, "keys", fmt.Sprint(undecoded))
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("load config %s: unsupported format %q", path, filepath.Ext(path))
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		c.Log.Level = level
	}
}

// Validate rejects settings the runtime cannot use.
func (c Config) Validate() error {
	if c.Animation.FrameRate <= 0 || c.Animation.FrameRate > 240 {
		return fmt.Errorf("invalid frame_rate %d: must be between 1 and 240", c.Animation.FrameRate)
	}
	return nil
}

// FrameInterval returns the time between two frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Animation.FrameRate)
}
