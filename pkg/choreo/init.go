// Package choreo sequences UI animations, declares keyframe animations and
// drives screen-to-screen transitions on top of a small set of platform
// primitives: run an animation, run a keyframe animation, run something later.
//
// A Sequence runs steps one after another, each advancing only when the
// previous one reports it is done. KeyframeAnimation collects keyframes over a
// typed target and plays them as one animation. The transition package keys
// transition drivers by the pair of screens they connect.
//
// The primitives are provided by a Platform. Headless platforms move only when
// advanced, which makes animation code testable; realtime platforms tick on the
// wall clock, and platform/sdlwindow presents a view tree in an SDL window.
package choreo

import (
	"io"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/BrandonKowalski/choreo/pkg/choreo/internal"
)

// Config is the library configuration, read from a TOML or YAML file.
type Config = internal.Config

// Options configures the choreo library initialization.
type Options struct {
	ConfigPath string // Optional TOML or YAML config file (chosen by extension)
	LogPath    string // Full path for log file including filename (creates parent directories)
	LogLevel   string // Application log level, overrides the config file ("debug", "info", ...)
	FrameRate  int    // Frames per second for realtime platforms, overrides the config file
}

var (
	configMu sync.RWMutex
	config   = internal.DefaultConfig()
)

// Init loads the configuration and sets up logging. Calling it is optional;
// without it the defaults apply.
func Init(options Options) error {
	cfg := internal.DefaultConfig()
	if options.ConfigPath != "" {
		loaded, err := internal.LoadConfig(options.ConfigPath)
		if err != nil {
			return NewPlatformError("load_config", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if options.LogLevel != "" {
		cfg.Log.Level = options.LogLevel
	}
	if options.LogPath != "" {
		cfg.Log.Path = options.LogPath
	}
	if options.FrameRate != 0 {
		cfg.Animation.FrameRate = options.FrameRate
	}
	if err := cfg.Validate(); err != nil {
		return NewPlatformError("validate_config", err)
	}

	if cfg.Log.Path != "" {
		if err := internal.SetLogPath(cfg.Log.Path); err != nil {
			return NewPlatformError("open_log", err)
		}
	}
	internal.SetRawLogLevel(cfg.Log.Level)
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	configMu.Lock()
	config = cfg
	configMu.Unlock()

	internal.GetInternalLogger().Debug("choreo initialized",
		"frameRate", cfg.Animation.FrameRate,
		"defaultDuration", cfg.Animation.DefaultDuration.String(),
		"transitionDuration", cfg.Animation.TransitionDuration.String())
	return nil
}

// Close stops the default platform if it was started and closes the log file.
func Close() {
	SetPlatform(nil)
	internal.CloseLogger()
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	return currentConfig()
}

func currentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return config
}

// LoadConfig reads a TOML or YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	return internal.LoadConfig(path)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// SetLogPath tees logs into the file at path, including filename, creating
// parent directories as needed.
func SetLogPath(path string) error {
	return internal.SetLogPath(path)
}

// SetLogWriter sends all logs to w. Useful in tests.
func SetLogWriter(w io.Writer) {
	internal.SetLogWriter(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetDebugLogging turns the library's own debug logs on or off.
func SetDebugLogging(enabled bool) {
	if enabled {
		internal.SetInternalLogLevel(slog.LevelDebug)
		return
	}
	internal.SetInternalLogLevel(slog.LevelError)
}
