package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "choreo.toml", `
[animation]
default_duration = "150ms"
frame_rate = 30

[log]
level = "debug"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 150*time.Millisecond, cfg.Animation.DefaultDuration.Duration)
	require.Equal(t, constants.DefaultTransitionDuration, cfg.Animation.TransitionDuration.Duration)
	require.Equal(t, 30, cfg.Animation.FrameRate)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "choreo.yaml", `
animation:
  transition_duration: 1s
  frame_rate: 120
log:
  path: /tmp/choreo.log
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, time.Second, cfg.Animation.TransitionDuration.Duration)
	require.Equal(t, constants.DefaultKeyframeDuration, cfg.Animation.DefaultDuration.Duration)
	require.Equal(t, 120, cfg.Animation.FrameRate)
	require.Equal(t, "/tmp/choreo.log", cfg.Log.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contents string
	}{
		{"negative duration", "a.toml", "[animation]\ndefault_duration = \"-5ms\"\n"},
		{"bad duration", "b.yaml", "animation:\n  default_duration: soon\n"},
		{"frame rate", "c.toml", "[animation]\nframe_rate = 0\n"},
		{"format", "d.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.file, tt.contents))
			require.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, time.Second/60, cfg.FrameInterval())

	cfg.Animation.FrameRate = 50
	require.Equal(t, 20*time.Millisecond, cfg.FrameInterval())

	cfg.Animation.FrameRate = 1000
	require.ErrorContains(t, cfg.Validate(), "frame_rate")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "warn")
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
