package sdlwindow

import (
	"testing"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestResolveSize(t *testing.T) {
	display := Size{Width: 1280, Height: 720}

	t.Setenv(constants.EnvironmentEnvVar, "")
	t.Setenv(constants.WindowWidthEnvVar, "640")
	require.Equal(t, display, resolveSize(display))

	t.Setenv(constants.EnvironmentEnvVar, constants.Development)
	t.Setenv(constants.WindowHeightEnvVar, "")
	require.Equal(t, Size{Width: 640, Height: devHeight}, resolveSize(display))

	t.Setenv(constants.WindowWidthEnvVar, "wide")
	t.Setenv(constants.WindowHeightEnvVar, "-3")
	require.Equal(t, Size{Width: devWidth, Height: devHeight}, resolveSize(display))
}

func TestWindowOptionsFlags(t *testing.T) {
	require.True(t, WindowOptions{}.IsZero())
	require.Equal(t, uint32(sdl.WINDOW_SHOWN), WindowOptions{}.ToSDLFlags())

	flags := WindowOptions{Hidden: true, Resizable: true, Borderless: true}.ToSDLFlags()
	require.Zero(t, flags&sdl.WINDOW_SHOWN)
	require.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	require.NotZero(t, flags&sdl.WINDOW_BORDERLESS)
	require.Zero(t, flags&sdl.WINDOW_FULLSCREEN)
}
