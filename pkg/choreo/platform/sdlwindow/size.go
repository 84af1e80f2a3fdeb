package sdlwindow

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/BrandonKowalski/choreo/pkg/choreo/internal"
)

const (
	devWidth  = 1024
	devHeight = 768
)

// resolveSize picks the window size. Outside dev mode the display size is
// used as is; in dev mode WINDOW_WIDTH and WINDOW_HEIGHT override a
// 1024x768 default.
func resolveSize(display Size) Size {
	if !constants.IsDevMode() {
		return display
	}
	return Size{
		Width:  envDimension(constants.WindowWidthEnvVar, devWidth),
		Height: envDimension(constants.WindowHeightEnvVar, devHeight),
	}
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}
