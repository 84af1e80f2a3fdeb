// Package constants defines shared constants, option bitmasks and configuration
// values used throughout the choreo animation library.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the library and the SDL platform.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	LogLevelEnvVar     = "CHOREO_LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Default timing constants.
const (
	DefaultKeyframeDuration   = 300 * time.Millisecond
	DefaultTransitionDuration = 300 * time.Millisecond
	DefaultFrameRate          = 60
)

// AnimationOptions is a bitmask of timing-curve and behaviour flags passed
// through to the animation primitive. Combining options is a bitwise union.
type AnimationOptions uint32

const (
	OptionLayoutSubviews        AnimationOptions = 1 << 0 // lay out touched views inside the animation
	OptionBeginFromCurrentState AnimationOptions = 1 << 2 // start from the on-screen value of in-flight animations
	OptionAutoreverse           AnimationOptions = 1 << 4 // run forward then backward, ending at the model value

	// Keyframe calculation modes. Linear is the zero value. Paced is accepted
	// but keyframes keep their own times, so it plays as Linear.
	KeyframeCalculationLinear   AnimationOptions = 0
	KeyframeCalculationDiscrete AnimationOptions = 1 << 10
	KeyframeCalculationPaced    AnimationOptions = 1 << 11
	KeyframeCalculationCubic    AnimationOptions = 1 << 12

	// Timing curves. With no curve bit set the curve is ease-in-out, and
	// CurveEaseIn|CurveEaseOut is the same curve.
	CurveEaseIn    AnimationOptions = 1 << 16
	CurveEaseOut   AnimationOptions = 1 << 17
	CurveEaseInOut AnimationOptions = CurveEaseIn | CurveEaseOut
	CurveLinear    AnimationOptions = 1 << 18
)

// Union returns the options with every flag of other added.
func (o AnimationOptions) Union(other AnimationOptions) AnimationOptions {
	return o | other
}

// Contains reports whether every flag of other is set.
func (o AnimationOptions) Contains(other AnimationOptions) bool {
	return o&other == other
}

// Curve is the timing curve selected by a set of options.
type Curve int

const (
	CurveKindEaseInOut Curve = iota
	CurveKindEaseIn
	CurveKindEaseOut
	CurveKindLinear
)

// Curve resolves the timing curve encoded in the options. Linear wins over the
// ease flags when both are present.
func (o AnimationOptions) Curve() Curve {
	switch {
	case o.Contains(CurveLinear):
		return CurveKindLinear
	case o.Contains(CurveEaseInOut):
		return CurveKindEaseInOut
	case o.Contains(CurveEaseIn):
		return CurveKindEaseIn
	case o.Contains(CurveEaseOut):
		return CurveKindEaseOut
	default:
		return CurveKindEaseInOut
	}
}

func (c Curve) GetName() string {
	switch c {
	case CurveKindEaseInOut:
		return "EaseInOut"
	case CurveKindEaseIn:
		return "EaseIn"
	case CurveKindEaseOut:
		return "EaseOut"
	case CurveKindLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

var optionNames = []struct {
	option AnimationOptions
	name   string
}{
	{OptionLayoutSubviews, "LayoutSubviews"},
	{OptionBeginFromCurrentState, "BeginFromCurrentState"},
	{OptionAutoreverse, "Autoreverse"},
	{KeyframeCalculationDiscrete, "Discrete"},
	{KeyframeCalculationPaced, "Paced"},
	{KeyframeCalculationCubic, "Cubic"},
	{CurveEaseIn, "EaseIn"},
	{CurveEaseOut, "EaseOut"},
	{CurveLinear, "Linear"},
}

// String returns the set flags joined by "|", or "None".
func (o AnimationOptions) String() string {
	var names []string
	for _, entry := range optionNames {
		if o.Contains(entry.option) {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}
