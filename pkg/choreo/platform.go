package choreo

import (
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
)

// Animator runs animation bodies with timing parameters and reports when they end.
type Animator interface {
	// Animate runs animations so that the changes it makes are interpolated
	// according to params, then calls completion with whether the animation
	// ran to its end. completion may be nil.
	Animate(params AnimationParameters, animations func(), completion func(finished bool))

	// AnimateKeyframes schedules every frame concurrently within one animation
	// and calls completion once when it ends.
	AnimateKeyframes(params KeyframeParameters, frames []KeyframeWindow, completion func(finished bool))
}

// Scheduler defers work on the main scheduling context.
type Scheduler interface {
	// After runs fn once d has elapsed.
	After(d time.Duration, fn func())
	// Post runs fn on the next turn of the main context.
	Post(fn func())
}

// Platform is the pair of primitives every sequence, keyframe animation and
// transition drives.
type Platform interface {
	Animator
	Scheduler
}

// KeyframeParameters is the timing of a whole keyframe animation.
type KeyframeParameters struct {
	Duration time.Duration
	Delay    time.Duration
	Options  constants.AnimationOptions
}

// KeyframeWindow is one keyframe handed to the platform: Animations runs with
// its changes played between RelativeStart and RelativeStart+RelativeDuration,
// both fractions of the total duration.
type KeyframeWindow struct {
	RelativeStart    float64
	RelativeDuration float64
	Animations       func()
}
