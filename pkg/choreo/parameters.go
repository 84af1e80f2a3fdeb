package choreo

import (
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
)

// AnimationParameters describes how an animation step runs.
type AnimationParameters struct {
	// Immediate applies the changes without animating them.
	Immediate bool
	// Duration of the animation. Zero or negative applies the changes without
	// animating them.
	Duration time.Duration
	// Delay before the animation begins.
	Delay time.Duration
	// Options is a mask of timing curve and behaviour flags.
	Options constants.AnimationOptions
	// Spring, when set, replaces the timing curve with a damped spring.
	Spring *SpringParameters
}

// SpringParameters configures a spring animation.
type SpringParameters struct {
	// DampingRatio of 1 settles without oscillation; lower values oscillate more.
	DampingRatio float64
	// Velocity is the initial velocity in animation distances per second.
	Velocity float64
}

// DefaultSpring returns a critically damped spring with unit velocity.
func DefaultSpring() SpringParameters {
	return SpringParameters{DampingRatio: 1, Velocity: 1}
}

// Parameters returns animation parameters for a plain animation of duration d.
func Parameters(d time.Duration) AnimationParameters {
	return AnimationParameters{Duration: d}
}

// SpringAnimation returns parameters for a spring animation of duration d.
func SpringAnimation(d time.Duration, dampingRatio, velocity float64) AnimationParameters {
	return AnimationParameters{
		Duration: d,
		Spring:   &SpringParameters{DampingRatio: dampingRatio, Velocity: velocity},
	}
}

// WithDelay returns a copy of p with the given delay.
func (p AnimationParameters) WithDelay(d time.Duration) AnimationParameters {
	p.Delay = d
	return p
}

// WithOptions returns a copy of p with options added.
func (p AnimationParameters) WithOptions(options constants.AnimationOptions) AnimationParameters {
	p.Options = p.Options.Union(options)
	return p
}

// Wrapper pairs animation parameters with the animations to run, so animations
// can be declared up front and performed later.
type Wrapper struct {
	Parameters AnimationParameters
	Animations func()
	// Completion receives whether the animations ran to their end.
	Completion func(finished bool)
}

// Perform runs the wrapped animations on a. Immediate parameters run the
// animations and completion synchronously.
func (w *Wrapper) Perform(a Animator) {
	if w.Parameters.Immediate {
		if w.Animations != nil {
			w.Animations()
		}
		if w.Completion != nil {
			w.Completion(true)
		}
		return
	}
	animations := w.Animations
	if animations == nil {
		animations = func() {}
	}
	a.Animate(w.Parameters, animations, w.Completion)
}

// PerformAll performs every wrapper on a. The animations run concurrently.
func PerformAll(a Animator, wrappers ...*Wrapper) {
	for _, w := range wrappers {
		w.Perform(a)
	}
}
