package choreo

import (
	"context"
	"sync"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/BrandonKowalski/choreo/pkg/choreo/internal"
)

// runtimePlatform adapts the internal run loop and animator to Platform.
// Every method must be called on the main scheduling context: the goroutine
// that advances or runs the platform, or work posted to it.
type runtimePlatform struct {
	rt *internal.Runtime
}

func (p *runtimePlatform) Animate(params AnimationParameters, animations func(), completion func(finished bool)) {
	if params.Immediate {
		if animations != nil {
			animations()
		}
		p.rt.Loop.Post(func() {
			if completion != nil {
				completion(true)
			}
		})
		return
	}
	p.rt.Animator.Animate(specFor(params.Duration, params.Delay, params.Options, params.Spring), animations, completion)
}

func (p *runtimePlatform) AnimateKeyframes(params KeyframeParameters, frames []KeyframeWindow, completion func(finished bool)) {
	windows := make([]internal.Window, 0, len(frames))
	for _, f := range frames {
		windows = append(windows, internal.Window{
			Start:    f.RelativeStart,
			Duration: f.RelativeDuration,
			Body:     f.Animations,
		})
	}
	spec := specFor(params.Duration, params.Delay, params.Options, nil)
	// Keyframe animations are linear overall; each window eases on its own
	// only with cubic calculation.
	if !params.Options.Contains(constants.CurveLinear) &&
		!params.Options.Contains(constants.CurveEaseIn) &&
		!params.Options.Contains(constants.CurveEaseOut) {
		spec.Curve = internal.CurveFor(constants.CurveLinear)
	}
	p.rt.Animator.AnimateKeyframes(spec, windows, completion)
}

func (p *runtimePlatform) After(d time.Duration, fn func()) {
	p.rt.Loop.After(d, fn)
}

func (p *runtimePlatform) Post(fn func()) {
	p.rt.Loop.Post(fn)
}

// CancelAnimations snaps every in-flight animation to its final values and
// completes it with finished=false.
func (p *runtimePlatform) CancelAnimations() {
	p.rt.Animator.CancelAll()
}

// ActiveAnimations returns the number of animations in flight.
func (p *runtimePlatform) ActiveAnimations() int {
	return p.rt.Animator.Active()
}

// Frames returns the number of frames ticked so far.
func (p *runtimePlatform) Frames() int64 {
	return p.rt.Loop.Frames()
}

// Now returns the platform's current time.
func (p *runtimePlatform) Now() time.Time {
	return p.rt.Loop.Now()
}

// specFor maps options to an animator spec. KeyframeCalculationPaced has no
// mapping and plays as linear.
func specFor(duration, delay time.Duration, options constants.AnimationOptions, spring *SpringParameters) internal.AnimationSpec {
	spec := internal.AnimationSpec{
		Duration:              duration,
		Delay:                 delay,
		Curve:                 internal.CurveFor(options),
		Discrete:              options.Contains(constants.KeyframeCalculationDiscrete),
		Cubic:                 options.Contains(constants.KeyframeCalculationCubic),
		Autoreverse:           options.Contains(constants.OptionAutoreverse),
		LayoutSubviews:        options.Contains(constants.OptionLayoutSubviews),
		BeginFromCurrentState: options.Contains(constants.OptionBeginFromCurrentState),
	}
	if spring != nil {
		spec.Curve = internal.SpringCurve(spring.DampingRatio, spring.Velocity, duration)
	}
	return spec
}

// Headless is a platform whose clock only moves when told to. Tests and hosts
// that drive their own frame loop use it.
type Headless struct {
	runtimePlatform
}

// NewHeadless creates a headless platform ticking at the default frame rate.
func NewHeadless() *Headless {
	return NewHeadlessWithFrameRate(constants.DefaultFrameRate)
}

// NewHeadlessWithFrameRate creates a headless platform with frameRate frames per second.
func NewHeadlessWithFrameRate(frameRate int) *Headless {
	if frameRate <= 0 {
		frameRate = constants.DefaultFrameRate
	}
	return &Headless{runtimePlatform{rt: internal.NewManualRuntime(time.Second / time.Duration(frameRate))}}
}

// Advance moves the clock forward by d, one frame at a time, running posted
// work, due timers and animation frames along the way.
func (h *Headless) Advance(d time.Duration) {
	h.rt.Advance(d)
}

// Flush runs posted work and due timers without moving the clock. Returns the
// number of items run.
func (h *Headless) Flush() int {
	return h.rt.Loop.Drain()
}

// AdvanceClock moves p's clock forward by d. It returns ErrNotHeadless when p
// runs on the wall clock.
func AdvanceClock(p Platform, d time.Duration) error {
	h, ok := platformOrDefault(p).(*Headless)
	if !ok {
		return ErrNotHeadless
	}
	h.Advance(d)
	return nil
}

// Pending returns the number of posted items and timers waiting to run.
func (h *Headless) Pending() int {
	return h.rt.Loop.Pending()
}

// Realtime is a platform ticking on the wall clock.
type Realtime struct {
	runtimePlatform
}

// NewRealtime creates a wall clock platform ticking at the configured frame rate.
func NewRealtime(cfg Config) *Realtime {
	return &Realtime{runtimePlatform{rt: internal.NewRuntime(cfg.FrameInterval())}}
}

// Run ticks the platform until ctx is cancelled. The calling goroutine becomes
// the main scheduling context.
func (r *Realtime) Run(ctx context.Context) error {
	if r.rt.Loop.IsRunning() {
		return ErrAlreadyRunning
	}
	internal.GetInternalLogger().Debug("Realtime platform running", "frameInterval", r.rt.FrameInterval())
	return r.rt.Run(ctx)
}

// Tick runs a single frame now. Hosts with their own loop, such as a window
// event loop, call it once per frame instead of Run.
func (r *Realtime) Tick() {
	r.rt.Loop.Tick()
}

// IsRunning returns true while Run is ticking the platform.
func (r *Realtime) IsRunning() bool {
	return r.rt.Loop.IsRunning()
}

var (
	platformMu      sync.Mutex
	defaultPlatform Platform
	stopDefault     context.CancelFunc
)

// DefaultPlatform returns the platform used when none is given. Unless one was
// set with SetPlatform, it is a realtime platform built from the current
// config and ticking on its own goroutine; work for it should be posted.
func DefaultPlatform() Platform {
	platformMu.Lock()
	defer platformMu.Unlock()

	if defaultPlatform == nil {
		rt := NewRealtime(currentConfig())
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			_ = rt.Run(ctx)
		}()
		defaultPlatform = rt
		stopDefault = cancel
	}
	return defaultPlatform
}

// SetPlatform replaces the default platform and returns the previous one.
// A realtime platform started by DefaultPlatform is stopped.
func SetPlatform(p Platform) Platform {
	platformMu.Lock()
	defer platformMu.Unlock()

	previous := defaultPlatform
	if stopDefault != nil {
		stopDefault()
		stopDefault = nil
	}
	defaultPlatform = p
	return previous
}

func platformOrDefault(p Platform) Platform {
	if p != nil {
		return p
	}
	return DefaultPlatform()
}
