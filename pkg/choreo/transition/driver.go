package transition

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo"
	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/BrandonKowalski/choreo/pkg/choreo/internal"
	"github.com/BrandonKowalski/choreo/pkg/choreo/router"
	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
)

// Timing is the fixed timing of a transition definition.
type Timing struct {
	Duration time.Duration
	Delay    time.Duration
	Options  constants.AnimationOptions
	// UseAsyncStart defers Start and the animation to the next turn of the
	// main context, so snapshots taken in Prepare see a settled screen.
	UseAsyncStart bool
}

// DefaultTiming returns the configured transition duration with no delay.
func DefaultTiming() Timing {
	d := choreo.CurrentConfig().Animation.TransitionDuration.Duration
	if d <= 0 {
		d = constants.DefaultTransitionDuration
	}
	return Timing{Duration: d}
}

// Phase is a step of a running transition.
type Phase int

const (
	PhaseCreated Phase = iota
	PhasePrepared
	PhaseStarted
	PhaseAnimating
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhasePrepared:
		return "prepared"
	case PhaseStarted:
		return "started"
	case PhaseAnimating:
		return "animating"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

type builder func(ctx router.Context) (Shape, bool)

// Driver runs a Shape for every navigation between two screens. It is a
// router.Transitioning.
type Driver struct {
	from, to router.Screen
	timing   Timing
	build    builder
	platform choreo.Platform
	onPhase  func(Phase)
}

// New creates a driver for navigation from one screen to another. build is
// called for every navigation with the two controllers and the container view
// and returns the shape to run. Controllers that are not a From and a To, or
// a container whose top one is, make the navigation complete without
// animating.
//
// Without WithPlatform the driver animates on choreo.DefaultPlatform. Unless a
// platform was set with choreo.SetPlatform, that one runs completions on its
// own goroutine, so navigate only from work posted to it.
func New[From, To router.Controller](from, to router.Screen, timing Timing, build func(from From, to To, container *view.View) Shape) *Driver {
	if build == nil {
		panic("transition: build function must not be nil")
	}
	if timing.Duration < 0 || timing.Delay < 0 {
		panic(fmt.Sprintf("transition: timing must not be negative, got duration %s delay %s", timing.Duration, timing.Delay))
	}
	return &Driver{
		from:   from,
		to:     to,
		timing: timing,
		build: func(ctx router.Context) (Shape, bool) {
			fromController, ok := resolve[From](ctx.Controller(router.KeyFrom))
			if !ok {
				return nil, false
			}
			toController, ok := resolve[To](ctx.Controller(router.KeyTo))
			if !ok {
				return nil, false
			}
			return build(fromController, toController, ctx.ContainerView()), true
		},
	}
}

// resolve returns c as a T, looking through a container to its top controller.
func resolve[T router.Controller](c router.Controller) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	if typed, ok := c.(T); ok {
		return typed, true
	}
	if container, ok := c.(router.Container); ok {
		if typed, ok := container.Top().(T); ok {
			return typed, true
		}
	}
	return zero, false
}

func (d *Driver) From() router.Screen {
	return d.from
}

func (d *Driver) To() router.Screen {
	return d.to
}

func (d *Driver) Timing() Timing {
	return d.timing
}

// Duration returns the animation duration.
func (d *Driver) Duration() time.Duration {
	return d.timing.Duration
}

// WithPlatform runs the driver's animations on p instead of the default platform.
func (d *Driver) WithPlatform(p choreo.Platform) *Driver {
	d.platform = p
	return d
}

// OnPhase registers fn to be called as each navigation reaches a phase.
func (d *Driver) OnPhase(fn func(Phase)) *Driver {
	d.onPhase = fn
	return d
}

// AddTo registers the driver with provider for its pair of screens.
func (d *Driver) AddTo(provider *Provider) *Driver {
	provider.Register(d.from, d.to, d)
	return d
}

// AddToRouter registers the driver with the provider attached to r.
func (d *Driver) AddToRouter(r *router.Router) *Driver {
	return d.AddTo(ProviderFor(r))
}

func (d *Driver) report(phase Phase) {
	internal.GetInternalLogger().Debug("Transition phase", "from", d.from, "to", d.to, "phase", phase.String())
	if d.onPhase != nil {
		d.onPhase(phase)
	}
}

func (d *Driver) resolveViews(ctx router.Context) (from, to, container *view.View, ok bool) {
	from = viewOf(ctx, router.KeyFrom)
	to = viewOf(ctx, router.KeyTo)
	container = ctx.ContainerView()
	return from, to, container, from != nil && to != nil && container != nil
}

func viewOf(ctx router.Context, key router.Key) *view.View {
	c := ctx.Controller(key)
	if c == nil {
		return nil
	}
	// A container stands in for its top controller.
	if container, ok := c.(router.Container); ok && container.Top() != nil {
		return container.Top().View()
	}
	return ctx.View(key)
}

// AnimateTransition runs a fresh shape through prepare, start, animate and
// complete, then completes the navigation with the animation's finished flag.
// When the controllers or views cannot be resolved the navigation completes
// at once and no hook runs.
func (d *Driver) AnimateTransition(ctx router.Context) {
	fromView, toView, container, ok := d.resolveViews(ctx)
	if !ok {
		internal.GetInternalLogger().Debug("Transition skipped, views unavailable", "from", d.from, "to", d.to)
		ctx.CompleteTransition(true)
		return
	}
	shape, ok := d.build(ctx)
	if !ok {
		internal.GetInternalLogger().Debug("Transition skipped, unexpected controllers", "from", d.from, "to", d.to)
		ctx.CompleteTransition(true)
		return
	}
	d.report(PhaseCreated)

	container.AddSubview(toView)
	fromView.SetNeedsLayout()
	fromView.LayoutIfNeeded()
	toView.SetNeedsLayout()
	toView.LayoutIfNeeded()

	shape.Prepare()
	d.report(PhasePrepared)

	platform := d.platform
	if platform == nil {
		platform = choreo.DefaultPlatform()
	}

	run := func() {
		shape.Start()
		d.report(PhaseStarted)

		params := choreo.AnimationParameters{
			Duration: d.timing.Duration,
			Delay:    d.timing.Delay,
			Options:  d.timing.Options,
		}
		d.report(PhaseAnimating)
		platform.Animate(params, shape.Animate, func(finished bool) {
			shape.Complete()
			d.report(PhaseCompleted)
			ctx.CompleteTransition(finished)
		})
	}

	if d.timing.UseAsyncStart {
		platform.Post(run)
		return
	}
	run()
}
