// Package app builds the choreo demo: a home screen with a button, a second
// screen pushed from it with custom transitions, a keyframe pulse and an
// intro sequence. It has no window dependency so it runs on any platform.
package app

import (
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo"
	"github.com/BrandonKowalski/choreo/pkg/choreo/router"
	"github.com/BrandonKowalski/choreo/pkg/choreo/transition"
	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
)

const (
	PulseDuration = 600 * time.Millisecond
	pulseScale    = 1.1
)

type Options struct {
	Platform           choreo.Platform // Drives every animation; nil means the default platform
	Frame              view.Rect       // Window area
	Theme              Theme
	Localizer          *Localizer
	TransitionDuration time.Duration // Zero means the configured transition duration
	OnTitle            func(title string)
}

// App is the demo's navigation stack and animations.
type App struct {
	Router   *router.Router
	Home     *Home
	Provider *transition.Provider

	platform choreo.Platform
	theme    Theme
	locale   *Localizer
	onTitle  func(string)
	pulses   int
}

func New(options Options) *App {
	theme := options.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme()
	}

	a := &App{
		platform: options.Platform,
		theme:    theme,
		locale:   options.Localizer,
		onTitle:  options.OnTitle,
	}
	a.Home = NewHome(theme, a.message("HomeTitle"))
	a.Router = router.New(a.Home, options.Frame)
	a.Router.Window().SetBackground(theme.WindowColor)

	timing := transition.DefaultTiming()
	if options.TransitionDuration > 0 {
		timing.Duration = options.TransitionDuration
	}
	a.Provider = transition.ProviderFor(a.Router)
	ToSecond(timing).WithPlatform(a.platform).AddTo(a.Provider)
	FromSecond(timing).WithPlatform(a.platform).AddTo(a.Provider)

	a.Router.OnTransition(func(op router.Operation, from, to router.Controller, finished bool) {
		choreo.GetLogger().Info("Navigated", "operation", op.String(), "finished", finished, "screen", a.Title())
		a.announce()
	})
	return a
}

// SetOnTitle replaces the function told about every new screen title.
func (a *App) SetOnTitle(fn func(title string)) {
	a.onTitle = fn
}

func (a *App) message(id string) string {
	if a.locale == nil {
		return id
	}
	return a.locale.Message(id)
}

func (a *App) announce() {
	if a.onTitle != nil {
		a.onTitle(a.Title())
	}
}

// Title returns the localized title of the screen on top.
func (a *App) Title() string {
	switch top := a.Router.Top().(type) {
	case *Home:
		return top.Title
	case *Second:
		return top.Title
	default:
		return ""
	}
}

// WindowTitle returns the title for the host window.
func (a *App) WindowTitle() string {
	if a.locale == nil {
		return a.Title()
	}
	return a.locale.WindowTitle(a.Title())
}

// Forward pushes a new second screen.
func (a *App) Forward() error {
	return a.Router.Push(NewSecond(a.theme, a.message("SecondTitle")), true)
}

// Back pops back to the home screen.
func (a *App) Back() error {
	return a.Router.Pop(true)
}

// Pulse grows and shrinks the home button twice. It returns false when the
// home screen is not showing.
func (a *App) Pulse() bool {
	if a.Router.Top() != a.Home || a.Router.InTransition() {
		return false
	}
	a.Home.View().LayoutIfNeeded()
	base := a.Home.Button.Frame()
	grown := view.Centered(base.Center(), base.W*pulseScale, base.H*pulseScale)

	choreo.NewKeyframeAnimation[*view.View](PulseDuration).
		WithPlatform(a.platform).
		NextRelativeTimes(0.25, 4, func(button *view.View, i int) {
			if i%2 == 0 {
				button.SetFrame(grown)
				return
			}
			button.SetFrame(base)
		}).
		Finally(func(button *view.View) {
			a.pulses++
			choreo.GetLogger().Debug("Pulse finished", "view", button.Name, "pulses", a.pulses)
		}).
		Play(a.Home.Button)
	return true
}

// Pulses returns the number of finished pulses.
func (a *App) Pulses() int {
	return a.pulses
}

// Intro fades the home button in, springs it into place and then announces
// the first title. The returned sequence is already running.
func (a *App) Intro() *choreo.Sequence {
	a.Home.View().LayoutIfNeeded()
	button := a.Home.Button
	final := button.Frame()

	return choreo.NewSequence(a.platform).
		Sync(func() {
			button.SetAlpha(0)
			button.SetFrame(final.Offset(0, final.H))
		}).
		Wait(200*time.Millisecond).
		AnimateDuration(400*time.Millisecond, func() {
			button.SetAlpha(1)
		}).
		AnimateSpring(500*time.Millisecond, 0.6, 0, func() {
			button.SetFrame(final)
		}).
		Async(func(done func()) {
			a.announce()
			done()
		})
}
