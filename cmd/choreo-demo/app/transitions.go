package app

import (
	"github.com/BrandonKowalski/choreo/pkg/choreo/transition"
	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
)

// toSecond flies a snapshot of the home button to the top edge while the
// second screen fades in.
type toSecond struct {
	transition.Base
	from     *Home
	to       *Second
	snapshot *view.View
}

// ToSecond animates Home to Second.
func ToSecond(timing transition.Timing) *transition.Driver {
	return transition.New(ScreenHome, ScreenSecond, timing,
		func(from *Home, to *Second, container *view.View) transition.Shape {
			return &toSecond{Base: transition.NewBase(container), from: from, to: to}
		})
}

func (t *toSecond) Prepare() {
	t.snapshot = t.MakeSnapshot(t.from.Button)
	t.AddSnapshot(t.snapshot)
}

func (t *toSecond) Start() {
	t.from.Button.SetAlpha(0)
	t.to.View().SetAlpha(0)
}

func (t *toSecond) Animate() {
	t.snapshot.SetOrigin(view.Point{X: t.snapshot.Frame().X, Y: 0})
	t.to.View().SetAlpha(1)
}

func (t *toSecond) Complete() {
	t.RemoveSnapshots()
	t.from.Button.SetAlpha(1)
}

// fromSecond is the reverse of toSecond: the button snapshot drops from the
// top edge back into place while home fades in.
type fromSecond struct {
	transition.Base
	from     *Second
	to       *Home
	snapshot *view.View
	initial  view.Rect
}

// FromSecond animates Second back to Home. It starts asynchronously so the
// snapshot is taken from a laid out home screen.
func FromSecond(timing transition.Timing) *transition.Driver {
	timing.UseAsyncStart = true
	return transition.New(ScreenSecond, ScreenHome, timing,
		func(from *Second, to *Home, container *view.View) transition.Shape {
			return &fromSecond{Base: transition.NewBase(container), from: from, to: to}
		})
}

func (t *fromSecond) Prepare() {
	t.snapshot = t.MakeSnapshot(t.to.Button)
	t.initial = t.snapshot.Frame()
	t.AddSnapshot(t.snapshot)
	t.snapshot.SetOrigin(view.Point{X: t.initial.X, Y: 0})
}

func (t *fromSecond) Start() {
	t.to.View().SetAlpha(0)
	t.to.Button.SetAlpha(0)
}

func (t *fromSecond) Animate() {
	t.to.View().SetAlpha(1)
	t.snapshot.SetFrame(t.initial)
}

func (t *fromSecond) Complete() {
	t.RemoveSnapshots()
	t.to.Button.SetAlpha(1)
}
