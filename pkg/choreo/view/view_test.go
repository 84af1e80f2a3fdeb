package view_test

import (
	"image"
	"testing"

	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
)

type change struct {
	name     string
	prop     view.Property
	from, to any
}

type changeLog struct {
	changes []change
}

func (l *changeLog) RecordChange(v *view.View, p view.Property, from, to any) {
	l.changes = append(l.changes, change{name: v.Name, prop: p, from: from, to: to})
}

func record(t *testing.T, body func()) []change {
	t.Helper()
	log := &changeLog{}
	previous := view.SetRecorder(log)
	defer view.SetRecorder(previous)
	body()
	return log.changes
}

func TestHierarchy(t *testing.T) {
	root := view.New("root", view.Rect{X: 10, Y: 10, W: 100, H: 100})
	a := view.New("a", view.Rect{X: 5, Y: 5, W: 20, H: 20})
	b := view.New("b", view.Rect{})
	c := view.New("c", view.Rect{X: 1, Y: 2, W: 3, H: 4})

	root.AddSubview(a)
	root.AddSubview(b)
	root.InsertSubviewBelow(c, b)
	require.Equal(t, []*view.View{a, c, b}, root.Subviews())

	a.AddSubview(c)
	require.Equal(t, []*view.View{a, b}, root.Subviews())
	require.Same(t, a, c.Superview())
	require.True(t, c.IsDescendant(root))
	require.False(t, b.IsDescendant(a))
	require.Same(t, root, c.Root())
	require.Equal(t, view.Rect{X: 16, Y: 17, W: 3, H: 4}, c.WindowFrame())

	c.RemoveFromSuperview()
	require.Nil(t, c.Superview())
	require.Empty(t, a.Subviews())

	root.AddSubview(root)
	require.Len(t, root.Subviews(), 2)
}

func TestSettersReportChanges(t *testing.T) {
	v := view.New("box", view.Rect{W: 10, H: 10})
	red := colorful.Color{R: 1}

	changes := record(t, func() {
		v.SetAlpha(0.5)
		v.SetAlpha(0.5)
		v.SetFrame(view.Rect{W: 20, H: 10})
		v.SetBackground(red)
		v.SetHidden(true)
	})

	require.Equal(t, []change{
		{name: "box", prop: view.PropertyAlpha, from: 1.0, to: 0.5},
		{name: "box", prop: view.PropertyFrame, from: view.Rect{W: 10, H: 10}, to: view.Rect{W: 20, H: 10}},
	}, changes, "unchanged values and a first background are not animated")

	changes = record(t, func() { v.SetBackground(colorful.Color{B: 1}) })
	require.Len(t, changes, 1)
	require.Equal(t, view.PropertyBackground, changes[0].prop)

	changes = record(t, func() { v.SetAlpha(3) })
	require.Equal(t, 1.0, changes[0].to, "alpha is clamped")
}

func TestPresentationOverridesModel(t *testing.T) {
	v := view.New("box", view.Rect{W: 10, H: 10})
	v.SetAlpha(0.2)

	v.SetPresentation(view.PropertyAlpha, 0.9)
	require.Equal(t, 0.2, v.Alpha())
	require.Equal(t, 0.9, v.PresentedAlpha())

	v.ClearPresentation(view.PropertyAlpha)
	require.Equal(t, 0.2, v.PresentedAlpha())
	require.Equal(t, view.Rect{W: 10, H: 10}, v.PresentedFrame())
}

func TestInterpolate(t *testing.T) {
	require.Equal(t, 0.25, view.Interpolate(view.PropertyAlpha, 0.0, 1.0, 0.25))
	require.Equal(t, view.Rect{X: 5, W: 15}, view.Interpolate(view.PropertyFrame, view.Rect{W: 10}, view.Rect{X: 10, W: 20}, 0.5))

	black, white := colorful.Color{}, colorful.Color{R: 1, G: 1, B: 1}
	require.Equal(t, white, view.Interpolate(view.PropertyBackground, black, white, 1))
	mid := view.Interpolate(view.PropertyBackground, black, white, 0.5).(colorful.Color)
	require.Greater(t, mid.R, 0.0)
	require.Less(t, mid.R, 1.0)
}

func TestLayout(t *testing.T) {
	parent := view.New("parent", view.Rect{W: 100, H: 50})
	child := view.New("child", view.Rect{})
	parent.AddSubview(child)

	calls := 0
	parent.SetLayout(func(v *view.View) {
		calls++
		child.SetFrame(v.Bounds().Inset(view.UniformInsets(5)))
	})
	require.True(t, parent.NeedsLayout())

	parent.LayoutIfNeeded()
	parent.LayoutIfNeeded()
	require.Equal(t, 1, calls)
	require.Equal(t, view.Rect{X: 5, Y: 5, W: 90, H: 40}, child.Frame())

	parent.SetNeedsLayout()
	parent.LayoutIfNeeded()
	require.Equal(t, 2, calls)
}

func TestGeometry(t *testing.T) {
	r := view.Rect{X: 10, Y: 20, W: 30, H: 40}
	require.Equal(t, view.Point{X: 25, Y: 40}, r.Center())
	require.Equal(t, r, view.Centered(r.Center(), 30, 40))
	require.Equal(t, view.Rect{X: 11, Y: 22, W: 30, H: 40}, r.Offset(1, 2))
	require.Equal(t, view.Rect{X: 40, Y: 20, H: 40}, r.Inset(view.Insets{Left: 30, Right: 30}))
	require.Equal(t, view.Rect{W: 30, H: 40}, r.WithOrigin(view.Point{}))
	require.True(t, view.Rect{W: 10}.IsEmpty())
	require.Equal(t, view.Rect{X: 5, Y: 10, W: 15, H: 20}, view.Rect{}.Lerp(r, 0.5))
}

func TestRender(t *testing.T) {
	root := view.New("root", view.Rect{W: 20, H: 20})
	box := view.New("box", view.Rect{X: 10, Y: 0, W: 10, H: 10})
	box.SetBackground(colorful.Color{R: 1})
	root.AddSubview(box)

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	root.Render(img)

	inside := img.RGBAAt(15, 5)
	require.Greater(t, inside.R, uint8(250))
	require.Less(t, inside.G, uint8(5))
	require.Zero(t, img.RGBAAt(5, 15).A, "outside the box stays transparent")

	cleared := image.NewRGBA(image.Rect(0, 0, 20, 20))
	box.SetHidden(true)
	root.Render(cleared)
	require.Zero(t, cleared.RGBAAt(15, 5).A)
}

func TestSnapshot(t *testing.T) {
	root := view.New("root", view.Rect{W: 40, H: 40})
	box := view.New("box", view.Rect{X: 10, Y: 10, W: 10, H: 10})
	box.SetBackground(colorful.Color{G: 1})
	root.AddSubview(box)

	snapshot := box.Snapshot()
	require.False(t, snapshot.IsPlaceholder())
	require.Equal(t, view.Rect{X: 10, Y: 10, W: 10, H: 10}, snapshot.Frame())
	require.NotNil(t, snapshot.Content())
	require.Greater(t, snapshot.Content().RGBAAt(5, 5).G, uint8(250))

	// The snapshot renders where the box was.
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	snapshot.Render(img)
	require.Greater(t, img.RGBAAt(15, 15).G, uint8(250))

	empty := view.New("empty", view.Rect{X: 3}).Snapshot()
	require.True(t, empty.IsPlaceholder())
	require.Equal(t, view.Rect{X: 3}, empty.Frame())
}
