package transition

import "github.com/BrandonKowalski/choreo/pkg/choreo/view"

// Shape is one transition definition. A Driver calls its hooks in order.
type Shape interface {
	// Prepare runs after the destination view is in the container and both
	// views are laid out. Snapshots are taken here.
	Prepare()
	// Start runs just before the animation, to set starting values.
	Start()
	// Animate runs inside the animation; the changes it makes are animated.
	Animate()
	// Complete runs when the animation ends, to clean up.
	Complete()
}

// Funcs adapts plain functions to a Shape. Nil functions are skipped.
type Funcs struct {
	PrepareFunc  func()
	StartFunc    func()
	AnimateFunc  func()
	CompleteFunc func()
}

func (f Funcs) Prepare() {
	if f.PrepareFunc != nil {
		f.PrepareFunc()
	}
}

func (f Funcs) Start() {
	if f.StartFunc != nil {
		f.StartFunc()
	}
}

func (f Funcs) Animate() {
	if f.AnimateFunc != nil {
		f.AnimateFunc()
	}
}

func (f Funcs) Complete() {
	if f.CompleteFunc != nil {
		f.CompleteFunc()
	}
}

// Base carries the container view and snapshot bookkeeping shared by most
// shapes. Embed it and override the hooks you need; its own hooks do nothing.
type Base struct {
	Container *view.View
	snapshots []*view.View
}

// NewBase creates a Base animating in container.
func NewBase(container *view.View) Base {
	return Base{Container: container}
}

func (b *Base) Prepare()  {}
func (b *Base) Start()    {}
func (b *Base) Animate()  {}
func (b *Base) Complete() {}

// MakeSnapshot returns an image of v placed at v's window position. When v
// cannot be captured an empty placeholder view is returned instead.
func (b *Base) MakeSnapshot(v *view.View) *view.View {
	if v == nil {
		return view.NewPlaceholder()
	}
	return v.Snapshot()
}

// AddSnapshot adds a snapshot on top of the container and remembers it.
func (b *Base) AddSnapshot(snapshot *view.View) {
	if b.Container != nil {
		b.Container.AddSubview(snapshot)
	}
	b.snapshots = append(b.snapshots, snapshot)
}

// RemoveSnapshots removes every snapshot added with AddSnapshot.
func (b *Base) RemoveSnapshots() {
	for _, s := range b.snapshots {
		s.RemoveFromSuperview()
	}
	b.snapshots = nil
}

// Snapshots returns the snapshots added so far.
func (b *Base) Snapshots() []*view.View {
	return b.snapshots
}
