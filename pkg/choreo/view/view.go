// Package view provides a headless view hierarchy for the choreo animation
// primitives: frames, alpha and background colour that the animator
// interpolates, a forced-layout pass, snapshots and rasterized rendering.
//
// Views are not safe for concurrent use. They belong to the main scheduling
// context, the same one that runs animation bodies and completions.
package view

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// LayoutFunc positions the subviews of v. It runs during LayoutIfNeeded.
type LayoutFunc func(v *View)

// View is a rectangle in a tree of views.
type View struct {
	Name string

	frame         Rect
	alpha         float64
	hidden        bool
	background    colorful.Color
	hasBackground bool

	icon        *Icon
	content     *image.RGBA
	placeholder bool

	superview *View
	subviews  []*View

	layout      LayoutFunc
	needsLayout bool

	presentation map[Property]any
}

// New creates a visible, opaque view with the given frame.
func New(name string, frame Rect) *View {
	return &View{
		Name:  name,
		frame: frame,
		alpha: 1,
	}
}

// NewPlaceholder creates an empty view used where a snapshot could not be taken.
func NewPlaceholder() *View {
	return &View{
		Name:        "placeholder",
		alpha:       1,
		placeholder: true,
	}
}

// IsPlaceholder returns true if the view stands in for a failed snapshot.
func (v *View) IsPlaceholder() bool {
	return v.placeholder
}

// Frame returns the model frame in the superview's coordinates.
func (v *View) Frame() Rect {
	return v.frame
}

// SetFrame sets the model frame. Inside an animation the change is interpolated.
func (v *View) SetFrame(frame Rect) {
	old := v.frame
	v.frame = frame
	if old != frame {
		record(v, PropertyFrame, old, frame)
	}
}

// SetOrigin moves the view without resizing it.
func (v *View) SetOrigin(p Point) {
	v.SetFrame(v.frame.WithOrigin(p))
}

// Bounds returns the view's own coordinate space.
func (v *View) Bounds() Rect {
	return Rect{W: v.frame.W, H: v.frame.H}
}

// Alpha returns the model opacity.
func (v *View) Alpha() float64 {
	return v.alpha
}

// SetAlpha sets the model opacity, clamped to [0, 1].
func (v *View) SetAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	old := v.alpha
	v.alpha = alpha
	if old != alpha {
		record(v, PropertyAlpha, old, alpha)
	}
}

// Hidden returns true if the view and its subviews are not rendered.
func (v *View) Hidden() bool {
	return v.hidden
}

// SetHidden toggles visibility. Visibility is not animatable.
func (v *View) SetHidden(hidden bool) {
	v.hidden = hidden
}

// Background returns the background colour and whether one is set.
func (v *View) Background() (colorful.Color, bool) {
	return v.background, v.hasBackground
}

// SetBackground fills the view with c.
func (v *View) SetBackground(c colorful.Color) {
	old := v.background
	if !v.hasBackground {
		old = c
	}
	v.background = c
	v.hasBackground = true
	if old != c {
		record(v, PropertyBackground, old, c)
	}
}

// ClearBackground makes the view transparent.
func (v *View) ClearBackground() {
	v.hasBackground = false
}

// Icon returns the SVG icon drawn inside the view, if any.
func (v *View) Icon() *Icon {
	return v.icon
}

// SetIcon draws icon scaled to the view's bounds.
func (v *View) SetIcon(icon *Icon) {
	v.icon = icon
}

// Content returns the raster content of a snapshot view.
func (v *View) Content() *image.RGBA {
	return v.content
}

// Superview returns the parent view or nil.
func (v *View) Superview() *View {
	return v.superview
}

// Subviews returns the children in drawing order.
func (v *View) Subviews() []*View {
	return v.subviews
}

// AddSubview appends child on top of the existing subviews, removing it from
// its previous parent first.
func (v *View) AddSubview(child *View) {
	if child == nil || child == v {
		return
	}
	child.RemoveFromSuperview()
	child.superview = v
	v.subviews = append(v.subviews, child)
	v.SetNeedsLayout()
}

// InsertSubviewBelow inserts child directly below sibling. When sibling is not a
// subview of v the child is appended.
func (v *View) InsertSubviewBelow(child, sibling *View) {
	if child == nil || child == v {
		return
	}
	child.RemoveFromSuperview()
	for i, existing := range v.subviews {
		if existing == sibling {
			child.superview = v
			v.subviews = append(v.subviews[:i], append([]*View{child}, v.subviews[i:]...)...)
			v.SetNeedsLayout()
			return
		}
	}
	v.AddSubview(child)
}

// RemoveFromSuperview detaches the view from its parent.
func (v *View) RemoveFromSuperview() {
	parent := v.superview
	if parent == nil {
		return
	}
	for i, child := range parent.subviews {
		if child == v {
			parent.subviews = append(parent.subviews[:i], parent.subviews[i+1:]...)
			break
		}
	}
	v.superview = nil
}

// IsDescendant returns true if v is ancestor or lies below it.
func (v *View) IsDescendant(ancestor *View) bool {
	for current := v; current != nil; current = current.superview {
		if current == ancestor {
			return true
		}
	}
	return false
}

// SetLayout installs the function that positions subviews.
func (v *View) SetLayout(fn LayoutFunc) {
	v.layout = fn
	v.needsLayout = true
}

// SetNeedsLayout marks the view for layout on the next LayoutIfNeeded.
func (v *View) SetNeedsLayout() {
	v.needsLayout = true
}

// NeedsLayout returns true if a layout pass is pending.
func (v *View) NeedsLayout() bool {
	return v.needsLayout
}

// LayoutIfNeeded runs pending layout for the view and then its subviews.
func (v *View) LayoutIfNeeded() {
	if v.needsLayout {
		v.needsLayout = false
		if v.layout != nil {
			v.layout(v)
		}
	}
	for _, child := range v.subviews {
		child.LayoutIfNeeded()
	}
}

// ConvertToWindow converts r from the view's coordinates to the root view's.
func (v *View) ConvertToWindow(r Rect) Rect {
	for current := v; current != nil; current = current.superview {
		r = r.Offset(current.frame.X, current.frame.Y)
	}
	return r
}

// WindowFrame returns the view's bounds in root coordinates.
func (v *View) WindowFrame() Rect {
	return v.ConvertToWindow(v.Bounds())
}

// Root returns the topmost ancestor.
func (v *View) Root() *View {
	current := v
	for current.superview != nil {
		current = current.superview
	}
	return current
}

// SetPresentation overrides the rendered value of p while an animation is in flight.
func (v *View) SetPresentation(p Property, value any) {
	if v.presentation == nil {
		v.presentation = make(map[Property]any)
	}
	v.presentation[p] = value
}

// ClearPresentation drops the override for p so the model value is rendered again.
func (v *View) ClearPresentation(p Property) {
	delete(v.presentation, p)
}

// Value returns the model value of p.
func (v *View) Value(p Property) any {
	switch p {
	case PropertyFrame:
		return v.frame
	case PropertyAlpha:
		return v.alpha
	case PropertyBackground:
		return v.background
	default:
		return nil
	}
}

// PresentedValue returns the value currently on screen for p.
func (v *View) PresentedValue(p Property) any {
	if value, ok := v.presentation[p]; ok {
		return value
	}
	return v.Value(p)
}

// PresentedFrame returns the frame currently on screen.
func (v *View) PresentedFrame() Rect {
	return v.PresentedValue(PropertyFrame).(Rect)
}

// PresentedAlpha returns the opacity currently on screen.
func (v *View) PresentedAlpha() float64 {
	return v.PresentedValue(PropertyAlpha).(float64)
}

// PresentedBackground returns the background currently on screen.
func (v *View) PresentedBackground() colorful.Color {
	return v.PresentedValue(PropertyBackground).(colorful.Color)
}
