package view

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Property identifies an animatable view property.
type Property int

const (
	PropertyFrame Property = iota
	PropertyAlpha
	PropertyBackground
)

func (p Property) String() string {
	switch p {
	case PropertyFrame:
		return "frame"
	case PropertyAlpha:
		return "alpha"
	case PropertyBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Recorder receives model changes made while it is installed. The animator
// installs one for the duration of an animation body so it can interpolate
// the presentation from the old value to the new one.
type Recorder interface {
	RecordChange(v *View, p Property, from, to any)
}

// Views are owned by the main scheduling context, so a single active recorder
// is enough.
var recorder Recorder

// SetRecorder installs r and returns the previously installed recorder so
// callers can restore it. Passing nil disables recording.
func SetRecorder(r Recorder) Recorder {
	previous := recorder
	recorder = r
	return previous
}

func record(v *View, p Property, from, to any) {
	if recorder != nil {
		recorder.RecordChange(v, p, from, to)
	}
}

// Interpolate returns the value of property p at fraction t between from and to.
// Colours blend in Lab space.
func Interpolate(p Property, from, to any, t float64) any {
	switch p {
	case PropertyFrame:
		return from.(Rect).Lerp(to.(Rect), t)
	case PropertyAlpha:
		return lerp(from.(float64), to.(float64), t)
	case PropertyBackground:
		return from.(colorful.Color).BlendLab(to.(colorful.Color), t).Clamped()
	default:
		return to
	}
}
