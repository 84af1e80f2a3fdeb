package internal

import (
	"sort"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
)

// AnimationSpec is the timing of one animation or keyframe animation.
type AnimationSpec struct {
	Duration time.Duration
	Delay    time.Duration
	Curve    CurveFunc

	Discrete              bool
	Cubic                 bool
	Autoreverse           bool
	LayoutSubviews        bool
	BeginFromCurrentState bool
}

// Window is a keyframe: a body whose changes play between Start and
// Start+Duration, both fractions of the whole animation.
type Window struct {
	Start    float64
	Duration float64
	Body     func()
}

type trackKey struct {
	view *view.View
	prop view.Property
}

type track struct {
	key      trackKey
	from, to any
	start    float64
	end      float64
}

type animation struct {
	id         uint64
	begin      time.Time
	duration   time.Duration
	spec       AnimationSpec
	keys       []trackKey
	tracks     map[trackKey][]*track
	completion func(bool)
}

// Animator interpolates view changes made inside animation bodies. It is driven
// by the run loop's frame observer and must only be used on the loop.
type Animator struct {
	loop   *RunLoop
	seq    uint64
	active []*animation
	owners map[trackKey]*animation
}

func NewAnimator(loop *RunLoop) *Animator {
	a := &Animator{
		loop:   loop,
		owners: make(map[trackKey]*animation),
	}
	loop.AddFrameObserver(a.frame)
	return a
}

// transaction collects the changes made while it is the view recorder.
type transaction struct {
	changes []*track
	index   map[trackKey]*track
}

func newTransaction() *transaction {
	return &transaction{index: make(map[trackKey]*track)}
}

func (t *transaction) RecordChange(v *view.View, p view.Property, from, to any) {
	key := trackKey{view: v, prop: p}
	if existing, ok := t.index[key]; ok {
		existing.to = to
		return
	}
	change := &track{key: key, from: from, to: to}
	t.index[key] = change
	t.changes = append(t.changes, change)
}

func (t *transaction) run(body func(), layout bool) {
	previous := view.SetRecorder(t)
	defer view.SetRecorder(previous)

	if body != nil {
		body()
	}
	if layout {
		touched := make([]*view.View, 0, len(t.changes))
		for _, change := range t.changes {
			touched = append(touched, change.key.view)
		}
		for _, v := range touched {
			v.SetNeedsLayout()
			v.LayoutIfNeeded()
		}
	}
}

// Active returns the number of animations in flight.
func (a *Animator) Active() int {
	return len(a.active)
}

// Animate runs body, records the view changes it makes and plays them over
// spec. completion receives true when the animation ran to its end.
func (a *Animator) Animate(spec AnimationSpec, body func(), completion func(bool)) {
	a.AnimateKeyframes(spec, []Window{{Start: 0, Duration: 1, Body: body}}, completion)
}

// AnimateKeyframes runs every window body in list order and plays each
// window's changes within its slice of the animation.
func (a *Animator) AnimateKeyframes(spec AnimationSpec, windows []Window, completion func(bool)) {
	if spec.Duration <= 0 {
		for _, w := range windows {
			if w.Body != nil {
				w.Body()
			}
		}
		a.loop.After(spec.Delay, func() {
			if completion != nil {
				completion(true)
			}
		})
		return
	}
	if spec.Curve == nil {
		spec.Curve = CurveFor(0)
	}

	a.seq++
	anim := &animation{
		id:         a.seq,
		begin:      a.loop.Now().Add(spec.Delay),
		duration:   spec.Duration,
		spec:       spec,
		tracks:     make(map[trackKey][]*track),
		completion: completion,
	}

	for _, w := range windows {
		tx := newTransaction()
		tx.run(w.Body, spec.LayoutSubviews)
		for _, change := range tx.changes {
			change.start = w.Start
			change.end = w.Start + w.Duration
			a.addTrack(anim, change)
		}
	}

	for _, key := range anim.keys {
		sort.SliceStable(anim.tracks[key], func(i, j int) bool {
			return anim.tracks[key][i].start < anim.tracks[key][j].start
		})
		// Hold the old value on screen until the animation begins.
		key.view.SetPresentation(key.prop, anim.tracks[key][0].from)
	}

	a.active = append(a.active, anim)
	GetInternalLogger().Debug("Animation started",
		"id", anim.id, "duration", spec.Duration, "delay", spec.Delay, "tracks", len(anim.keys))
}

func (a *Animator) addTrack(anim *animation, change *track) {
	key := change.key
	if _, seen := anim.tracks[key]; !seen {
		if anim.spec.BeginFromCurrentState {
			change.from = key.view.PresentedValue(key.prop)
		}
		anim.keys = append(anim.keys, key)
		// The newest animation of a property takes it over.
		if previous, ok := a.owners[key]; ok && previous != anim {
			previous.drop(key)
		}
		a.owners[key] = anim
	}
	anim.tracks[key] = append(anim.tracks[key], change)
}

func (anim *animation) drop(key trackKey) {
	delete(anim.tracks, key)
	for i, k := range anim.keys {
		if k == key {
			anim.keys = append(anim.keys[:i], anim.keys[i+1:]...)
			return
		}
	}
}

func (anim *animation) fraction(now time.Time) float64 {
	if now.Before(anim.begin) {
		return 0
	}
	f := float64(now.Sub(anim.begin)) / float64(anim.duration)
	if f > 1 {
		return 1
	}
	return f
}

func (anim *animation) apply(f float64) {
	progress := anim.spec.Curve
	if anim.spec.Autoreverse {
		progress = Autoreverse(progress)
	}
	p := progress(f)

	for _, key := range anim.keys {
		tracks := anim.tracks[key]
		value := tracks[0].from
		for _, t := range tracks {
			if p < t.start && t != tracks[0] {
				break
			}
			value = t.valueAt(p, anim.spec)
		}
		key.view.SetPresentation(key.prop, value)
	}
}

func (t *track) valueAt(p float64, spec AnimationSpec) any {
	span := t.end - t.start
	var local float64
	switch {
	case span <= 0:
		if p >= t.start {
			local = 1
		}
	default:
		local = (p - t.start) / span
	}
	if local < 0 {
		local = 0
	} else if local > 1 {
		local = 1
	}

	switch {
	case spec.Discrete:
		if local < 1 {
			return t.from
		}
		return t.to
	case spec.Cubic:
		local = CurveFor(0)(local)
	}
	return view.Interpolate(t.key.prop, t.from, t.to, local)
}

func (a *Animator) frame(now time.Time) {
	if len(a.active) == 0 {
		return
	}

	var finished []*animation
	remaining := a.active[:0]
	for _, anim := range a.active {
		f := anim.fraction(now)
		if f >= 1 {
			finished = append(finished, anim)
			continue
		}
		anim.apply(f)
		remaining = append(remaining, anim)
	}
	a.active = remaining

	for _, anim := range finished {
		a.finish(anim, true)
	}
}

func (a *Animator) finish(anim *animation, completed bool) {
	for _, key := range anim.keys {
		if a.owners[key] == anim {
			key.view.ClearPresentation(key.prop)
			delete(a.owners, key)
		}
	}
	GetInternalLogger().Debug("Animation finished", "id", anim.id, "finished", completed)
	if anim.completion != nil {
		anim.completion(completed)
	}
}

// CancelAll snaps every in-flight animation to its model values and completes
// it with finished=false.
func (a *Animator) CancelAll() {
	cancelled := a.active
	a.active = nil
	for _, anim := range cancelled {
		a.finish(anim, false)
	}
}
