package choreo_test

import (
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo"
)

type animateCall struct {
	params     choreo.AnimationParameters
	completion func(bool)
}

type keyframeCall struct {
	params     choreo.KeyframeParameters
	frames     []choreo.KeyframeWindow
	completion func(bool)
}

// recordingPlatform runs animation bodies right away and holds completions
// until the test releases them.
type recordingPlatform struct {
	animations []animateCall
	keyframes  []keyframeCall
	posted     []func()
	timers     []func()
}

func (p *recordingPlatform) Animate(params choreo.AnimationParameters, animations func(), completion func(bool)) {
	if animations != nil {
		animations()
	}
	p.animations = append(p.animations, animateCall{params: params, completion: completion})
}

func (p *recordingPlatform) AnimateKeyframes(params choreo.KeyframeParameters, frames []choreo.KeyframeWindow, completion func(bool)) {
	for _, f := range frames {
		f.Animations()
	}
	p.keyframes = append(p.keyframes, keyframeCall{params: params, frames: frames, completion: completion})
}

func (p *recordingPlatform) After(_ time.Duration, fn func()) {
	p.timers = append(p.timers, fn)
}

func (p *recordingPlatform) Post(fn func()) {
	p.posted = append(p.posted, fn)
}

// finishAnimation completes the i-th animation.
func (p *recordingPlatform) finishAnimation(i int, finished bool) {
	if c := p.animations[i].completion; c != nil {
		c(finished)
	}
}

func (p *recordingPlatform) runPosted() {
	posted := p.posted
	p.posted = nil
	for _, fn := range posted {
		fn()
	}
}

func (p *recordingPlatform) fireTimers() {
	timers := p.timers
	p.timers = nil
	for _, fn := range timers {
		fn()
	}
}
