package internal

import (
	"context"
	"time"
)

// Runtime bundles the run loop and the animator it drives.
type Runtime struct {
	Loop     *RunLoop
	Animator *Animator

	frameInterval time.Duration
	manual        *ManualClock
}

// NewRuntime creates a runtime ticking on the wall clock.
func NewRuntime(frameInterval time.Duration) *Runtime {
	loop := NewRunLoop(SystemClock())
	return &Runtime{
		Loop:          loop,
		Animator:      NewAnimator(loop),
		frameInterval: frameInterval,
	}
}

// NewManualRuntime creates a runtime whose clock only moves through Advance.
func NewManualRuntime(frameInterval time.Duration) *Runtime {
	clock := NewManualClock(time.Unix(0, 0))
	loop := NewRunLoop(clock)
	return &Runtime{
		Loop:          loop,
		Animator:      NewAnimator(loop),
		frameInterval: frameInterval,
		manual:        clock,
	}
}

// FrameInterval returns the time between frames.
func (r *Runtime) FrameInterval() time.Duration {
	return r.frameInterval
}

// Advance moves a manual clock forward by d one frame at a time, ticking the
// loop after each step. Work already due runs before the clock moves.
func (r *Runtime) Advance(d time.Duration) {
	if r.manual == nil {
		panic("choreo: Advance requires a manual clock")
	}
	r.Loop.Drain()
	for d > 0 {
		step := r.frameInterval
		if step > d {
			step = d
		}
		r.manual.Advance(step)
		r.Loop.Tick()
		d -= step
	}
}

// Run ticks the loop on the wall clock until ctx is cancelled.
func (r *Runtime) Run(ctx context.Context) error {
	return r.Loop.Run(ctx, r.frameInterval)
}
