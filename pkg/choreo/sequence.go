package choreo

import (
	"time"
	"weak"

	"github.com/BrandonKowalski/choreo/pkg/choreo/internal"
	"go.uber.org/atomic"
)

type stepKind int

const (
	stepImmediate stepKind = iota
	stepDelayed
)

// step is one queued unit of work. Immediate steps run their handler when
// reached; delayed steps run it once their interval has elapsed.
type step struct {
	kind     stepKind
	interval time.Duration
	handler  func()
}

// Sequence runs animation, delay and synchronization steps one after another.
// A step runs only after the previous one has signalled that it is done.
//
// Sequences are continuous by default: adding a step to an idle sequence
// starts it. A started sequence keeps itself alive until its queue drains or
// it is stopped, so callers may drop their reference once it is started.
//
// The zero value is an empty continuous sequence on the default platform.
//
// A Sequence must only be used on the main scheduling context of its platform.
type Sequence struct {
	platform Platform
	queue    []step
	running  bool
	manual   bool

	// retained is the strong self reference held while running. Step
	// callbacks reach the sequence only through self.
	retained *Sequence
	self     weak.Pointer[Sequence]
}

// NewSequence creates an empty continuous sequence on p. A nil platform means
// the default platform, which runs step callbacks on its own goroutine; build
// and drive such a sequence only from work posted to that platform.
func NewSequence(p Platform) *Sequence {
	return &Sequence{platform: p}
}

// ref returns the weak handle step callbacks use to reach s.
func (s *Sequence) ref() weak.Pointer[Sequence] {
	if s.self == (weak.Pointer[Sequence]{}) {
		s.self = weak.Make(s)
	}
	return s.self
}

func (s *Sequence) scheduler() Platform {
	return platformOrDefault(s.platform)
}

// advance returns a callback that moves the sequence to its next step if the
// sequence is still alive.
func (s *Sequence) advance() func() {
	self := s.ref()
	return func() {
		if seq := self.Value(); seq != nil {
			seq.next()
		}
	}
}

// Animate adds a step that runs animations with params.
func (s *Sequence) Animate(params AnimationParameters, animations func()) *Sequence {
	return s.AnimateWithCompletion(params, animations, nil)
}

// AnimateWithCompletion adds a step that runs animations with params. When the
// animation ends completion is called with the finished flag, then the
// sequence advances.
func (s *Sequence) AnimateWithCompletion(params AnimationParameters, animations func(), completion func(finished bool)) *Sequence {
	advance := s.advance()
	self := s.ref()
	s.enqueue(step{kind: stepImmediate, handler: func() {
		seq := self.Value()
		if seq == nil {
			return
		}
		wrapper := &Wrapper{
			Parameters: params,
			Animations: animations,
			Completion: func(finished bool) {
				if completion != nil {
					completion(finished)
				}
				advance()
			},
		}
		wrapper.Perform(seq.scheduler())
	}})
	return s
}

// AnimateDuration adds a step that runs animations over d.
func (s *Sequence) AnimateDuration(d time.Duration, animations func()) *Sequence {
	return s.Animate(Parameters(d), animations)
}

// AnimateSpring adds a step that runs animations as a spring over d.
func (s *Sequence) AnimateSpring(d time.Duration, dampingRatio, velocity float64, animations func()) *Sequence {
	return s.Animate(SpringAnimation(d, dampingRatio, velocity), animations)
}

// Wait adds a pause of d.
func (s *Sequence) Wait(d time.Duration) *Sequence {
	s.enqueue(step{kind: stepDelayed, interval: d, handler: s.advance()})
	return s
}

// Sync adds a step that runs fn and advances as soon as it returns.
func (s *Sequence) Sync(fn func()) *Sequence {
	advance := s.advance()
	s.enqueue(step{kind: stepImmediate, handler: func() {
		fn()
		advance()
	}})
	return s
}

// Async adds a step that runs fn and waits for it to call done. The sequence
// advances on the next turn of the main context after done is called; later
// calls to done are ignored. If done is never called the sequence stalls.
func (s *Sequence) Async(fn func(done func())) *Sequence {
	return s.async(0, fn)
}

// AsyncWithTimeout is Async with a watchdog: if done has not been called
// after timeout, the sequence advances anyway.
func (s *Sequence) AsyncWithTimeout(timeout time.Duration, fn func(done func())) *Sequence {
	return s.async(timeout, fn)
}

func (s *Sequence) async(timeout time.Duration, fn func(done func())) *Sequence {
	advance := s.advance()
	self := s.ref()
	s.enqueue(step{kind: stepImmediate, handler: func() {
		seq := self.Value()
		if seq == nil {
			return
		}
		platform := seq.scheduler()
		called := atomic.NewBool(false)

		if timeout > 0 {
			platform.After(timeout, func() {
				if called.CompareAndSwap(false, true) {
					internal.GetInternalLogger().Warn("Async step timed out", "timeout", timeout)
					advance()
				}
			})
		}

		fn(func() {
			if !called.CompareAndSwap(false, true) {
				internal.GetInternalLogger().Debug("Async step completed more than once")
				return
			}
			platform.Post(advance)
		})
	}})
	return s
}

// Start starts the sequence and keeps it alive until it drains or is stopped.
// It has no effect on a running sequence beyond retaining it.
func (s *Sequence) Start() {
	s.start(true)
}

// StartUnretained starts the sequence without keeping it alive; the caller
// must hold a reference until it finishes.
func (s *Sequence) StartUnretained() {
	s.start(false)
}

func (s *Sequence) start(retain bool) {
	if retain {
		s.retained = s
	}
	if s.running {
		return
	}
	s.running = true
	internal.GetInternalLogger().Debug("Sequence started", "steps", len(s.queue), "retained", retain)
	s.next()
}

// Step runs the next queued step without waiting for the current one. With an
// empty queue it marks the sequence idle and releases it. Calling it while a
// step is in flight lets that step's completion advance the sequence a second
// time, so the following step runs out of order.
func (s *Sequence) Step() {
	if len(s.queue) == 0 {
		s.running = false
		s.retained = nil
		internal.GetInternalLogger().Debug("Sequence finished")
		return
	}

	current := s.queue[0]
	s.queue = s.queue[1:]
	s.execute(current)
}

func (s *Sequence) execute(st step) {
	switch st.kind {
	case stepDelayed:
		s.scheduler().After(st.interval, st.handler)
	default:
		st.handler()
	}
}

// Stop marks the sequence idle and releases it. Queued steps stay queued and
// completions of steps already in flight are ignored.
func (s *Sequence) Stop() {
	s.retained = nil
	if s.running {
		internal.GetInternalLogger().Debug("Sequence stopped", "steps", len(s.queue))
	}
	s.running = false
}

// Reset stops the sequence and drops every queued step.
func (s *Sequence) Reset() {
	s.Stop()
	s.queue = nil
}

// SetContinuous sets whether adding a step starts an idle sequence. Turning it
// on starts an idle sequence right away.
func (s *Sequence) SetContinuous(continuous bool) {
	s.manual = !continuous
	if continuous && !s.running {
		s.Start()
	}
}

func (s *Sequence) IsContinuous() bool {
	return !s.manual
}

func (s *Sequence) IsRunning() bool {
	return s.running
}

// IsRetained returns true while the sequence keeps itself alive.
func (s *Sequence) IsRetained() bool {
	return s.retained != nil
}

// Len returns the number of steps waiting to run.
func (s *Sequence) Len() int {
	return len(s.queue)
}

func (s *Sequence) next() {
	if !s.running {
		return
	}
	s.Step()
}

func (s *Sequence) enqueue(st step) {
	s.queue = append(s.queue, st)
	if !s.manual {
		s.Start()
	}
}
