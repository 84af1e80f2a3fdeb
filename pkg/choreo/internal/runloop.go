package internal

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Clock supplies the current time to the run loop.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// ManualClock only moves when told to. Used by the headless platform.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// FrameObserver runs once per frame on the loop, after due work has run.
type FrameObserver func(now time.Time)

type timer struct {
	when time.Time
	seq  uint64
	fn   func()
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}

// RunLoop is the main scheduling context. Work posted from any goroutine runs
// on whichever goroutine calls Tick/Drain/Run, one item at a time and in order.
type RunLoop struct {
	clock Clock

	mu     sync.Mutex
	posted []func()
	timers timerHeap
	seq    uint64

	observers []FrameObserver

	running atomic.Bool
	frames  atomic.Int64
}

func NewRunLoop(clock Clock) *RunLoop {
	if clock == nil {
		clock = SystemClock()
	}
	return &RunLoop{clock: clock}
}

// Now returns the loop's current time.
func (l *RunLoop) Now() time.Time {
	return l.clock.Now()
}

// Post schedules fn for the next turn of the loop.
func (l *RunLoop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.posted = append(l.posted, fn)
	l.mu.Unlock()
}

// After schedules fn to run once d has elapsed. Timers with the same deadline
// fire in the order they were scheduled.
func (l *RunLoop) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d <= 0 {
		l.Post(fn)
		return
	}
	l.mu.Lock()
	l.seq++
	heap.Push(&l.timers, &timer{when: l.clock.Now().Add(d), seq: l.seq, fn: fn})
	l.mu.Unlock()
}

// AddFrameObserver registers fn to run every frame.
func (l *RunLoop) AddFrameObserver(fn FrameObserver) {
	l.mu.Lock()
	l.observers = append(l.observers, fn)
	l.mu.Unlock()
}

// Pending returns the number of posted items and timers waiting to run.
func (l *RunLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.posted) + len(l.timers)
}

func (l *RunLoop) takePosted() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	posted := l.posted
	l.posted = nil
	return posted
}

func (l *RunLoop) popDueTimer(now time.Time) *timer {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.timers) == 0 || l.timers[0].when.After(now) {
		return nil
	}
	return heap.Pop(&l.timers).(*timer)
}

// Drain runs posted work and due timers until nothing is left to run at the
// current time. Work scheduled while draining runs in the same call, and work
// posted by a timer runs before the next due timer. Returns the number of
// items run.
func (l *RunLoop) Drain() int {
	ran := 0
	for {
		posted := l.takePosted()
		for _, fn := range posted {
			fn()
			ran++
		}
		if t := l.popDueTimer(l.clock.Now()); t != nil {
			t.fn()
			ran++
			continue
		}
		if len(posted) == 0 {
			return ran
		}
	}
}

// Tick runs one frame: due work, frame observers, then any work they scheduled.
func (l *RunLoop) Tick() {
	l.Drain()

	now := l.clock.Now()
	l.mu.Lock()
	observers := append([]FrameObserver(nil), l.observers...)
	l.mu.Unlock()
	for _, observer := range observers {
		observer(now)
	}
	l.frames.Inc()

	l.Drain()
}

// Frames returns the number of frames ticked so far.
func (l *RunLoop) Frames() int64 {
	return l.frames.Load()
}

// IsRunning returns true while Run is ticking the loop.
func (l *RunLoop) IsRunning() bool {
	return l.running.Load()
}

// Run ticks the loop every interval until ctx is cancelled.
func (l *RunLoop) Run(ctx context.Context, interval time.Duration) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}
