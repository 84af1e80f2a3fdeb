package choreo_test

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo"
	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
	"github.com/stretchr/testify/require"
)

type counter struct {
	calls []string
}

func (c *counter) add(s string) {
	c.calls = append(c.calls, s)
}

func starts(descriptors []choreo.KeyframeDescriptor) []float64 {
	out := make([]float64, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.RelativeStart
	}
	return out
}

func TestKeyframeSequentialPlacement(t *testing.T) {
	k := choreo.NewKeyframeAnimation[*counter](time.Second).
		Next(250*time.Millisecond, func(c *counter) { c.add("a") }).
		Next(250*time.Millisecond, func(c *counter) { c.add("b") }).
		Next(250*time.Millisecond, func(c *counter) { c.add("c") })

	descriptors := k.Descriptors()
	require.Len(t, descriptors, 3)
	require.InDeltaSlice(t, []float64{0, 0.25, 0.5}, starts(descriptors), 1e-9)
	for _, d := range descriptors {
		require.InDelta(t, 0.25, d.RelativeDuration, 1e-9)
	}
}

func TestKeyframeNextStartsAfterLatestEnd(t *testing.T) {
	k := choreo.NewKeyframeAnimation[*counter](time.Second).
		OverRelative(0, 0.8, func(*counter) {}).
		OverDuration(100*time.Millisecond, 100*time.Millisecond, func(*counter) {}).
		NextRelative(0.1, func(*counter) {})

	descriptors := k.Descriptors()
	require.Len(t, descriptors, 3)
	require.InDelta(t, 0.1, descriptors[1].RelativeStart, 1e-9)
	require.InDelta(t, 0.8, descriptors[2].RelativeStart, 1e-9)
	require.InDelta(t, 0.9, descriptors[2].End(), 1e-9)
}

func TestKeyframeOverUsesWindowBounds(t *testing.T) {
	k := choreo.NewKeyframeAnimation[*counter](2*time.Second).
		Over(500*time.Millisecond, 1500*time.Millisecond, func(*counter) {})

	d := k.Descriptors()[0]
	require.InDelta(t, 0.25, d.RelativeStart, 1e-9)
	require.InDelta(t, 0.5, d.RelativeDuration, 1e-9)
}

func TestKeyframeNextTimes(t *testing.T) {
	var indices []int
	p := &recordingPlatform{}

	k := choreo.NewKeyframeAnimation[*counter](time.Second).
		WithPlatform(p).
		OverRelative(0.2, 0.4, func(*counter) {}).
		NextTimes(200*time.Millisecond, 3, func(_ *counter, i int) { indices = append(indices, i) })

	require.InDeltaSlice(t, []float64{0.2, 0.4, 0.6, 0.8}, starts(k.Descriptors()), 1e-9)

	k.Play(&counter{})
	require.Equal(t, []int{0, 1, 2}, indices)

	empty := choreo.NewKeyframeAnimation[*counter](time.Second).NextRelativeTimes(0.1, 0, func(*counter, int) {})
	require.Empty(t, empty.Descriptors())
}

func TestKeyframePlay(t *testing.T) {
	p := &recordingPlatform{}
	target := &counter{}
	var finished []*counter

	k := choreo.NewKeyframeAnimation[*counter](0).
		WithPlatform(p).
		Delay(100*time.Millisecond).
		Options(constants.KeyframeCalculationDiscrete).
		AnimationOptions(constants.CurveLinear).
		Next(150*time.Millisecond, func(c *counter) { c.add("first") }).
		Next(150*time.Millisecond, func(c *counter) { c.add("second") }).
		Finally(func(*counter) { t.Fatal("replaced completion must not run") }).
		Finally(func(c *counter) { finished = append(finished, c) })

	require.Equal(t, constants.DefaultKeyframeDuration, k.Duration())

	k.Play(target, choreo.WithDuration(time.Second), choreo.WithOptions(constants.KeyframeCalculationCubic))

	require.Len(t, p.keyframes, 1, "one call to the keyframe primitive")
	call := p.keyframes[0]
	require.Equal(t, time.Second, call.params.Duration)
	require.Equal(t, 100*time.Millisecond, call.params.Delay)
	require.True(t, call.params.Options.Contains(constants.KeyframeCalculationDiscrete))
	require.True(t, call.params.Options.Contains(constants.CurveLinear))
	require.True(t, call.params.Options.Contains(constants.KeyframeCalculationCubic))

	require.Len(t, call.frames, 2)
	require.InDelta(t, 0.5, call.frames[1].RelativeStart, 1e-9)
	require.InDelta(t, 0.5, call.frames[1].RelativeDuration, 1e-9, "windows carry their duration")
	require.Equal(t, []string{"first", "second"}, target.calls)

	require.Empty(t, finished)
	call.completion(true)
	require.Equal(t, []*counter{target}, finished)

	// Overrides apply to one play only.
	k.Play(&counter{})
	require.Equal(t, constants.DefaultKeyframeDuration, p.keyframes[1].params.Duration)
	require.False(t, p.keyframes[1].params.Options.Contains(constants.KeyframeCalculationCubic))
}

func TestKeyframeMisusePanics(t *testing.T) {
	require.Panics(t, func() { choreo.NewKeyframeAnimation[int](-time.Second) })
	require.Panics(t, func() {
		choreo.NewKeyframeAnimation[int](time.Second).Next(-time.Millisecond, func(int) {})
	})
	require.Panics(t, func() {
		choreo.NewKeyframeAnimation[int](time.Second).NextTimes(time.Millisecond, -1, func(int, int) {})
	})
	require.Panics(t, func() {
		choreo.NewKeyframeAnimation[int](time.Second).OverRelative(0.5, 0.2, func(int) {})
	})
	require.Panics(t, func() {
		choreo.NewKeyframeAnimation[int](time.Second).Play(1, choreo.WithDelay(-time.Second))
	})
}

func TestKeyframeAnimatesOnHeadless(t *testing.T) {
	h := choreo.NewHeadless()
	v := view.New("button", view.Rect{W: 40, H: 20})
	done := false

	choreo.NewKeyframeAnimation[*view.View](time.Second).
		WithPlatform(h).
		Next(500*time.Millisecond, func(v *view.View) { v.SetAlpha(0) }).
		Next(500*time.Millisecond, func(v *view.View) { v.SetAlpha(1) }).
		Finally(func(*view.View) { done = true }).
		Play(v)

	h.Advance(250 * time.Millisecond)
	require.InDelta(t, 0.5, v.PresentedAlpha(), 0.01)

	h.Advance(500 * time.Millisecond)
	require.InDelta(t, 0.5, v.PresentedAlpha(), 0.01)
	require.False(t, done)

	h.Advance(250 * time.Millisecond)
	require.True(t, done)
	require.Equal(t, 1.0, v.PresentedAlpha())
}

func TestKeyframePacedPlaysAsLinear(t *testing.T) {
	h := choreo.NewHeadless()
	linear := view.New("linear", view.Rect{W: 40, H: 20})
	paced := view.New("paced", view.Rect{W: 40, H: 20})

	for v, options := range map[*view.View]constants.AnimationOptions{
		linear: constants.KeyframeCalculationLinear,
		paced:  constants.KeyframeCalculationPaced,
	} {
		choreo.NewKeyframeAnimation[*view.View](time.Second).
			WithPlatform(h).
			Options(options).
			Next(200*time.Millisecond, func(v *view.View) { v.SetOrigin(view.Point{X: 10}) }).
			Next(800*time.Millisecond, func(v *view.View) { v.SetOrigin(view.Point{X: 20}) }).
			Play(v)
	}

	for range 4 {
		h.Advance(250 * time.Millisecond)
		require.InDelta(t, linear.PresentedFrame().X, paced.PresentedFrame().X, 0.001)
	}
	require.Equal(t, 20.0, paced.PresentedFrame().X)
}

func TestUnsafeKeyframeAnimation(t *testing.T) {
	p := &recordingPlatform{}
	var calls []string
	finished := 0

	k := choreo.NewUnsafeKeyframeAnimation(time.Second).
		WithPlatform(p).
		Next(500*time.Millisecond, func() { calls = append(calls, "next") }).
		NextRelativeTimes(0.25, 2, func(i int) { calls = append(calls, "times") }).
		Finally(func() { finished++ })

	require.InDeltaSlice(t, []float64{0, 0.5, 0.75}, starts(k.Descriptors()), 1e-9)

	k.Play(choreo.WithAnimationOptions(constants.CurveEaseOut))
	require.Equal(t, []string{"next", "times", "times"}, calls)
	require.True(t, p.keyframes[0].params.Options.Contains(constants.CurveEaseOut))

	p.keyframes[0].completion(true)
	require.Equal(t, 1, finished)
}
