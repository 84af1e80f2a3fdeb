package choreo

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/BrandonKowalski/choreo/pkg/choreo/internal"
)

// KeyframeDescriptor is the time window of one keyframe, in fractions of the
// animation's total duration.
type KeyframeDescriptor struct {
	RelativeStart    float64
	RelativeDuration float64
}

// End returns the fraction at which the keyframe ends.
func (d KeyframeDescriptor) End() float64 {
	return d.RelativeStart + d.RelativeDuration
}

type keyframe[T any] struct {
	KeyframeDescriptor
	animation func(T)
}

// KeyframeAnimation builds a keyframe animation over a target of type T. The
// target is passed to every keyframe and to the completion when the animation
// is played, so one animation can be declared once and played on many targets.
//
//	pulse := choreo.NewKeyframeAnimation[*view.View](600 * time.Millisecond).
//		Next(300*time.Millisecond, func(v *view.View) { v.SetAlpha(0.4) }).
//		Next(300*time.Millisecond, func(v *view.View) { v.SetAlpha(1) })
//	pulse.Play(button)
type KeyframeAnimation[T any] struct {
	duration   time.Duration
	delay      time.Duration
	options    constants.AnimationOptions
	keyframes  []keyframe[T]
	completion func(T)
	platform   Platform
}

// NewKeyframeAnimation creates a keyframe animation lasting duration. Zero
// means the configured default duration, or constants.DefaultKeyframeDuration
// when none is set.
func NewKeyframeAnimation[T any](duration time.Duration) *KeyframeAnimation[T] {
	if duration < 0 {
		panic(fmt.Sprintf("choreo: keyframe animation duration must not be negative, got %s", duration))
	}
	if duration == 0 {
		duration = defaultKeyframeDuration()
	}
	return &KeyframeAnimation[T]{duration: duration}
}

func defaultKeyframeDuration() time.Duration {
	if d := currentConfig().Animation.DefaultDuration.Duration; d > 0 {
		return d
	}
	return constants.DefaultKeyframeDuration
}

// Duration returns the total duration keyframe times are measured against.
func (k *KeyframeAnimation[T]) Duration() time.Duration {
	return k.duration
}

// WithPlatform plays the animation on p instead of the default platform. The
// default platform runs completions on its own goroutine unless one was set
// with SetPlatform.
func (k *KeyframeAnimation[T]) WithPlatform(p Platform) *KeyframeAnimation[T] {
	k.platform = p
	return k
}

// Delay sets the delay before the animation begins.
func (k *KeyframeAnimation[T]) Delay(d time.Duration) *KeyframeAnimation[T] {
	if d < 0 {
		panic(fmt.Sprintf("choreo: keyframe animation delay must not be negative, got %s", d))
	}
	k.delay = d
	return k
}

// Options adds keyframe options, such as a calculation mode.
func (k *KeyframeAnimation[T]) Options(options constants.AnimationOptions) *KeyframeAnimation[T] {
	k.options = k.options.Union(options)
	return k
}

// AnimationOptions adds animation options, such as a timing curve.
func (k *KeyframeAnimation[T]) AnimationOptions(options constants.AnimationOptions) *KeyframeAnimation[T] {
	k.options = k.options.Union(options)
	return k
}

// CurrentOptions returns the options set so far.
func (k *KeyframeAnimation[T]) CurrentOptions() constants.AnimationOptions {
	return k.options
}

func (k *KeyframeAnimation[T]) relative(d time.Duration) float64 {
	return float64(d) / float64(k.duration)
}

// end returns the latest end of the keyframes added so far.
func (k *KeyframeAnimation[T]) end() float64 {
	end := 0.0
	for _, f := range k.keyframes {
		end = max(end, f.End())
	}
	return end
}

func (k *KeyframeAnimation[T]) add(start, duration float64, animation func(T)) {
	if duration < 0 {
		panic(fmt.Sprintf("choreo: keyframe duration must not be negative, got %g", duration))
	}
	if animation == nil {
		panic("choreo: keyframe animation must not be nil")
	}
	k.keyframes = append(k.keyframes, keyframe[T]{
		KeyframeDescriptor: KeyframeDescriptor{RelativeStart: start, RelativeDuration: duration},
		animation:          animation,
	})
}

// Next adds a keyframe lasting d that starts when every keyframe added so far
// has ended.
func (k *KeyframeAnimation[T]) Next(d time.Duration, animation func(T)) *KeyframeAnimation[T] {
	if d < 0 {
		panic(fmt.Sprintf("choreo: keyframe duration must not be negative, got %s", d))
	}
	return k.NextRelative(k.relative(d), animation)
}

// NextRelative is Next with the duration given as a fraction of the total.
func (k *KeyframeAnimation[T]) NextRelative(relativeDuration float64, animation func(T)) *KeyframeAnimation[T] {
	k.add(k.end(), relativeDuration, animation)
	return k
}

// NextTimes adds times consecutive keyframes lasting d each. animation
// receives the keyframe's index, starting at 0.
func (k *KeyframeAnimation[T]) NextTimes(d time.Duration, times int, animation func(T, int)) *KeyframeAnimation[T] {
	if d < 0 {
		panic(fmt.Sprintf("choreo: keyframe duration must not be negative, got %s", d))
	}
	return k.NextRelativeTimes(k.relative(d), times, animation)
}

// NextRelativeTimes is NextTimes with the duration given as a fraction of the total.
func (k *KeyframeAnimation[T]) NextRelativeTimes(relativeDuration float64, times int, animation func(T, int)) *KeyframeAnimation[T] {
	if times < 0 {
		panic(fmt.Sprintf("choreo: keyframe repetitions must not be negative, got %d", times))
	}
	if animation == nil {
		panic("choreo: keyframe animation must not be nil")
	}
	for i := 0; i < times; i++ {
		index := i
		k.NextRelative(relativeDuration, func(target T) {
			animation(target, index)
		})
	}
	return k
}

// Over adds a keyframe playing between start and end.
func (k *KeyframeAnimation[T]) Over(start, end time.Duration, animation func(T)) *KeyframeAnimation[T] {
	return k.OverRelative(k.relative(start), k.relative(end), animation)
}

// OverDuration adds a keyframe starting at start and lasting d.
func (k *KeyframeAnimation[T]) OverDuration(start, d time.Duration, animation func(T)) *KeyframeAnimation[T] {
	if d < 0 {
		panic(fmt.Sprintf("choreo: keyframe duration must not be negative, got %s", d))
	}
	return k.OverRelativeDuration(k.relative(start), k.relative(d), animation)
}

// OverRelative adds a keyframe playing between two fractions of the total.
func (k *KeyframeAnimation[T]) OverRelative(relativeStart, relativeEnd float64, animation func(T)) *KeyframeAnimation[T] {
	return k.OverRelativeDuration(relativeStart, relativeEnd-relativeStart, animation)
}

// OverRelativeDuration adds a keyframe starting at relativeStart and lasting
// relativeDuration, both fractions of the total.
func (k *KeyframeAnimation[T]) OverRelativeDuration(relativeStart, relativeDuration float64, animation func(T)) *KeyframeAnimation[T] {
	k.add(relativeStart, relativeDuration, animation)
	return k
}

// Finally sets the function called with the target once the animation ends.
// Only the last one set is called.
func (k *KeyframeAnimation[T]) Finally(completion func(T)) *KeyframeAnimation[T] {
	k.completion = completion
	return k
}

// Descriptors returns the keyframe windows in the order they were added.
func (k *KeyframeAnimation[T]) Descriptors() []KeyframeDescriptor {
	descriptors := make([]KeyframeDescriptor, len(k.keyframes))
	for i, f := range k.keyframes {
		descriptors[i] = f.KeyframeDescriptor
	}
	return descriptors
}

// PlayOption overrides the timing of a single Play.
type PlayOption func(*KeyframeParameters)

// WithDuration plays over d instead of the declared duration. Keyframe windows
// keep their fractions.
func WithDuration(d time.Duration) PlayOption {
	return func(p *KeyframeParameters) {
		p.Duration = d
	}
}

// WithDelay plays after d instead of the declared delay.
func WithDelay(d time.Duration) PlayOption {
	return func(p *KeyframeParameters) {
		p.Delay = d
	}
}

// WithOptions adds keyframe options for this play.
func WithOptions(options constants.AnimationOptions) PlayOption {
	return func(p *KeyframeParameters) {
		p.Options = p.Options.Union(options)
	}
}

// WithAnimationOptions adds animation options for this play.
func WithAnimationOptions(options constants.AnimationOptions) PlayOption {
	return func(p *KeyframeParameters) {
		p.Options = p.Options.Union(options)
	}
}

// Play runs every keyframe on target as one animation. The completion set with
// Finally is called once, with target, when it ends.
func (k *KeyframeAnimation[T]) Play(target T, opts ...PlayOption) {
	params := KeyframeParameters{
		Duration: k.duration,
		Delay:    k.delay,
		Options:  k.options,
	}
	for _, opt := range opts {
		opt(&params)
	}
	if params.Duration < 0 || params.Delay < 0 {
		panic(fmt.Sprintf("choreo: keyframe animation timing must not be negative, got duration %s delay %s",
			params.Duration, params.Delay))
	}

	frames := make([]KeyframeWindow, 0, len(k.keyframes))
	for _, f := range k.keyframes {
		animation := f.animation
		frames = append(frames, KeyframeWindow{
			RelativeStart:    f.RelativeStart,
			RelativeDuration: f.RelativeDuration,
			Animations: func() {
				animation(target)
			},
		})
	}

	completion := k.completion
	internal.GetInternalLogger().Debug("Playing keyframe animation",
		"keyframes", len(frames), "duration", params.Duration, "delay", params.Delay, "options", params.Options.String())
	platformOrDefault(k.platform).AnimateKeyframes(params, frames, func(bool) {
		if completion != nil {
			completion(target)
		}
	})
}

// UnsafeKeyframeAnimation is a keyframe animation whose keyframes capture what
// they animate themselves instead of receiving a target.
type UnsafeKeyframeAnimation struct {
	inner *KeyframeAnimation[struct{}]
}

// NewUnsafeKeyframeAnimation creates a keyframe animation lasting duration.
// Zero means the configured default duration.
func NewUnsafeKeyframeAnimation(duration time.Duration) *UnsafeKeyframeAnimation {
	return &UnsafeKeyframeAnimation{inner: NewKeyframeAnimation[struct{}](duration)}
}

func discardTarget(fn func()) func(struct{}) {
	if fn == nil {
		return nil
	}
	return func(struct{}) { fn() }
}

func (k *UnsafeKeyframeAnimation) Duration() time.Duration {
	return k.inner.Duration()
}

func (k *UnsafeKeyframeAnimation) WithPlatform(p Platform) *UnsafeKeyframeAnimation {
	k.inner.WithPlatform(p)
	return k
}

func (k *UnsafeKeyframeAnimation) Delay(d time.Duration) *UnsafeKeyframeAnimation {
	k.inner.Delay(d)
	return k
}

func (k *UnsafeKeyframeAnimation) Options(options constants.AnimationOptions) *UnsafeKeyframeAnimation {
	k.inner.Options(options)
	return k
}

func (k *UnsafeKeyframeAnimation) AnimationOptions(options constants.AnimationOptions) *UnsafeKeyframeAnimation {
	k.inner.AnimationOptions(options)
	return k
}

func (k *UnsafeKeyframeAnimation) CurrentOptions() constants.AnimationOptions {
	return k.inner.CurrentOptions()
}

func (k *UnsafeKeyframeAnimation) Next(d time.Duration, animation func()) *UnsafeKeyframeAnimation {
	k.inner.Next(d, discardTarget(animation))
	return k
}

func (k *UnsafeKeyframeAnimation) NextRelative(relativeDuration float64, animation func()) *UnsafeKeyframeAnimation {
	k.inner.NextRelative(relativeDuration, discardTarget(animation))
	return k
}

func (k *UnsafeKeyframeAnimation) NextTimes(d time.Duration, times int, animation func(int)) *UnsafeKeyframeAnimation {
	k.inner.NextTimes(d, times, indexOnly(animation))
	return k
}

func (k *UnsafeKeyframeAnimation) NextRelativeTimes(relativeDuration float64, times int, animation func(int)) *UnsafeKeyframeAnimation {
	k.inner.NextRelativeTimes(relativeDuration, times, indexOnly(animation))
	return k
}

func indexOnly(fn func(int)) func(struct{}, int) {
	if fn == nil {
		return nil
	}
	return func(_ struct{}, i int) { fn(i) }
}

func (k *UnsafeKeyframeAnimation) Over(start, end time.Duration, animation func()) *UnsafeKeyframeAnimation {
	k.inner.Over(start, end, discardTarget(animation))
	return k
}

func (k *UnsafeKeyframeAnimation) OverDuration(start, d time.Duration, animation func()) *UnsafeKeyframeAnimation {
	k.inner.OverDuration(start, d, discardTarget(animation))
	return k
}

func (k *UnsafeKeyframeAnimation) OverRelative(relativeStart, relativeEnd float64, animation func()) *UnsafeKeyframeAnimation {
	k.inner.OverRelative(relativeStart, relativeEnd, discardTarget(animation))
	return k
}

func (k *UnsafeKeyframeAnimation) OverRelativeDuration(relativeStart, relativeDuration float64, animation func()) *UnsafeKeyframeAnimation {
	k.inner.OverRelativeDuration(relativeStart, relativeDuration, discardTarget(animation))
	return k
}

// Finally sets the function called once the animation ends.
func (k *UnsafeKeyframeAnimation) Finally(completion func()) *UnsafeKeyframeAnimation {
	k.inner.Finally(discardTarget(completion))
	return k
}

func (k *UnsafeKeyframeAnimation) Descriptors() []KeyframeDescriptor {
	return k.inner.Descriptors()
}

// Play runs every keyframe as one animation.
func (k *UnsafeKeyframeAnimation) Play(opts ...PlayOption) {
	k.inner.Play(struct{}{}, opts...)
}
