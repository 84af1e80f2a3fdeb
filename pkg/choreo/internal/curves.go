package internal

import (
	"math"
	"time"

	"github.com/BrandonKowalski/choreo/pkg/choreo/constants"
	"github.com/fogleman/ease"
)

// CurveFunc maps elapsed fraction [0, 1] to progress.
type CurveFunc func(t float64) float64

// CurveFor returns the timing curve selected by the options.
func CurveFor(options constants.AnimationOptions) CurveFunc {
	switch options.Curve() {
	case constants.CurveKindLinear:
		return ease.Linear
	case constants.CurveKindEaseIn:
		return ease.InCubic
	case constants.CurveKindEaseOut:
		return ease.OutCubic
	default:
		return ease.InOutCubic
	}
}

// Springs settle within the animation duration at this natural frequency,
// measured in radians per unit of normalised time.
const springFrequency = 4 * math.Pi

// SpringCurve returns a damped spring progress curve. dampingRatio 1 is
// critically damped, lower values oscillate around the target. velocity is the
// initial velocity in animation distances per second.
func SpringCurve(dampingRatio, velocity float64, duration time.Duration) CurveFunc {
	if dampingRatio <= 0 {
		dampingRatio = 0.01
	}
	omega := springFrequency
	zeta := dampingRatio
	// Velocity in distances per unit of normalised time.
	v0 := velocity * duration.Seconds()

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// Displacement from the target starts at -1 with velocity v0.
		if zeta < 1 {
			omegaD := omega * math.Sqrt(1-zeta*zeta)
			envelope := math.Exp(-zeta * omega * t)
			b := (zeta*omega - v0) / omegaD
			return 1 - envelope*(math.Cos(omegaD*t)+b*math.Sin(omegaD*t))
		}
		envelope := math.Exp(-omega * t)
		return 1 - envelope*(1+(omega-v0)*t)
	}
}

// Autoreverse folds a curve so it runs forward in the first half and back in
// the second.
func Autoreverse(curve CurveFunc) CurveFunc {
	return func(t float64) float64 {
		if t < 0.5 {
			return curve(t * 2)
		}
		return curve(2 - t*2)
	}
}
