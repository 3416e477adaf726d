package widget

import (
	"math"
	"time"

	"gioui.org/f32"
	"golang.org/x/exp/constraints"
	"honnef.co/go/stuff/math/mathutil"
)

type EasingFunction func(float64) float64
type LerpFunction[T any] func(start, end T, r float64) T

// Animation interpolates between two values over a fixed duration. The zero value is an inactive animation.
type Animation[T any] struct {
	StartValue T
	EndValue   T
	StartTime  time.Time
	Duration   time.Duration
	Ease       EasingFunction
	Lerp       LerpFunction[T]

	active bool
}

func (anim *Animation[T]) Start(now time.Time, v1, v2 T, d time.Duration, ease EasingFunction) {
	anim.StartValue = v1
	anim.EndValue = v2
	anim.StartTime = now
	anim.Duration = d
	anim.Ease = ease
	anim.active = true
}

func StartSimpleAnimation[T constraints.Integer | constraints.Float](now time.Time, anim *Animation[T], v1, v2 T, d time.Duration, ease EasingFunction) {
	anim.Start(now, v1, v2, d, ease)
	anim.Lerp = mathutil.Lerp[T]
}

// Value returns the value at time now. Once the duration has elapsed the animation becomes inactive and Value returns
// the end value.
func (anim *Animation[T]) Value(now time.Time) T {
	if !anim.active {
		return anim.EndValue
	}

	d := now.Sub(anim.StartTime)
	if d >= anim.Duration {
		anim.active = false
		return anim.EndValue
	}
	if d < 0 {
		d = 0
	}

	ratio := float64(d) / float64(anim.Duration)
	if anim.Ease != nil {
		ratio = anim.Ease(ratio)
	}

	return anim.Lerp(anim.StartValue, anim.EndValue, ratio)
}

func (anim *Animation[T]) Cancel() {
	anim.active = false
}

func (anim *Animation[T]) Done() bool {
	return !anim.active
}

// LerpPoint interpolates both coordinates of a point.
func LerpPoint(start, end f32.Point, r float64) f32.Point {
	return f32.Pt(mathutil.Lerp(start.X, end.X, r), mathutil.Lerp(start.Y, end.Y, r))
}

func EaseIn(power int) EasingFunction {
	switch power {
	case 1:
		return func(r float64) float64 { return r }
	case 2:
		return func(r float64) float64 { return r * r }
	case 3:
		return func(r float64) float64 { return r * r * r }
	default:
		return func(r float64) float64 { return math.Pow(r, float64(power)) }
	}
}

func EaseOut(power int) EasingFunction {
	switch power {
	case 1:
		return func(r float64) float64 { return r }
	case 2:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r }
	case 3:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r*r }
	default:
		return func(r float64) float64 { return 1 - math.Pow(1-r, float64(power)) }
	}
}

// EaseInOut accelerates during the first half and decelerates during the second.
func EaseInOut(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}
