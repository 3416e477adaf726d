package gesture

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

const (
	// Only samples this close to the newest one contribute to the velocity estimate.
	velocityHorizon = 100 * time.Millisecond
	// A gap this long between two samples means the pointer came to rest in between.
	velocityStopGap = 40 * time.Millisecond
	maxSamples      = 20
)

type sample struct {
	t   time.Duration
	pos f32.Point
}

// velocityTracker estimates pointer velocity from a bounded window of recent samples.
type velocityTracker struct {
	samples []sample
}

func (vt *velocityTracker) reset() {
	vt.samples = vt.samples[:0]
}

func (vt *velocityTracker) add(t time.Duration, pos f32.Point) {
	if n := len(vt.samples); n > 0 && t-vt.samples[n-1].t > velocityStopGap {
		vt.samples = vt.samples[:0]
	}
	if len(vt.samples) == maxSamples {
		copy(vt.samples, vt.samples[1:])
		vt.samples = vt.samples[:maxSamples-1]
	}
	vt.samples = append(vt.samples, sample{t, pos})
}

// estimate returns the slope of a least-squares line fit through the samples within velocityHorizon of the newest
// sample, in units per second.
func (vt *velocityTracker) estimate() f32.Point {
	n := len(vt.samples)
	if n < 2 {
		return f32.Point{}
	}
	newest := vt.samples[n-1].t
	window := vt.samples
	for i, s := range vt.samples {
		if newest-s.t <= velocityHorizon {
			window = vt.samples[i:]
			break
		}
	}
	if len(window) < 2 {
		return f32.Point{}
	}

	var mt, mx, my float64
	for _, s := range window {
		mt += (s.t - newest).Seconds()
		mx += float64(s.pos.X)
		my += float64(s.pos.Y)
	}
	k := float64(len(window))
	mt /= k
	mx /= k
	my /= k

	var stt, stx, sty float64
	for _, s := range window {
		dt := (s.t - newest).Seconds() - mt
		stt += dt * dt
		stx += dt * (float64(s.pos.X) - mx)
		sty += dt * (float64(s.pos.Y) - my)
	}
	if stt == 0 {
		return f32.Point{}
	}
	return f32.Pt(float32(stx/stt), float32(sty/stt))
}

type fling struct {
	start    TouchEvent
	end      TouchEvent
	velocity f32.Point
}

// flingDetector follows the first pointer of a touch sequence and reports a fling when it is released fast enough
// after having moved past the touch slop.
type flingDetector struct {
	active bool
	id     pointer.ID
	down   TouchEvent
	vt     velocityTracker
}

func (fd *flingDetector) touch(ev TouchEvent, cfg Config) (fling, bool) {
	switch ev.Phase {
	case PhaseDown:
		fd.active = true
		fd.id = ev.PointerID
		fd.down = ev
		fd.vt.reset()
		fd.vt.add(ev.Time, ev.Raw)

	case PhaseMove:
		if fd.active && ev.PointerID == fd.id {
			fd.vt.add(ev.Time, ev.Raw)
		}

	case PhaseUp, PhasePointerUp:
		if !fd.active || ev.PointerID != fd.id {
			break
		}
		fd.active = false
		fd.vt.add(ev.Time, ev.Raw)

		d := ev.Raw.Sub(fd.down.Raw)
		if d.X*d.X+d.Y*d.Y <= cfg.TouchSlop*cfg.TouchSlop {
			break
		}
		v := fd.vt.estimate()
		if max(abs(v.X), abs(v.Y)) <= cfg.MinFlingVelocity {
			break
		}
		return fling{start: fd.down, end: ev, velocity: v}, true

	case PhaseCancel:
		fd.active = false
		fd.vt.reset()
	}
	return fling{}, false
}

// Classify decides whether a fling from start to end with the given release velocity is a swipe. The dominant axis
// has to exceed both thresholds. The returned distance is the absolute displacement along that axis.
func Classify(start, end, velocity f32.Point, distanceThreshold, velocityThreshold float32) (Direction, float32, bool) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	adx, ady := abs(dx), abs(dy)

	switch {
	case adx > ady && adx > distanceThreshold && abs(velocity.X) > velocityThreshold:
		if dx > 0 {
			return Right, adx, true
		}
		return Left, adx, true
	case ady > adx && ady > distanceThreshold && abs(velocity.Y) > velocityThreshold:
		if dy > 0 {
			return Down, ady, true
		}
		return Up, ady, true
	default:
		return 0, 0, false
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
