package gesture

import (
	"testing"
	"time"

	"gioui.org/f32"
)

func TestVelocityTracker(t *testing.T) {
	var vt velocityTracker
	if v := vt.estimate(); v != (f32.Point{}) {
		t.Errorf("empty tracker estimated %v", v)
	}

	vt.add(0, f32.Pt(0, 0))
	if v := vt.estimate(); v != (f32.Point{}) {
		t.Errorf("single sample estimated %v", v)
	}

	for i := 1; i <= 10; i++ {
		ts := time.Duration(i) * 10 * time.Millisecond
		vt.add(ts, f32.Pt(float32(i)*5, float32(i)*-2))
	}
	v := vt.estimate()
	if abs(v.X-500) > 0.1 || abs(v.Y+200) > 0.1 {
		t.Errorf("got %v, want (500, -200)", v)
	}
}

func TestVelocityTrackerHorizon(t *testing.T) {
	var vt velocityTracker
	// Slow for a long time, then fast for the last 100ms.
	var x float32
	ts := time.Duration(0)
	for i := 0; i < 15; i++ {
		vt.add(ts, f32.Pt(x, 0))
		ts += 20 * time.Millisecond
		x += 1
	}
	for i := 0; i < 5; i++ {
		vt.add(ts, f32.Pt(x, 0))
		ts += 20 * time.Millisecond
		x += 20
	}
	if v := vt.estimate(); v.X < 500 {
		t.Errorf("old samples dragged estimate down to %g", v.X)
	}
}

func TestVelocityTrackerStop(t *testing.T) {
	var vt velocityTracker
	vt.add(0, f32.Pt(0, 0))
	vt.add(10*time.Millisecond, f32.Pt(100, 0))
	vt.add(200*time.Millisecond, f32.Pt(100, 0))
	if v := vt.estimate(); v != (f32.Point{}) {
		t.Errorf("got %v after pointer came to rest", v)
	}
}

func TestVelocityTrackerBounded(t *testing.T) {
	var vt velocityTracker
	for i := 0; i < 3*maxSamples; i++ {
		vt.add(time.Duration(i)*time.Millisecond, f32.Pt(float32(i), 0))
	}
	if len(vt.samples) != maxSamples {
		t.Errorf("got %d samples, want %d", len(vt.samples), maxSamples)
	}
	if v := vt.estimate(); abs(v.X-1000) > 0.1 {
		t.Errorf("got %v, want (1000, 0)", v)
	}
}

func TestFlingTouchSlop(t *testing.T) {
	var fd flingDetector
	cfg := DefaultConfig()
	fd.touch(TouchEvent{Phase: PhaseDown}, cfg)
	fd.touch(TouchEvent{Phase: PhaseMove, Raw: f32.Pt(3, 3), Time: 5 * time.Millisecond}, cfg)
	if _, ok := fd.touch(TouchEvent{Phase: PhaseUp, Raw: f32.Pt(5, 5), Time: 10 * time.Millisecond}, cfg); ok {
		t.Error("tap was reported as a fling")
	}
}

func TestFlingSecondaryPointer(t *testing.T) {
	var fd flingDetector
	cfg := DefaultConfig()
	fd.touch(TouchEvent{Phase: PhaseDown, PointerID: 1}, cfg)
	fd.touch(TouchEvent{Phase: PhaseMove, PointerID: 1, Raw: f32.Pt(100, 0), Time: 10 * time.Millisecond}, cfg)
	if _, ok := fd.touch(TouchEvent{Phase: PhasePointerUp, PointerID: 2, Raw: f32.Pt(400, 0), Time: 20 * time.Millisecond}, cfg); ok {
		t.Error("release of a secondary pointer was reported as a fling")
	}
	f, ok := fd.touch(TouchEvent{Phase: PhaseUp, PointerID: 1, Raw: f32.Pt(200, 0), Time: 20 * time.Millisecond}, cfg)
	if !ok {
		t.Fatal("release of the primary pointer wasn't reported as a fling")
	}
	if f.start.Raw != (f32.Point{}) || f.end.Raw != f32.Pt(200, 0) {
		t.Errorf("got fling from %v to %v", f.start.Raw, f.end.Raw)
	}
	if abs(f.velocity.X-10000) > 1 {
		t.Errorf("got velocity %v, want (10000, 0)", f.velocity)
	}
}
