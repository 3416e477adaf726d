package widget

import (
	"math"
	"testing"
	"time"

	"gioui.org/f32"
)

func TestAnimation(t *testing.T) {
	t0 := time.Unix(1000, 0)
	var anim Animation[float64]
	if !anim.Done() {
		t.Fatal("zero animation is active")
	}

	StartSimpleAnimation(t0, &anim, 0, 10, time.Second, EaseIn(1))
	tests := []struct {
		at   time.Duration
		want float64
	}{
		{-time.Second, 0},
		{0, 0},
		{250 * time.Millisecond, 2.5},
		{500 * time.Millisecond, 5},
	}
	for _, tt := range tests {
		if got := anim.Value(t0.Add(tt.at)); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("at %s: got %g, want %g", tt.at, got, tt.want)
		}
	}
	if anim.Done() {
		t.Error("animation finished early")
	}
	if got := anim.Value(t0.Add(time.Second)); got != 10 {
		t.Errorf("at end: got %g, want 10", got)
	}
	if !anim.Done() {
		t.Error("animation still active after its duration")
	}
}

func TestAnimationCancel(t *testing.T) {
	t0 := time.Unix(1000, 0)
	var anim Animation[float64]
	StartSimpleAnimation(t0, &anim, 0, 10, time.Second, EaseOut(2))
	anim.Cancel()
	if got := anim.Value(t0); got != 10 {
		t.Errorf("cancelled animation returned %g, want end value", got)
	}
}

func TestLerpPoint(t *testing.T) {
	got := LerpPoint(f32.Pt(0, 100), f32.Pt(-400, 0), 0.25)
	if math.Abs(float64(got.X+100)) > 1e-3 || math.Abs(float64(got.Y-75)) > 1e-3 {
		t.Errorf("got %v, want (-100, 75)", got)
	}
}

func TestEasing(t *testing.T) {
	fns := map[string]EasingFunction{
		"EaseIn(2)":  EaseIn(2),
		"EaseIn(5)":  EaseIn(5),
		"EaseOut(3)": EaseOut(3),
		"EaseOut(5)": EaseOut(5),
		"EaseInOut":  EaseInOut,
	}
	for name, fn := range fns {
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %g", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %g", name, got)
		}
		prev := 0.0
		for r := 0.1; r <= 1; r += 0.1 {
			if v := fn(r); v < prev {
				t.Errorf("%s isn't monotonic at %g", name, r)
			} else {
				prev = v
			}
		}
	}
}
