package gesture

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

// Axis is a set of axes.
type Axis uint8

const (
	Horizontal Axis = 1 << iota
	Vertical

	Both = Horizontal | Vertical
)

// Direction is the direction of a swipe.
type Direction uint8

const (
	Left Direction = iota + 1
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Axis returns the axis the direction lies on.
func (d Direction) Axis() Axis {
	switch d {
	case Left, Right:
		return Horizontal
	case Up, Down:
		return Vertical
	default:
		return 0
	}
}

// Swiper receives recognized swipes. distance is never negative.
type Swiper interface {
	SwipeLeft(distance float32)
	SwipeRight(distance float32)
	SwipeUp(distance float32)
	SwipeDown(distance float32)
}

// SwiperFuncs implements Swiper with optional functions. Nil functions ignore the swipe.
type SwiperFuncs struct {
	Left  func(distance float32)
	Right func(distance float32)
	Up    func(distance float32)
	Down  func(distance float32)
}

func (fns SwiperFuncs) SwipeLeft(distance float32) {
	if fns.Left != nil {
		fns.Left(distance)
	}
}

func (fns SwiperFuncs) SwipeRight(distance float32) {
	if fns.Right != nil {
		fns.Right(distance)
	}
}

func (fns SwiperFuncs) SwipeUp(distance float32) {
	if fns.Up != nil {
		fns.Up(distance)
	}
}

func (fns SwiperFuncs) SwipeDown(distance float32) {
	if fns.Down != nil {
		fns.Down(distance)
	}
}

// View is the transform state of the thing being swiped.
type View interface {
	Translation() f32.Point
	SetTranslation(f32.Point)
	Visible() bool
	SetVisible(bool)
	// Animate starts an eased transition towards tr.Target, for the axes in tr.Axes. It supersedes any transition
	// still in progress.
	Animate(tr Transition)
}

// Transition describes an animated change of a view's translation.
type Transition struct {
	Target   f32.Point
	Axes     Axis
	Duration time.Duration
}

// Screen reports the size of the screen, in dp.
type Screen interface {
	ScreenSize() f32.Point
}

// ScreenFunc implements Screen with a function.
type ScreenFunc func() f32.Point

func (fn ScreenFunc) ScreenSize() f32.Point { return fn() }

// Phase is the kind of a TouchEvent.
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	PhaseCancel
	// PhasePointerDown and PhasePointerUp are presses and releases while another pointer is down.
	PhasePointerDown
	PhasePointerUp
)

// TouchEvent is a single pointer event as seen by a Swipe.
type TouchEvent struct {
	Phase     Phase
	PointerID pointer.ID
	// Position is relative to the view, Raw is relative to the screen.
	Position f32.Point
	Raw      f32.Point
	Time     time.Duration
}

// Swipe classifies the motion of a pointer over a view into swipes and optionally drags the view along.
type Swipe struct {
	cfg    Config
	sink   Swiper
	screen Screen
	view   View

	fling flingDetector

	// The pointer that started the current touch sequence.
	primary  pointer.ID
	tracking bool
	downRaw  f32.Point
	prevRaw  f32.Point

	// Pointer IDs currently pressed, maintained by Events.
	pressed []pointer.ID
	// The most recent swipe.
	last SwipeEvent
}

// NewSwipe returns a Swipe bound to v that reports swipes to sink. Both may be nil.
func NewSwipe(v View, sink Swiper, cfg Config) *Swipe {
	return &Swipe{
		cfg:  cfg,
		sink: sink,
		view: v,
	}
}

func (s *Swipe) Config() Config       { return s.cfg }
func (s *Swipe) SetScreen(scr Screen) { s.screen = scr }

func (s *Swipe) SetDragHorizontal(b bool) *Swipe {
	s.cfg.DragHorizontal = b
	return s
}

func (s *Swipe) SetDragVertical(b bool) *Swipe {
	s.cfg.DragVertical = b
	return s
}

func (s *Swipe) SetDragSnapBack(b bool) *Swipe {
	s.cfg.DragSnapBack = b
	return s
}

// SetDragSnapBackThreshold sets the snap back threshold. A positive threshold also enables snap back.
func (s *Swipe) SetDragSnapBackThreshold(v float32) *Swipe {
	s.cfg = s.cfg.WithDragSnapBackThreshold(v)
	return s
}

func (s *Swipe) SetExitScreenOnSwipe(b bool) *Swipe {
	s.cfg.ExitScreenOnSwipe = b
	return s
}

func (s *Swipe) SetAnimated(b bool) *Swipe {
	s.cfg.Animated = b
	return s
}

func (s *Swipe) SetAnimationDuration(d time.Duration) *Swipe {
	s.cfg.AnimationDuration = d
	return s
}

func (s *Swipe) SetDistanceThreshold(v float32) *Swipe {
	s.cfg.DistanceThreshold = v
	return s
}

func (s *Swipe) SetVelocityThreshold(v float32) *Swipe {
	s.cfg.VelocityThreshold = v
	return s
}

func (s *Swipe) SwipeLeft(distance float32) {
	if s.sink != nil {
		s.sink.SwipeLeft(distance)
	}
}

func (s *Swipe) SwipeRight(distance float32) {
	if s.sink != nil {
		s.sink.SwipeRight(distance)
	}
}

func (s *Swipe) SwipeUp(distance float32) {
	if s.sink != nil {
		s.sink.SwipeUp(distance)
	}
}

func (s *Swipe) SwipeDown(distance float32) {
	if s.sink != nil {
		s.sink.SwipeDown(distance)
	}
}

// Reset abandons the current touch sequence.
func (s *Swipe) Reset() {
	s.pressed = s.pressed[:0]
	s.fling = flingDetector{}
	s.tracking = false
}

// Touch processes one touch event targeting v. A nil v keeps the previously seen view. It reports whether the event
// completed a swipe.
func (s *Swipe) Touch(v View, ev TouchEvent) bool {
	if v != nil {
		s.view = v
	}

	swiped := false
	exited := false
	if f, ok := s.fling.touch(ev, s.cfg); ok {
		var dir Direction
		dir, swiped = s.onFling(f)
		if swiped {
			exited = s.exitScreen(dir)
		}
	}

	if s.cfg.DragHorizontal || s.cfg.DragVertical {
		s.drag(ev, exited)
	}
	return swiped
}

func (s *Swipe) onFling(f fling) (Direction, bool) {
	dir, dist, ok := Classify(f.start.Raw, f.end.Raw, f.velocity, s.cfg.DistanceThreshold, s.cfg.VelocityThreshold)
	if !ok {
		return 0, false
	}
	switch dir {
	case Left:
		s.SwipeLeft(dist)
	case Right:
		s.SwipeRight(dist)
	case Up:
		s.SwipeUp(dist)
	case Down:
		s.SwipeDown(dist)
	}
	s.last = SwipeEvent{Direction: dir, Distance: dist}
	return dir, true
}

// exitScreen moves the view past the edge of the screen in direction dir. Without animation the view is also hidden.
// It reports whether the view was moved.
func (s *Swipe) exitScreen(dir Direction) bool {
	if !s.cfg.ExitScreenOnSwipe || s.view == nil {
		return false
	}

	var size f32.Point
	if s.screen != nil {
		size = s.screen.ScreenSize()
	}
	target := s.view.Translation()
	switch dir {
	case Left:
		target.X = -size.X
	case Right:
		target.X = 2 * size.X
	case Up:
		target.Y = -size.Y
	case Down:
		target.Y = 2 * size.Y
	}

	if s.cfg.Animated {
		s.view.Animate(Transition{Target: target, Axes: dir.Axis(), Duration: s.cfg.AnimationDuration})
	} else {
		s.view.SetTranslation(target)
		s.view.SetVisible(false)
	}
	return true
}

func (s *Swipe) drag(ev TouchEvent, exited bool) {
	switch ev.Phase {
	case PhaseDown:
		s.primary = ev.PointerID
		s.tracking = true
		s.downRaw = ev.Raw

	case PhaseMove:
		if !s.tracking || ev.PointerID != s.primary || s.view == nil {
			break
		}
		delta := ev.Raw.Sub(s.prevRaw)
		tr := s.view.Translation()
		if s.cfg.DragHorizontal {
			tr.X += delta.X
		}
		if s.cfg.DragVertical {
			tr.Y += delta.Y
		}
		s.view.SetTranslation(tr)

	case PhaseUp, PhaseCancel, PhasePointerUp:
		if !s.tracking {
			break
		}
		end := ev.Raw
		if ev.Phase == PhaseCancel {
			// Cancellations aren't tied to a pointer and carry no position.
			end = s.prevRaw
		} else if ev.PointerID != s.primary {
			break
		}
		s.tracking = false
		// A view that is leaving the screen must not be pulled back.
		if !s.cfg.DragSnapBack || exited || s.view == nil {
			break
		}
		s.snapBack(end.Sub(s.downRaw))
	}

	if ev.PointerID == s.primary && ev.Phase != PhaseCancel {
		s.prevRaw = ev.Raw
	}
}

// snapBack resets the translation of every axis whose displacement d is within the snap back threshold.
func (s *Swipe) snapBack(d f32.Point) {
	th := s.cfg.DragSnapBackThreshold
	var axes Axis
	if abs(d.X) <= th || th <= 0 {
		axes |= Horizontal
	}
	if abs(d.Y) <= th || th <= 0 {
		axes |= Vertical
	}
	if axes == 0 {
		return
	}

	if s.cfg.Animated {
		s.view.Animate(Transition{Axes: axes, Duration: s.cfg.AnimationDuration})
		return
	}
	tr := s.view.Translation()
	if axes&Horizontal != 0 {
		tr.X = 0
	}
	if axes&Vertical != 0 {
		tr.Y = 0
	}
	s.view.SetTranslation(tr)
}
