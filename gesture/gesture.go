package gesture

import (
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/unit"
)

// SwipeEvent reports a recognized swipe.
type SwipeEvent struct {
	Direction Direction
	Distance  float32
}

// Add the handler to the operation list to receive pointer events for the swipe.
func (s *Swipe) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   s,
		Grab:  len(s.pressed) > 0,
		Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Events processes the queued pointer events and returns the swipes they completed. offset is the translation, in
// pixels, that the handler was added with in the previous frame; it turns view relative positions back into screen
// relative ones.
func (s *Swipe) Events(q event.Queue, metric unit.Metric, offset f32.Point) []SwipeEvent {
	var events []SwipeEvent
	for _, evt := range q.Events(s) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		ev, ok := s.touchEvent(e, metric, offset)
		if !ok {
			continue
		}
		if s.Touch(nil, ev) {
			events = append(events, s.last)
		}
	}
	return events
}

// touchEvent converts a pointer event and updates the set of pressed pointers. It returns false for events that don't
// belong to a touch sequence, such as a release of a pointer that was never pressed.
func (s *Swipe) touchEvent(e pointer.Event, metric unit.Metric, offset f32.Point) (TouchEvent, bool) {
	var phase Phase
	switch e.Kind {
	case pointer.Press:
		if !primaryButton(e) || s.isPressed(e.PointerID) {
			return TouchEvent{}, false
		}
		if len(s.pressed) == 0 {
			phase = PhaseDown
		} else {
			phase = PhasePointerDown
		}
		s.pressed = append(s.pressed, e.PointerID)
	case pointer.Drag:
		if !s.isPressed(e.PointerID) {
			return TouchEvent{}, false
		}
		phase = PhaseMove
	case pointer.Release:
		if primaryButton(e) && e.Source == pointer.Mouse {
			// Another button was released while the primary one is still held.
			return TouchEvent{}, false
		}
		if !s.release(e.PointerID) {
			return TouchEvent{}, false
		}
		if len(s.pressed) == 0 {
			phase = PhaseUp
		} else {
			phase = PhasePointerUp
		}
	case pointer.Cancel:
		// Cancel affects all pointers
		s.pressed = s.pressed[:0]
		phase = PhaseCancel
	default:
		return TouchEvent{}, false
	}

	return TouchEvent{
		Phase:     phase,
		PointerID: e.PointerID,
		Position:  toDp(metric, e.Position),
		Raw:       toDp(metric, e.Position.Add(offset)),
		Time:      e.Time,
	}, true
}

// Dragging reports whether a pointer is pressed on the swipe.
func (s *Swipe) Dragging() bool {
	return len(s.pressed) > 0
}

func (s *Swipe) isPressed(id pointer.ID) bool {
	for _, p := range s.pressed {
		if p == id {
			return true
		}
	}
	return false
}

func (s *Swipe) release(id pointer.ID) bool {
	for i, p := range s.pressed {
		if p == id {
			s.pressed = append(s.pressed[:i], s.pressed[i+1:]...)
			return true
		}
	}
	return false
}

// primaryButton reports whether e involves touch or the primary mouse button. For a release, e.Buttons holds the
// buttons that are still pressed.
func primaryButton(e pointer.Event) bool {
	return e.Source == pointer.Touch || e.Buttons&pointer.ButtonPrimary != 0
}

func toDp(metric unit.Metric, p f32.Point) f32.Point {
	if metric.PxPerDp == 0 {
		return p
	}
	return p.Div(metric.PxPerDp)
}
