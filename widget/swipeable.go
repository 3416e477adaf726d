package widget

import (
	"context"
	"image"
	rtrace "runtime/trace"
	"time"

	"honnef.co/go/gioswipe/gesture"
	"honnef.co/go/gioswipe/layout"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Swipeable hosts a widget that can be dragged and swiped. It implements gesture.View and gesture.Screen for its
// Swipe. Translations are in dp.
type Swipeable struct {
	Swipe *gesture.Swipe

	translation f32.Point
	hidden      bool
	anim        Animation[f32.Point]

	now    time.Time
	screen f32.Point
	// The offset, in pixels, the input handler was added with during the last frame.
	handlerOffset f32.Point
}

func NewSwipeable(cfg gesture.Config, sink gesture.Swiper) *Swipeable {
	s := &Swipeable{}
	s.Swipe = gesture.NewSwipe(s, sink, cfg)
	s.Swipe.SetScreen(s)
	return s
}

// Translation returns the current translation, following any running transition.
func (s *Swipeable) Translation() f32.Point {
	if s.anim.Done() {
		return s.translation
	}
	return s.anim.Value(s.now)
}

func (s *Swipeable) SetTranslation(p f32.Point) {
	s.anim.Cancel()
	s.translation = p
}

func (s *Swipeable) Visible() bool     { return !s.hidden }
func (s *Swipeable) SetVisible(b bool) { s.hidden = !b }

func (s *Swipeable) Animate(tr gesture.Transition) {
	cur := s.Translation()
	target := cur
	if tr.Axes&gesture.Horizontal != 0 {
		target.X = tr.Target.X
	}
	if tr.Axes&gesture.Vertical != 0 {
		target.Y = tr.Target.Y
	}
	s.translation = target

	if tr.Duration <= 0 {
		s.anim.Cancel()
		return
	}
	s.anim.Start(s.now, cur, target, tr.Duration, EaseInOut)
	s.anim.Lerp = LerpPoint
}

// Animating reports whether a transition is in progress.
func (s *Swipeable) Animating() bool {
	if s.anim.Done() {
		return false
	}
	// Value deactivates finished animations.
	s.anim.Value(s.now)
	return !s.anim.Done()
}

func (s *Swipeable) ScreenSize() f32.Point { return s.screen }

// Reset moves the view back to its origin, shows it and abandons the current touch sequence.
func (s *Swipeable) Reset() {
	s.anim.Cancel()
	s.translation = f32.Point{}
	s.hidden = false
	s.Swipe.Reset()
}

// Update processes pending pointer events and returns the swipes they completed. screen is the size of the screen in
// dp, used for moving the widget off screen.
func (s *Swipeable) Update(gtx layout.Context, screen f32.Point) []gesture.SwipeEvent {
	s.now = gtx.Now
	s.screen = screen
	if gtx.Queue == nil {
		return nil
	}
	return s.Swipe.Events(gtx.Queue, gtx.Metric, s.handlerOffset)
}

func (s *Swipeable) Layout(gtx layout.Context, screen f32.Point, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.Swipeable.Layout").End()

	s.Update(gtx, screen)

	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()

	if s.Animating() {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	if s.hidden {
		return dims
	}

	off := s.Translation().Mul(gtx.Metric.PxPerDp)
	s.handlerOffset = off
	defer op.Affine(f32.Affine2D{}.Offset(off)).Push(gtx.Ops).Pop()
	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	s.Swipe.Add(gtx.Ops)
	call.Add(gtx.Ops)

	return dims
}
