package theme

import (
	"context"
	"image"
	rtrace "runtime/trace"
	"time"

	"honnef.co/go/gioswipe/layout"
	"honnef.co/go/gioswipe/widget"

	"gioui.org/f32"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

const (
	// NotificationDuration is how long a notification stays fully visible.
	NotificationDuration = 2 * time.Second
	notificationFade     = 250 * time.Millisecond
)

type Window struct {
	Theme *Theme

	notification notification
	windowFrameState
}

type windowFrameState struct {
	size    image.Point
	pxPerDp float32
}

type Widget func(win *Window, gtx layout.Context) layout.Dimensions

func Dumb(win *Window, w Widget) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return w(win, gtx)
	}
}

func (win *Window) Render(ops *op.Ops, ev system.FrameEvent, w Widget) {
	defer rtrace.StartRegion(context.Background(), "theme.Window.Render").End()
	gtx := layout.NewContext(ops, ev)

	win.windowFrameState = windowFrameState{
		size:    ev.Size,
		pxPerDp: ev.Metric.PxPerDp,
	}

	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, win.Theme.Palette.Background)

	w(win, gtx)
	win.notification.Layout(win, gtx)
}

// ScreenSize returns the size of the window in dp, as of the current frame.
func (win *Window) ScreenSize() f32.Point {
	if win.pxPerDp == 0 {
		return f32.Pt(float32(win.size.X), float32(win.size.Y))
	}
	return f32.Pt(float32(win.size.X), float32(win.size.Y)).Div(win.pxPerDp)
}

// ShowNotification displays msg at the bottom of the window, replacing any notification still on display.
func (win *Window) ShowNotification(gtx layout.Context, msg string) {
	win.notification.message = msg
	win.notification.shownAt = gtx.Now
	win.notification.fade = widget.Animation[float32]{}
	op.InvalidateOp{}.Add(gtx.Ops)
}

type notification struct {
	message string
	shownAt time.Time
	fade    widget.Animation[float32]
}

func (notif *notification) Layout(win *Window, gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.notification.Layout").End()

	if notif.message == "" {
		return layout.Dimensions{}
	}

	hideAt := notif.shownAt.Add(NotificationDuration)
	opacity := float32(1)
	if !gtx.Now.Before(hideAt) {
		if notif.fade.Done() && notif.fade.StartTime.IsZero() {
			widget.StartSimpleAnimation(gtx.Now, &notif.fade, 1, 0, notificationFade, widget.EaseOut(2))
		}
		opacity = notif.fade.Value(gtx.Now)
		if notif.fade.Done() {
			notif.message = ""
			return layout.Dimensions{}
		}
		op.InvalidateOp{}.Add(gtx.Ops)
	} else {
		op.InvalidateOp{At: hideAt}.Add(gtx.Ops)
	}

	ngtx := gtx
	ngtx.Constraints.Min = image.Point{}
	ngtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(400))
	macro := op.Record(gtx.Ops)
	dims := BorderedText(win.Theme, notif.message).Layout(win, ngtx)
	call := macro.Stop()

	defer op.Offset(image.Pt(gtx.Constraints.Max.X/2-dims.Size.X/2, gtx.Constraints.Max.Y-dims.Size.Y-gtx.Dp(30))).Push(gtx.Ops).Pop()
	defer paint.PushOpacity(gtx.Ops, opacity).Pop()
	call.Add(gtx.Ops)

	return dims
}
