package theme

import (
	"honnef.co/go/gioswipe/layout"
	"honnef.co/go/gioswipe/widget"
)

type SwipeableStyle struct {
	State *widget.Swipeable
}

func Swipeable(state *widget.Swipeable) SwipeableStyle {
	return SwipeableStyle{State: state}
}

// Layout lays out w so that it can be dragged and swiped across the window.
func (ss SwipeableStyle) Layout(win *Window, gtx layout.Context, w Widget) layout.Dimensions {
	return ss.State.Layout(gtx, win.ScreenSize(), Dumb(win, w))
}
