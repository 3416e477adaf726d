package theme

import (
	"image"
	"testing"

	"honnef.co/go/gioswipe/font"
	"honnef.co/go/gioswipe/layout"

	"gioui.org/op"
	"gioui.org/unit"
)

func TestBorderedText(t *testing.T) {
	win := &Window{Theme: NewTheme(font.Collection())}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Constraints{Max: image.Pt(400, 400)},
	}

	empty := BorderedText(win.Theme, "").Layout(win, gtx)
	dims := BorderedText(win.Theme, "Swiped left").Layout(win, gtx)
	if dims.Size.X <= empty.Size.X || dims.Size.Y <= 0 {
		t.Errorf("got size %v for text, %v for no text", dims.Size, empty.Size)
	}
}
