package widget

import (
	"context"
	"image"
	"image/color"
	rtrace "runtime/trace"

	"honnef.co/go/gioswipe/layout"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// Bordered draws a border around a widget, insetting the widget by the border's width.
type Bordered struct {
	Color color.NRGBA
	Width unit.Dp
}

func (b Bordered) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.Bordered.Layout").End()

	dims := layout.UniformInset(b.Width).Layout(gtx, w)
	sz := dims.Size
	bw := gtx.Dp(b.Width)

	// Four strips, so that translucent colors don't overlap in the corners.
	paint.FillShape(gtx.Ops, b.Color, clip.Rect{Max: image.Pt(sz.X, bw)}.Op())
	paint.FillShape(gtx.Ops, b.Color, clip.Rect{Min: image.Pt(0, sz.Y-bw), Max: sz}.Op())
	paint.FillShape(gtx.Ops, b.Color, clip.Rect{Min: image.Pt(0, bw), Max: image.Pt(bw, sz.Y-bw)}.Op())
	paint.FillShape(gtx.Ops, b.Color, clip.Rect{Min: image.Pt(sz.X-bw, bw), Max: image.Pt(sz.X, sz.Y-bw)}.Op())

	return dims
}

func ColorTextMaterial(gtx layout.Context, c color.NRGBA) op.CallOp {
	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	return m.Stop()
}

// Background fills the area of a widget before drawing it.
type Background struct {
	Color color.NRGBA
}

func (b Background) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.Background.Layout").End()

	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()

	paint.FillShape(gtx.Ops, b.Color, clip.Rect{Max: dims.Size}.Op())
	call.Add(gtx.Ops)
	return dims
}
