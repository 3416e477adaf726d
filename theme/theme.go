package theme

import (
	"context"
	"image"
	"image/color"
	rtrace "runtime/trace"

	"honnef.co/go/gioswipe/layout"
	"honnef.co/go/gioswipe/widget"

	"gioui.org/font"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	gwidget "gioui.org/widget"
)

type Theme struct {
	Shaper        *text.Shaper
	Palette       Palette
	TextSize      unit.Sp
	TextSizeLarge unit.Sp

	WindowPadding unit.Dp
	WindowBorder  unit.Dp
}

type Palette struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Border     color.NRGBA
	Accent     color.NRGBA

	Popup struct {
		Background color.NRGBA
	}
}

var DefaultPalette = Palette{
	Background: rgba(0xFFFFEAFF),
	Foreground: rgba(0x000000FF),
	Border:     rgba(0x000000FF),
	Accent:     rgba(0x9CEFEFFF),

	Popup: struct {
		Background color.NRGBA
	}{
		Background: rgba(0xEEFFEEFF),
	},
}

func NewTheme(fontCollection []font.FontFace) *Theme {
	return &Theme{
		Palette:       DefaultPalette,
		Shaper:        text.NewShaper(text.WithCollection(fontCollection)),
		TextSize:      12,
		TextSizeLarge: 14,

		WindowPadding: 2,
		WindowBorder:  1,
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(c & 0xFF),
		B: uint8(c >> 8 & 0xFF),
		G: uint8(c >> 16 & 0xFF),
		R: uint8(c >> 24 & 0xFF),
	}
}

type BorderedTextStyle struct {
	Text string

	Padding         unit.Dp
	BorderSize      unit.Dp
	BorderColor     color.NRGBA
	TextSize        unit.Sp
	TextColor       color.NRGBA
	BackgroundColor color.NRGBA
}

func BorderedText(th *Theme, s string) BorderedTextStyle {
	return BorderedTextStyle{
		Text:            s,
		BorderSize:      th.WindowBorder,
		BorderColor:     th.Palette.Border,
		Padding:         th.WindowPadding,
		TextSize:        th.TextSize,
		TextColor:       th.Palette.Foreground,
		BackgroundColor: th.Palette.Popup.Background,
	}
}

func (bt BorderedTextStyle) Layout(win *Window, gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.BorderedTextStyle.Layout").End()

	return widget.Bordered{Color: bt.BorderColor, Width: bt.BorderSize}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = image.Pt(0, 0)
		padding := gtx.Dp(bt.Padding)

		macro := op.Record(gtx.Ops)
		dims := gwidget.Label{}.Layout(gtx, win.Theme.Shaper, font.Font{}, bt.TextSize, bt.Text, widget.ColorTextMaterial(gtx, bt.TextColor))
		call := macro.Stop()

		total := clip.Rect{Max: image.Pt(dims.Size.X+2*padding, dims.Size.Y+2*padding)}
		paint.FillShape(gtx.Ops, bt.BackgroundColor, total.Op())

		stack := op.Offset(image.Pt(padding, padding)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()

		return layout.Dimensions{
			Baseline: dims.Baseline,
			Size:     total.Max,
		}
	})
}

type ButtonStyle struct {
	Text   string
	Button *gwidget.Clickable

	ActiveBackgroundColor color.NRGBA
	BackgroundColor       color.NRGBA
	BorderColor           color.NRGBA
	TextColor             color.NRGBA
}

func Button(th *Theme, button *gwidget.Clickable, txt string) ButtonStyle {
	return ButtonStyle{
		Text:                  txt,
		Button:                button,
		ActiveBackgroundColor: th.Palette.Accent,
		BackgroundColor:       rgba(0xFFFFFFFF),
		BorderColor:           th.Palette.Border,
		TextColor:             th.Palette.Foreground,
	}
}

func (b ButtonStyle) Layout(win *Window, gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.ButtonStyle.Layout").End()

	bg := b.BackgroundColor
	if b.Button.Pressed() {
		bg = b.ActiveBackgroundColor
	}

	return widget.Background{Color: bg}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return b.Button.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return widget.Bordered{Color: b.BorderColor, Width: 1}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(4).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return gwidget.Label{Alignment: text.Middle}.Layout(gtx, win.Theme.Shaper, font.Font{}, win.Theme.TextSizeLarge, b.Text, widget.ColorTextMaterial(gtx, b.TextColor))
				})
			})
		})
	})
}

// SwatchStyle is a filled, bordered rectangle with a centered caption.
type SwatchStyle struct {
	Caption string
	Size    unit.Dp
	Color   color.NRGBA
}

func Swatch(th *Theme, caption string, size unit.Dp) SwatchStyle {
	return SwatchStyle{Caption: caption, Size: size, Color: th.Palette.Accent}
}

func (sw SwatchStyle) Layout(win *Window, gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.SwatchStyle.Layout").End()

	sz := gtx.Dp(sw.Size)
	gtx.Constraints = layout.Constraints{Min: image.Pt(sz, sz), Max: image.Pt(sz, sz)}
	return widget.Bordered{Color: win.Theme.Palette.Border, Width: win.Theme.WindowBorder}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		paint.FillShape(gtx.Ops, sw.Color, clip.Rect{Max: gtx.Constraints.Max}.Op())
		layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = image.Point{}
			return gwidget.Label{}.Layout(gtx, win.Theme.Shaper, font.Font{}, win.Theme.TextSizeLarge, sw.Caption, widget.ColorTextMaterial(gtx, win.Theme.Palette.Foreground))
		})
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
}
