package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"honnef.co/go/gioswipe/font"
	"honnef.co/go/gioswipe/gesture"
	"honnef.co/go/gioswipe/layout"
	"honnef.co/go/gioswipe/theme"
	"honnef.co/go/gioswipe/widget"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/unit"
	gwidget "gioui.org/widget"
)

func main() {
	configPath := flag.String("config", "", "YAML `file` with the gesture configuration of the text view")
	flag.Parse()

	textCfg := gesture.DefaultConfig().
		WithDragHorizontal(true).
		WithExitScreenOnSwipe(true).
		WithAnimationDuration(2 * time.Second).
		WithDistanceThreshold(200).
		WithVelocityThreshold(200)
	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		textCfg = cfg
	}

	go func() {
		w := app.NewWindow(app.Title("Swipe practice"), app.Size(480, 800))
		err := run(w, textCfg)
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadConfig(path string) (gesture.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return gesture.Config{}, err
	}
	defer f.Close()
	cfg, err := gesture.LoadConfig(f)
	if err != nil {
		return gesture.Config{}, fmt.Errorf("couldn't load %s: %w", path, err)
	}
	return cfg, nil
}

// toaster turns swipes into notifications. Notifications need a frame to be shown in, so they are queued.
type toaster struct {
	subject string
	pending *[]string
}

func (t toaster) show(dir gesture.Direction) {
	*t.pending = append(*t.pending, fmt.Sprintf("Swiped %s%s", t.subject, dir))
}

func (t toaster) SwipeLeft(float32)  { t.show(gesture.Left) }
func (t toaster) SwipeRight(float32) { t.show(gesture.Right) }
func (t toaster) SwipeUp(float32)    { t.show(gesture.Up) }
func (t toaster) SwipeDown(float32)  { t.show(gesture.Down) }

type demo struct {
	text  *widget.Swipeable
	image *widget.Swipeable

	imageButton gwidget.Clickable
	reset       gwidget.Clickable

	pending []string
}

func newDemo(textCfg gesture.Config) *demo {
	d := &demo{}
	d.text = widget.NewSwipeable(textCfg, toaster{pending: &d.pending})

	imageCfg := gesture.DefaultConfig().
		WithDragHorizontal(true).
		WithDragVertical(true).
		WithExitScreenOnSwipe(true).
		WithAnimationDuration(time.Second).
		WithDragSnapBack(true).
		WithAnimated(true).
		WithDistanceThreshold(100).
		WithVelocityThreshold(100)
	d.image = widget.NewSwipeable(imageCfg, toaster{subject: "image ", pending: &d.pending})
	return d
}

func (d *demo) Layout(win *theme.Window, gtx layout.Context) layout.Dimensions {
	screen := win.ScreenSize()
	for _, ev := range d.text.Update(gtx, screen) {
		log.Printf("text swiped %s, %.0fdp", ev.Direction, ev.Distance)
	}
	for _, ev := range d.image.Update(gtx, screen) {
		log.Printf("image swiped %s, %.0fdp", ev.Direction, ev.Distance)
	}
	if d.imageButton.Clicked(gtx) {
		win.ShowNotification(gtx, "Image button clicked")
	}
	if d.reset.Clicked(gtx) {
		d.text.Reset()
		d.image.Reset()
	}
	for _, msg := range d.pending {
		win.ShowNotification(gtx, msg)
	}
	d.pending = d.pending[:0]

	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle, Spacing: layout.SpaceEvenly}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return theme.Swipeable(d.text).Layout(win, gtx, theme.BorderedText(win.Theme, "Swipe this text").Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return theme.Swipeable(d.image).Layout(win, gtx, func(win *theme.Window, gtx layout.Context) layout.Dimensions {
				return d.imageButton.Layout(gtx, theme.Dumb(win, theme.Swatch(win.Theme, "Image", unit.Dp(120)).Layout))
			})
		}),
		layout.Rigid(theme.Dumb(win, theme.Button(win.Theme, &d.reset, "Reset").Layout)),
	)
}

func run(w *app.Window, textCfg gesture.Config) error {
	win := &theme.Window{
		Theme: theme.NewTheme(font.Collection()),
	}
	d := newDemo(textCfg)

	var ops op.Ops
	for {
		e := w.NextEvent()
		switch ev := e.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			ops.Reset()
			win.Render(&ops, ev, d.Layout)
			ev.Frame(&ops)
		}
	}
}
