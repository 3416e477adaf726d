package gesture

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	const doc = `
drag_horizontal: true
exit_screen_on_swipe: true
animated: true
animation_duration: 2s
distance_threshold: 200
velocity_threshold: 250
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig().
		WithDragHorizontal(true).
		WithExitScreenOnSwipe(true).
		WithAnimated(true).
		WithAnimationDuration(2 * time.Second).
		WithDistanceThreshold(200).
		WithVelocityThreshold(250)
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
	if cfg.DragSnapBack {
		t.Error("default threshold enabled snap back")
	}
}

func TestLoadConfigSnapBackThreshold(t *testing.T) {
	tests := []struct {
		doc      string
		snapBack bool
		th       float32
	}{
		{"drag_snap_back_threshold: 30\n", true, 30},
		{"drag_snap_back_threshold: 0\n", false, 0},
		{"drag_snap_back: true\ndrag_snap_back_threshold: 0\n", true, 0},
		{"drag_snap_back: true\n", true, 50},
	}
	for _, tt := range tests {
		cfg, err := LoadConfig(strings.NewReader(tt.doc))
		if err != nil {
			t.Errorf("%q: %s", tt.doc, err)
			continue
		}
		if cfg.DragSnapBack != tt.snapBack || cfg.DragSnapBackThreshold != tt.th {
			t.Errorf("%q: got (%t, %g), want (%t, %g)", tt.doc, cfg.DragSnapBack, cfg.DragSnapBackThreshold, tt.snapBack, tt.th)
		}
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, doc := range []string{
		"drag_horizontl: true\n",
		"animation_duration: soon\n",
		"distance_threshold: [1, 2]\n",
	} {
		if _, err := LoadConfig(strings.NewReader(doc)); err == nil {
			t.Errorf("%q: expected error", doc)
		}
	}
}

func TestConfigWithSnapBackThreshold(t *testing.T) {
	if cfg := DefaultConfig().WithDragSnapBackThreshold(10); !cfg.DragSnapBack {
		t.Error("positive threshold didn't enable snap back")
	}
	if cfg := DefaultConfig().WithDragSnapBackThreshold(0); cfg.DragSnapBack {
		t.Error("zero threshold enabled snap back")
	}
}
