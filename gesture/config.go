package gesture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls how a Swipe drags its view and which motions it accepts as swipes. All distances are in the unit of
// the touch events fed to the Swipe, which is dp for events delivered through Swipe.Events.
type Config struct {
	// DragHorizontal and DragVertical make the view follow the finger along the respective axis.
	DragHorizontal bool `yaml:"drag_horizontal"`
	DragVertical   bool `yaml:"drag_vertical"`

	// DragSnapBack returns the view to its origin on release, for each axis whose total displacement is at most
	// DragSnapBackThreshold. A threshold <= 0 always snaps back.
	DragSnapBack          bool    `yaml:"drag_snap_back"`
	DragSnapBackThreshold float32 `yaml:"drag_snap_back_threshold"`

	// ExitScreenOnSwipe moves the view off screen in the direction of a recognized swipe.
	ExitScreenOnSwipe bool `yaml:"exit_screen_on_swipe"`

	// Animated uses eased transitions of length AnimationDuration instead of setting translations instantly.
	Animated          bool          `yaml:"animated"`
	AnimationDuration time.Duration `yaml:"animation_duration"`

	// DistanceThreshold and VelocityThreshold both have to be exceeded along the dominant axis for a fling to count as
	// a swipe.
	DistanceThreshold float32 `yaml:"distance_threshold"`
	VelocityThreshold float32 `yaml:"velocity_threshold"`

	// TouchSlop is the distance a pointer has to travel before its release can be a fling at all.
	TouchSlop float32 `yaml:"touch_slop"`
	// MinFlingVelocity is the release speed below which a release is not a fling.
	MinFlingVelocity float32 `yaml:"min_fling_velocity"`
}

func DefaultConfig() Config {
	return Config{
		DragSnapBackThreshold: 50,
		AnimationDuration:     500 * time.Millisecond,
		DistanceThreshold:     100,
		VelocityThreshold:     100,
		TouchSlop:             8,
		MinFlingVelocity:      50,
	}
}

func (cfg Config) WithDragHorizontal(b bool) Config {
	cfg.DragHorizontal = b
	return cfg
}

func (cfg Config) WithDragVertical(b bool) Config {
	cfg.DragVertical = b
	return cfg
}

func (cfg Config) WithDragSnapBack(b bool) Config {
	cfg.DragSnapBack = b
	return cfg
}

// WithDragSnapBackThreshold sets the snap back threshold. A positive threshold also enables snap back.
func (cfg Config) WithDragSnapBackThreshold(v float32) Config {
	cfg.DragSnapBackThreshold = v
	if v > 0 {
		cfg.DragSnapBack = true
	}
	return cfg
}

func (cfg Config) WithExitScreenOnSwipe(b bool) Config {
	cfg.ExitScreenOnSwipe = b
	return cfg
}

func (cfg Config) WithAnimated(b bool) Config {
	cfg.Animated = b
	return cfg
}

func (cfg Config) WithAnimationDuration(d time.Duration) Config {
	cfg.AnimationDuration = d
	return cfg
}

func (cfg Config) WithDistanceThreshold(v float32) Config {
	cfg.DistanceThreshold = v
	return cfg
}

func (cfg Config) WithVelocityThreshold(v float32) Config {
	cfg.VelocityThreshold = v
	return cfg
}

// LoadConfig reads a YAML document on top of DefaultConfig. Unknown keys are an error. Durations use Go's duration
// syntax, e.g. "1.5s".
func LoadConfig(r io.Reader) (Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("couldn't read config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("couldn't parse config: %w", err)
	}

	// The default threshold is positive, so only an explicitly configured threshold implies snap back.
	var explicit struct {
		Threshold *float32 `yaml:"drag_snap_back_threshold"`
	}
	if err := yaml.Unmarshal(b, &explicit); err != nil {
		return Config{}, fmt.Errorf("couldn't parse config: %w", err)
	}
	if explicit.Threshold != nil {
		cfg = cfg.WithDragSnapBackThreshold(*explicit.Threshold)
	}

	return cfg, nil
}
