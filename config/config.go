// Package config resolves runtime settings: parameter defaults, then a YAML file, then environment
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/scrollway/input"
	"github.com/lixenwraith/scrollway/overlay"
	"github.com/lixenwraith/scrollway/parameter"
	"github.com/lixenwraith/scrollway/phase"
	"github.com/lixenwraith/scrollway/progress"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "SCROLLWAY_"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Mode selects which input stream drives progress
type Mode string

const (
	ModeDesktop Mode = "desktop"
	ModeMobile  Mode = "mobile"
)

// Tuning holds the product-tuned constants of the progress axis
type Tuning struct {
	MaxProgress   float64 `yaml:"max_progress" env:"MAX_PROGRESS"`
	SmoothFactor  float64 `yaml:"smooth_factor" env:"SMOOTH_FACTOR"`
	SettleEpsilon float64 `yaml:"settle_epsilon" env:"SETTLE_EPSILON"`

	FoundationStart float64 `yaml:"foundation_start" env:"FOUNDATION_START"`
	NetworkStart    float64 `yaml:"network_start" env:"NETWORK_START"`
	EcosystemStart  float64 `yaml:"ecosystem_start" env:"ECOSYSTEM_START"`

	OverlayShow             float64 `yaml:"overlay_show" env:"OVERLAY_SHOW"`
	OverlayHide             float64 `yaml:"overlay_hide" env:"OVERLAY_HIDE"`
	OverlaySmooth           float64 `yaml:"overlay_smooth" env:"OVERLAY_SMOOTH"`
	OverlayInteractiveAbove float64 `yaml:"overlay_interactive_above" env:"OVERLAY_INTERACTIVE_ABOVE"`

	VirtualScrollLength float64 `yaml:"virtual_scroll_length" env:"VIRTUAL_SCROLL_LENGTH"`
	DragDamping         float64 `yaml:"drag_damping" env:"DRAG_DAMPING"`
	SwipeThreshold      float64 `yaml:"swipe_threshold" env:"SWIPE_THRESHOLD"`
}

// Config is the full runtime configuration
type Config struct {
	Mode          Mode          `yaml:"mode" env:"MODE"`
	Debug         bool          `yaml:"debug" env:"DEBUG"`
	Audio         bool          `yaml:"audio" env:"AUDIO"`
	FrameInterval time.Duration `yaml:"frame_interval" env:"FRAME_INTERVAL"`
	CellWidthPx   float64       `yaml:"cell_width_px" env:"CELL_WIDTH_PX"`
	CellHeightPx  float64       `yaml:"cell_height_px" env:"CELL_HEIGHT_PX"`
	WheelStepPx   float64       `yaml:"wheel_step_px" env:"WHEEL_STEP_PX"`
	ContentPath   string        `yaml:"content,omitempty" env:"CONTENT"`

	Tuning Tuning `yaml:"tuning" envPrefix:"TUNING_"`
}

// Default returns the configuration built from parameter constants
func Default() Config {
	return Config{
		Mode:          ModeDesktop,
		Audio:         true,
		FrameInterval: parameter.FrameUpdateInterval,
		CellWidthPx:   parameter.CellWidthPx,
		CellHeightPx:  parameter.CellHeightPx,
		WheelStepPx:   parameter.WheelStepPx,
		Tuning: Tuning{
			MaxProgress:             parameter.MaxProgress,
			SmoothFactor:            parameter.ProgressSmoothFactor,
			SettleEpsilon:           parameter.SettleEpsilon,
			FoundationStart:         parameter.PhaseFoundationStart,
			NetworkStart:            parameter.PhaseNetworkStart,
			EcosystemStart:          parameter.PhaseEcosystemStart,
			OverlayShow:             parameter.OverlayShowThreshold,
			OverlayHide:             parameter.OverlayHideThreshold,
			OverlaySmooth:           parameter.OverlaySmoothFactor,
			OverlayInteractiveAbove: parameter.OverlayInteractiveAbove,
			VirtualScrollLength:     parameter.VirtualScrollLength,
			DragDamping:             parameter.DragDamping,
			SwipeThreshold:          parameter.SwipeThresholdPx,
		},
	}
}

// Load resolves defaults, the optional YAML file at path, and SCROLLWAY_* environment overrides
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := Decode(bytes.NewReader(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg; unknown keys are rejected
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Encode writes cfg as YAML
func Encode(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks ranges and the ordering that keeps phases contiguous and the overlay gap open
func (c Config) Validate() error {
	switch c.Mode {
	case ModeDesktop, ModeMobile:
	default:
		return fmt.Errorf("%w: mode %q must be desktop or mobile", ErrInvalid, c.Mode)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive", ErrInvalid)
	}
	for name, v := range map[string]float64{
		"cell_width_px":  c.CellWidthPx,
		"cell_height_px": c.CellHeightPx,
		"wheel_step_px":  c.WheelStepPx,
	} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, name)
		}
	}
	return c.Tuning.Validate()
}

// Validate checks the tuning block
func (t Tuning) Validate() error {
	chain := []struct {
		name string
		v    float64
	}{
		{"0", 0},
		{"foundation_start", t.FoundationStart},
		{"network_start", t.NetworkStart},
		{"ecosystem_start", t.EcosystemStart},
		{"overlay_hide", t.OverlayHide},
		{"overlay_show", t.OverlayShow},
	}
	for i := 1; i < len(chain); i++ {
		if !(chain[i].v > chain[i-1].v) {
			return fmt.Errorf("%w: %s (%v) must be greater than %s (%v)",
				ErrInvalid, chain[i].name, chain[i].v, chain[i-1].name, chain[i-1].v)
		}
	}
	if !(t.OverlayShow <= t.MaxProgress) || !(t.MaxProgress <= 1) {
		return fmt.Errorf("%w: need overlay_show <= max_progress <= 1, got %v, %v", ErrInvalid, t.OverlayShow, t.MaxProgress)
	}

	for name, v := range map[string]float64{
		"smooth_factor":  t.SmoothFactor,
		"overlay_smooth": t.OverlaySmooth,
	} {
		if !(v > 0 && v <= 1) {
			return fmt.Errorf("%w: %s must be in (0, 1], got %v", ErrInvalid, name, v)
		}
	}
	if !(t.DragDamping > 0 && t.DragDamping < 1) {
		return fmt.Errorf("%w: drag_damping must be in (0, 1), got %v", ErrInvalid, t.DragDamping)
	}
	if !(t.OverlayInteractiveAbove >= 0 && t.OverlayInteractiveAbove < 1) {
		return fmt.Errorf("%w: overlay_interactive_above must be in [0, 1), got %v", ErrInvalid, t.OverlayInteractiveAbove)
	}
	for name, v := range map[string]float64{
		"settle_epsilon":        t.SettleEpsilon,
		"virtual_scroll_length": t.VirtualScrollLength,
		"swipe_threshold":       t.SwipeThreshold,
	} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive", ErrInvalid, name)
		}
	}
	return nil
}

// ProgressSettings returns the progress controller settings
func (t Tuning) ProgressSettings() progress.Settings {
	return progress.Settings{Max: t.MaxProgress, Smooth: t.SmoothFactor, Epsilon: t.SettleEpsilon}
}

// OverlaySettings returns the overlay controller settings
func (t Tuning) OverlaySettings() overlay.Settings {
	return overlay.Settings{
		Show:             t.OverlayShow,
		Hide:             t.OverlayHide,
		Smooth:           t.OverlaySmooth,
		Epsilon:          t.SettleEpsilon,
		InteractiveAbove: t.OverlayInteractiveAbove,
	}
}

// DragSettings returns the drag navigator settings
func (t Tuning) DragSettings() input.DragSettings {
	return input.DragSettings{Damping: t.DragDamping, SwipeThreshold: t.SwipeThreshold}
}

// Mapper builds the phase mapper from the cut points
func (t Tuning) Mapper() (phase.Mapper, error) {
	return phase.NewMapper(t.FoundationStart, t.NetworkStart, t.EcosystemStart)
}

// Snaps returns the mobile snap points: one per phase start, then the final page at max progress
func (t Tuning) Snaps() []float64 {
	return []float64{0, t.FoundationStart, t.NetworkStart, t.EcosystemStart, t.MaxProgress}
}
