// Package config provides configuration loading and access for the galaxy field.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Gesture   GestureConfig   `yaml:"gesture"`
	Camera    CameraConfig    `yaml:"camera"`
	Detector  DetectorConfig  `yaml:"detector"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Groups    []GroupConfig   `yaml:"groups"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds particle field parameters.
type FieldConfig struct {
	Count         int     `yaml:"count"`           // Total particle count across all groups
	MaxRadius     float64 `yaml:"max_radius"`      // Birth-death cycle length in world units
	TravelRate    float64 `yaml:"travel_rate"`     // Global multiplier applied to t*speed
	SpeedMin      float64 `yaml:"speed_min"`       // Per-particle speed band lower bound
	SpeedMax      float64 `yaml:"speed_max"`       // Per-particle speed band upper bound
	TwistStrength float64 `yaml:"twist_strength"`  // Spiral arm curvature per unit radius
	BobAmplitude  float64 `yaml:"bob_amplitude"`   // Vertical float displacement
	BobRate       float64 `yaml:"bob_rate"`        // Vertical float frequency (t multiplier)
	FadeInFrac    float64 `yaml:"fade_in_frac"`    // Fraction of cycle spent fading in
	FadeOutFrac   float64 `yaml:"fade_out_frac"`   // Fraction of cycle spent fading out
	BasePointSize float64 `yaml:"base_point_size"` // Sprite size before attenuation
}

// GroupConfig defines a named visual style applied to a batch of particles.
// Either Glyph (a rendered text character) or Shape ("disc", "spark")
// selects the sprite; the first non-empty wins.
type GroupConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Shape string `yaml:"shape"`
	Color RGB    `yaml:"color"`
}

// RGB is a color triple for YAML configs.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// GestureConfig holds the pinch/tilt mapping parameters.
type GestureConfig struct {
	PinchMin   float64 `yaml:"pinch_min"`   // Pinch distance clamp lower bound
	PinchMax   float64 `yaml:"pinch_max"`   // Pinch distance clamp upper bound
	ScaleMin   float64 `yaml:"scale_min"`   // Field scale at minimum pinch
	ScaleMax   float64 `yaml:"scale_max"`   // Field scale at maximum pinch
	TiltGain   float64 `yaml:"tilt_gain"`   // Radians of tilt per unit palm offset
	LerpFactor float64 `yaml:"lerp_factor"` // Per-frame smoothing coefficient
}

// CameraConfig holds the orbit camera parameters.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Yaw         float64 `yaml:"yaw"`
	Pitch       float64 `yaml:"pitch"`
	FOV         float64 `yaml:"fov"`
}

// DetectorConfig holds landmark detection parameters.
type DetectorConfig struct {
	ReplayFPS float64 `yaml:"replay_fps"` // Frame rate for replayed landmark sessions
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MaxRadius32   float32 // Field.MaxRadius as float32
	GroupCount    int     // len(Groups)
	PerGroupCount int     // Field.Count divided evenly across groups
	PinchSpan     float64 // Gesture.PinchMax - Gesture.PinchMin
	ScaleSpan     float64 // Gesture.ScaleMax - Gesture.ScaleMin
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Synthesize default groups if none specified
	if len(c.Groups) == 0 {
		c.Groups = []GroupConfig{
			{Name: "embers", Glyph: "*", Color: RGB{R: 255, G: 190, B: 120}},
			{Name: "dust", Shape: "disc", Color: RGB{R: 150, G: 180, B: 255}},
			{Name: "sparks", Shape: "spark", Color: RGB{R: 255, G: 240, B: 200}},
		}
	}

	c.Derived.MaxRadius32 = float32(c.Field.MaxRadius)
	c.Derived.GroupCount = len(c.Groups)
	c.Derived.PerGroupCount = c.Field.Count / len(c.Groups)
	c.Derived.PinchSpan = c.Gesture.PinchMax - c.Gesture.PinchMin
	c.Derived.ScaleSpan = c.Gesture.ScaleMax - c.Gesture.ScaleMin
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
