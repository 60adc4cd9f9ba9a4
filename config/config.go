// Package config provides configuration loading and access for the
// castle scene and its water simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Waves       WavesConfig       `yaml:"waves"`
	Disturbance DisturbanceConfig `yaml:"disturbance"`
	Camera      CameraConfig      `yaml:"camera"`
	Scene       SceneConfig       `yaml:"scene"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WavesConfig holds the water simulation parameters. DT is the fixed
// integration step in seconds, not the frame delta.
type WavesConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`   // world units along x
	Depth   float64 `yaml:"depth"`   // world units along z
	DT      float64 `yaml:"dt"`      // fixed solver step (seconds)
	Speed   float64 `yaml:"speed"`   // wave propagation constant
	Damping float64 `yaml:"damping"` // velocity decay factor
	Level   float64 `yaml:"level"`   // water plane height in the scene
}

// DisturbanceConfig holds the random ripple generator parameters.
type DisturbanceConfig struct {
	Interval     float64 `yaml:"interval"`      // seconds between drops
	MinMagnitude float64 `yaml:"min_magnitude"` // impulse range
	MaxMagnitude float64 `yaml:"max_magnitude"`
}

// CameraConfig holds the orbit camera parameters.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Yaw         float64 `yaml:"yaw"`   // radians
	Pitch       float64 `yaml:"pitch"` // radians
	FOV         float64 `yaml:"fov"`   // degrees
}

// SceneConfig holds static scene generation parameters.
type SceneConfig struct {
	TreeCount int  `yaml:"tree_count"`
	TreeSeed  int  `yaml:"tree_seed"`
	Maze      bool `yaml:"maze"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	WavesDT32   float32 // Waves.DT as float32
	WaterLevel  float32 // Waves.Level as float32
	ScreenW32   float32
	ScreenH32   float32
	DisturbRows [2]int // inclusive safe row range for random drops
	DisturbCols [2]int // inclusive safe col range for random drops
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
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

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects parameter sets the wave solver cannot be built from.
// Failing here keeps a bad config fatal at startup instead of producing a
// degenerate simulation.
func (c *Config) validate() error {
	w := c.Waves
	if w.Rows < 3 || w.Cols < 3 {
		return fmt.Errorf("config: waves grid %dx%d too small, need at least 3x3", w.Rows, w.Cols)
	}
	if w.DT <= 0 {
		return fmt.Errorf("config: waves.dt must be positive, got %g", w.DT)
	}
	if w.Speed <= 0 {
		return fmt.Errorf("config: waves.speed must be positive, got %g", w.Speed)
	}
	if w.Width <= 0 || w.Depth <= 0 {
		return fmt.Errorf("config: waves extents must be positive, got %gx%g", w.Width, w.Depth)
	}
	if w.Damping < 0 {
		return fmt.Errorf("config: waves.damping must not be negative, got %g", w.Damping)
	}
	d := c.Disturbance
	if d.Interval <= 0 {
		return fmt.Errorf("config: disturbance.interval must be positive, got %g", d.Interval)
	}
	if d.MinMagnitude > d.MaxMagnitude {
		return fmt.Errorf("config: disturbance magnitude range [%g,%g] is inverted", d.MinMagnitude, d.MaxMagnitude)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WavesDT32 = float32(c.Waves.DT)
	c.Derived.WaterLevel = float32(c.Waves.Level)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Random drops stay two cells clear of the never-updated boundary ring.
	c.Derived.DisturbRows = [2]int{2, c.Waves.Rows - 3}
	c.Derived.DisturbCols = [2]int{2, c.Waves.Cols - 3}
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
