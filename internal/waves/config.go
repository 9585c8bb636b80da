package waves

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// SpringStabilityLimit bounds the product of spring tension and friction.
// Larger products make the lattice overshoot harder each frame until the
// clamp is all that holds it together.
const SpringStabilityLimit = 0.08

// Config carries every numeric tunable of the animation: lattice
// geometry, the noise layers, the pointer springs, and the energy
// response. Values are plain data so a Config can be copied, loaded
// from YAML, or swapped into a running engine wholesale.
type Config struct {
	// Lattice geometry, in logical pixels.
	SpacingX   float64 `yaml:"spacing_x"`
	SpacingY   float64 `yaml:"spacing_y"`
	GridPad    int     `yaml:"grid_pad"`
	CenterGrid bool    `yaml:"center_grid"`

	// Primary angle field. Noise picks a direction, Amplitude a reach.
	NoiseScale float64 `yaml:"noise_scale"`
	NoiseSpeed float64 `yaml:"noise_speed"`
	Amplitude  float64 `yaml:"amplitude"`

	// Vector warp: bends the coordinates fed to the primary field.
	WarpEnabled bool    `yaml:"warp_enabled"`
	WarpScale   float64 `yaml:"warp_scale"`
	WarpSpeed   float64 `yaml:"warp_speed"`
	WarpAmp     float64 `yaml:"warp_amp"`

	// Domain warp: a coarser second pass over the warped coordinates.
	DomainEnabled bool    `yaml:"domain_enabled"`
	DomainScale   float64 `yaml:"domain_scale"`
	DomainSpeed   float64 `yaml:"domain_speed"`
	DomainAmp     float64 `yaml:"domain_amp"`

	// Ridge modulation: folds the displacement into sharp crests.
	RidgeEnabled bool    `yaml:"ridge_enabled"`
	RidgeScale   float64 `yaml:"ridge_scale"`
	RidgeSpeed   float64 `yaml:"ridge_speed"`
	RidgePower   float64 `yaml:"ridge_power"`

	// Pointer springs.
	SpringTension  float64 `yaml:"spring_tension"`
	SpringFriction float64 `yaml:"spring_friction"`
	MaxOffset      float64 `yaml:"max_offset"`

	// Cursor influence.
	CursorRadius      float64 `yaml:"cursor_radius"`
	CursorStrength    float64 `yaml:"cursor_strength"`
	CursorRadiusBoost float64 `yaml:"cursor_radius_boost"`
	DirectionalBias   bool    `yaml:"directional_bias"`

	// Pointer smoothing. Smoothing values are EMA weights for the
	// newest sample.
	PointerSmoothing    float64 `yaml:"pointer_smoothing"`
	PointerVelSmoothing float64 `yaml:"pointer_vel_smoothing"`
	PointerVelMax       float64 `yaml:"pointer_vel_max"`

	// Energy response. Gains scale amplitude and clock rate at full
	// energy; the exponent shapes how quickly quiet levels matter.
	EnergyAmpGain   float64 `yaml:"energy_amp_gain"`
	EnergySpeedGain float64 `yaml:"energy_speed_gain"`
	EnergyExponent  float64 `yaml:"energy_exponent"`

	// Base clock rate, in field-time units per wall second.
	TimeScale float64 `yaml:"time_scale"`

	// Noise seed. Equal seeds reproduce the exact same field.
	Seed int64 `yaml:"seed"`

	// Curved connects row points with quadratic midpoint curves
	// instead of straight segments.
	Curved bool `yaml:"curved"`
}

// DefaultConfig returns the tuning used by the player background: a
// calm drifting field sized for a 1280x720 window.
func DefaultConfig() Config {
	return Config{
		SpacingX:   26,
		SpacingY:   26,
		GridPad:    2,
		CenterGrid: true,

		NoiseScale: 0.0042,
		NoiseSpeed: 0.32,
		Amplitude:  42,

		WarpEnabled: true,
		WarpScale:   0.0016,
		WarpSpeed:   0.12,
		WarpAmp:     110,

		DomainEnabled: true,
		DomainScale:   0.0009,
		DomainSpeed:   0.05,
		DomainAmp:     90,

		RidgeEnabled: true,
		RidgeScale:   0.0031,
		RidgeSpeed:   0.21,
		RidgePower:   1.6,

		SpringTension:  0.06,
		SpringFriction: 0.9,
		MaxOffset:      96,

		CursorRadius:      140,
		CursorStrength:    0.42,
		CursorRadiusBoost: 4,
		DirectionalBias:   false,

		PointerSmoothing:    0.55,
		PointerVelSmoothing: 0.65,
		PointerVelMax:       60,

		EnergyAmpGain:   1.6,
		EnergySpeedGain: 0.8,
		EnergyExponent:  2,

		TimeScale: 1,
		Seed:      88,
		Curved:    true,
	}
}

// presets are named departures from the default tuning. Each entry is
// rebuilt from DefaultConfig so presets stay valid when defaults move.
func presets() map[string]Config {
	drift := DefaultConfig()

	swell := DefaultConfig()
	swell.Amplitude = 54
	swell.NoiseSpeed = 0.18
	swell.DomainAmp = 160
	swell.RidgeEnabled = false

	tempest := DefaultConfig()
	tempest.Amplitude = 72
	tempest.NoiseSpeed = 0.55
	tempest.WarpAmp = 150
	tempest.RidgePower = 2.4
	tempest.CursorStrength = 0.6
	tempest.SpringTension = 0.07
	tempest.SpringFriction = 0.88

	wire := DefaultConfig()
	wire.Curved = false
	wire.Amplitude = 30
	wire.SpacingY = 18
	wire.WarpEnabled = false
	wire.RidgeEnabled = false

	return map[string]Config{
		"drift":   drift,
		"swell":   swell,
		"tempest": tempest,
		"wire":    wire,
	}
}

// Preset returns the named preset config and whether it exists.
func Preset(name string) (Config, bool) {
	c, ok := presets()[name]
	return c, ok
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	m := presets()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadConfig reads a YAML config from path. Fields absent from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as YAML.
func SaveConfig(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects configs the engine cannot run safely. Checks are
// written in assert-positive form so NaN fields fail them.
func (c *Config) Validate() error {
	if !(c.SpacingX > 0) || !(c.SpacingY > 0) {
		return fmt.Errorf("grid spacing must be positive, got %vx%v", c.SpacingX, c.SpacingY)
	}
	if c.GridPad < 0 {
		return fmt.Errorf("grid_pad must be >= 0, got %d", c.GridPad)
	}
	if !(c.NoiseScale > 0) || !(c.NoiseSpeed >= 0) || !(c.Amplitude >= 0) {
		return fmt.Errorf("primary noise layer out of range: scale %v speed %v amplitude %v", c.NoiseScale, c.NoiseSpeed, c.Amplitude)
	}
	if c.WarpEnabled && (!(c.WarpScale > 0) || !(c.WarpSpeed >= 0) || !(c.WarpAmp >= 0)) {
		return fmt.Errorf("warp layer out of range: scale %v speed %v amp %v", c.WarpScale, c.WarpSpeed, c.WarpAmp)
	}
	if c.DomainEnabled && (!(c.DomainScale > 0) || !(c.DomainSpeed >= 0) || !(c.DomainAmp >= 0)) {
		return fmt.Errorf("domain layer out of range: scale %v speed %v amp %v", c.DomainScale, c.DomainSpeed, c.DomainAmp)
	}
	if c.RidgeEnabled && (!(c.RidgeScale > 0) || !(c.RidgeSpeed >= 0) || !(c.RidgePower > 0)) {
		return fmt.Errorf("ridge layer out of range: scale %v speed %v power %v", c.RidgeScale, c.RidgeSpeed, c.RidgePower)
	}
	if !(c.SpringTension > 0) {
		return fmt.Errorf("spring_tension must be positive, got %v", c.SpringTension)
	}
	if !(c.SpringFriction > 0 && c.SpringFriction < 1) {
		return fmt.Errorf("spring_friction must be in (0, 1), got %v", c.SpringFriction)
	}
	if p := c.SpringTension * c.SpringFriction; !(p <= SpringStabilityLimit) {
		return fmt.Errorf("spring_tension*spring_friction = %v exceeds stability limit %v", p, SpringStabilityLimit)
	}
	if !(c.MaxOffset > 0) {
		return fmt.Errorf("max_offset must be positive, got %v", c.MaxOffset)
	}
	if !(c.CursorRadius >= 0) || !(c.CursorStrength >= 0) || !(c.CursorRadiusBoost >= 0) {
		return fmt.Errorf("cursor influence out of range: radius %v strength %v boost %v", c.CursorRadius, c.CursorStrength, c.CursorRadiusBoost)
	}
	if !(c.PointerSmoothing > 0 && c.PointerSmoothing <= 1) || !(c.PointerVelSmoothing > 0 && c.PointerVelSmoothing <= 1) {
		return fmt.Errorf("pointer smoothing weights must be in (0, 1], got %v and %v", c.PointerSmoothing, c.PointerVelSmoothing)
	}
	if !(c.PointerVelMax > 0) {
		return fmt.Errorf("pointer_vel_max must be positive, got %v", c.PointerVelMax)
	}
	if !(c.EnergyAmpGain >= 0) || !(c.EnergySpeedGain >= 0) {
		return fmt.Errorf("energy gains must be >= 0, got %v and %v", c.EnergyAmpGain, c.EnergySpeedGain)
	}
	if !(c.EnergyExponent >= 1) {
		return fmt.Errorf("energy_exponent must be >= 1, got %v", c.EnergyExponent)
	}
	if !(c.TimeScale > 0) {
		return fmt.Errorf("time_scale must be positive, got %v", c.TimeScale)
	}
	return nil
}

// energyCurve maps an energy level to a response factor in [0, 1]. The
// exponent keeps quiet levels subtle while peaks push hard.
func (c *Config) energyCurve(e float64) float64 {
	if math.IsNaN(e) || e < 0 {
		e = 0
	} else if e > 1 {
		e = 1
	}
	return math.Pow(e, c.EnergyExponent)
}

// AmplitudeAt returns the displacement amplitude at the given energy
// level. It grows monotonically from Amplitude at silence.
func (c *Config) AmplitudeAt(energy float64) float64 {
	return c.Amplitude * (1 + c.energyCurve(energy)*c.EnergyAmpGain)
}

// RateAt returns the clock rate at the given energy level, in
// field-time units per wall second.
func (c *Config) RateAt(energy float64) float64 {
	return c.TimeScale * (1 + c.energyCurve(energy)*c.EnergySpeedGain)
}
