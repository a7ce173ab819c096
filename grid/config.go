package grid

import (
	"fmt"
	"math"
)

// SpacingKind selects the rule used to place nodes along an axis.
type SpacingKind int

const (
	// Linear places nodes at equal intervals.
	Linear SpacingKind = iota
	// Exponential biases node density toward one end of the axis. K > 0
	// concentrates nodes near Min, K < 0 near Max, and K = 0 degrades
	// exactly to Linear.
	Exponential
)

// Spacing describes the node-placement rule of a single axis. K is only
// meaningful for Exponential spacing.
type Spacing struct {
	Kind SpacingKind
	K    float64
}

// LinearSpacing returns a Spacing that places nodes at equal intervals.
func LinearSpacing() Spacing { return Spacing{Linear, 0} }

// ExponentialSpacing returns a Spacing with density bias k.
func ExponentialSpacing(k float64) Spacing { return Spacing{Exponential, k} }

// AxisConfig describes a single axis of the grid. N counts interior nodes,
// i.e. nodes at which the sampling function will be evaluated. The three
// ghost nodes added at the boundaries are not included in N.
type AxisConfig struct {
	N        int
	Min, Max float64
	Spacing  Spacing
}

// Config combines the three axis configs of a full grid.
type Config struct {
	X, Y, Z AxisConfig
}

// DefaultAxisConfig returns the axis config used when nothing better is
// known: 300 nodes over [0, 15] with a strong low-end density bias.
func DefaultAxisConfig() AxisConfig {
	return AxisConfig{N: 300, Min: 0, Max: 15, Spacing: ExponentialSpacing(8)}
}

// DefaultConfig returns exponential x and y axes and a linear z axis over
// [0, pi], the layout used for polar-angle dependent fields.
func DefaultConfig() Config {
	return Config{
		X: DefaultAxisConfig(),
		Y: DefaultAxisConfig(),
		Z: AxisConfig{N: 40, Min: 0, Max: math.Pi, Spacing: LinearSpacing()},
	}
}

// ConfigError reports an invalid axis configuration. Construction that
// fails with a ConfigError allocates nothing.
type ConfigError struct {
	Axis   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("grid: axis %s: %s", e.Axis, e.Reason)
}

// CheckInit validates a single axis config. axis names the axis in error
// messages.
func (cfg *AxisConfig) CheckInit(axis string) error {
	if cfg.N < 2 {
		return &ConfigError{axis, fmt.Sprintf(
			"need at least 2 nodes, but N = %d", cfg.N,
		)}
	}
	if !(cfg.Min < cfg.Max) {
		return &ConfigError{axis, fmt.Sprintf(
			"need Min < Max, but Min = %g and Max = %g", cfg.Min, cfg.Max,
		)}
	}
	return nil
}

// CheckInit validates all three axes. It returns the first error found,
// in x, y, z order.
func (cfg *Config) CheckInit() error {
	if err := cfg.X.CheckInit("x"); err != nil {
		return err
	}
	if err := cfg.Y.CheckInit("y"); err != nil {
		return err
	}
	return cfg.Z.CheckInit("z")
}
