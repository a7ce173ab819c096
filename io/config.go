package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/nbrandt/interp3d/grid"
)

const ExampleAxesFile = `[Axis "x"]

# Number of interior nodes along this axis. The three boundary ghost
# nodes are added automatically and should not be counted here.
Nodes = 300

# Range covered by the interior nodes.
Min = 0
Max = 15

# Spacing must be one of [ Linear | Exponential ]. Exponential spacing
# takes a bias K: K > 0 concentrates nodes near Min, K < 0 near Max, and
# larger |K| means a stronger bias. K = 0 behaves exactly like Linear.
Spacing = Exponential
K = 8

[Axis "y"]
Nodes = 300
Min = 0
Max = 15
Spacing = Exponential
K = 8

[Axis "z"]
Nodes = 40
Min = 0
Max = 3.14159265358979
Spacing = Linear`

// AxisConfig is the config-file representation of one grid axis.
type AxisConfig struct {
	// Required
	Nodes    int
	Min, Max float64

	// Optional
	Spacing string
	K       float64
}

func (ax *AxisConfig) CheckInit(name string) error {
	if ax.Nodes < 2 {
		return fmt.Errorf(
			"Need at least 2 Nodes for Axis '%s', but got %d.",
			name, ax.Nodes,
		)
	}
	if ax.Min >= ax.Max {
		return fmt.Errorf(
			"Min of Axis '%s' must be below Max, but Min = %g and Max = %g.",
			name, ax.Min, ax.Max,
		)
	}

	tmp := ax.Spacing
	ax.Spacing = strings.Title(strings.ToLower(strings.Trim(ax.Spacing, " ")))
	if ax.Spacing != "" &&
		ax.Spacing != "Linear" &&
		ax.Spacing != "Exponential" {

		return fmt.Errorf(
			"Spacing of Axis '%s' must be one of [ Linear | Exponential ]. "+
				"'%s' is not recognized.", name, tmp,
		)
	}
	if ax.Spacing != "Exponential" && ax.K != 0 {
		return fmt.Errorf(
			"Axis '%s' sets K = %g, but K only applies to "+
				"Exponential spacing.", name, ax.K,
		)
	}

	return nil
}

func (ax *AxisConfig) convert() grid.AxisConfig {
	spacing := grid.LinearSpacing()
	if ax.Spacing == "Exponential" {
		spacing = grid.ExponentialSpacing(ax.K)
	}
	return grid.AxisConfig{
		N: ax.Nodes, Min: ax.Min, Max: ax.Max, Spacing: spacing,
	}
}

// AxesConfig maps the [Axis "x"], [Axis "y"], and [Axis "z"] sections of
// a config file. All three sections are required.
type AxesConfig struct {
	Axis map[string]*AxisConfig
}

// ReadConfig parses a grid config file.
func ReadConfig(fname string) (*grid.Config, error) {
	ac := AxesConfig{}
	if err := gcfg.ReadFileInto(&ac, fname); err != nil {
		return nil, err
	}
	return ac.convert()
}

// ReadConfigString parses a grid config from an in-memory string.
func ReadConfigString(config string) (*grid.Config, error) {
	ac := AxesConfig{}
	if err := gcfg.ReadStringInto(&ac, config); err != nil {
		return nil, err
	}
	return ac.convert()
}

func (ac *AxesConfig) convert() (*grid.Config, error) {
	cfg := &grid.Config{}
	for _, name := range []string{"x", "y", "z"} {
		ax, ok := ac.Axis[name]
		if !ok {
			return nil, fmt.Errorf(
				"Config file does not contain an [Axis \"%s\"] section.",
				name,
			)
		}
		if err := ax.CheckInit(name); err != nil {
			return nil, err
		}

		switch name {
		case "x":
			cfg.X = ax.convert()
		case "y":
			cfg.Y = ax.convert()
		case "z":
			cfg.Z = ax.convert()
		}
	}
	for name := range ac.Axis {
		if name != "x" && name != "y" && name != "z" {
			return nil, fmt.Errorf(
				"Config file contains unrecognized Axis '%s'.", name,
			)
		}
	}

	return cfg, nil
}
