// Package grid builds the rectilinear coordinate frame that a sampled
// field lives on. Each axis carries its configured interior nodes plus
// three ghost nodes, one below the domain and two above it, so that
// interpolation stencils at the domain edges never run out of neighbors.
package grid

import (
	"fmt"
)

// Grid is the full 3D coordinate frame: three strictly increasing axes
// and their slot counts (interior plus ghosts). A Grid is immutable once
// built.
type Grid struct {
	xs, ys, zs []float64
	nx, ny, nz int
	policy     BoundaryPolicy
}

// New builds a grid from cfg using the flat-extrapolation boundary
// policy. Construction is all-or-nothing: every axis is validated before
// anything is allocated.
func New(cfg *Config) (*Grid, error) {
	return NewWithPolicy(cfg, FlatBoundary{})
}

// NewWithPolicy builds a grid from cfg with an explicit boundary policy.
func NewWithPolicy(cfg *Config, policy BoundaryPolicy) (*Grid, error) {
	if err := cfg.CheckInit(); err != nil {
		return nil, err
	}

	g := &Grid{
		nx: cfg.X.N + 3, ny: cfg.Y.N + 3, nz: cfg.Z.N + 3,
		policy: policy,
	}
	g.xs = buildAxis(&cfg.X, policy)
	g.ys = buildAxis(&cfg.Y, policy)
	g.zs = buildAxis(&cfg.Z, policy)

	return g, nil
}

// FromCoords rebuilds a grid from raw axis coordinates, e.g. ones read
// back from a file. Each slice must hold at least 5 strictly increasing
// values (2 interior nodes + 3 ghosts).
func FromCoords(xs, ys, zs []float64) (*Grid, error) {
	if err := checkCoords("x", xs); err != nil {
		return nil, err
	}
	if err := checkCoords("y", ys); err != nil {
		return nil, err
	}
	if err := checkCoords("z", zs); err != nil {
		return nil, err
	}

	return &Grid{
		xs: xs, ys: ys, zs: zs,
		nx: len(xs), ny: len(ys), nz: len(zs),
		policy: FlatBoundary{},
	}, nil
}

func checkCoords(axis string, coords []float64) error {
	if len(coords) < 5 {
		return &ConfigError{axis, fmt.Sprintf(
			"need at least 5 coordinates, got %d", len(coords),
		)}
	}
	for i := 0; i < len(coords)-1; i++ {
		if coords[i] >= coords[i+1] {
			return &ConfigError{axis, fmt.Sprintf(
				"coordinates not strictly increasing at index %d", i,
			)}
		}
	}
	return nil
}

// Dims returns the total slot counts of the three axes, ghosts included.
func (g *Grid) Dims() (nx, ny, nz int) { return g.nx, g.ny, g.nz }

// Len returns the total node count nx*ny*nz.
func (g *Grid) Len() int { return g.nx * g.ny * g.nz }

// X returns the x axis coordinates. The caller must not modify them.
func (g *Grid) X() []float64 { return g.xs }

// Y returns the y axis coordinates. The caller must not modify them.
func (g *Grid) Y() []float64 { return g.ys }

// Z returns the z axis coordinates. The caller must not modify them.
func (g *Grid) Z() []float64 { return g.zs }

// Policy returns the boundary policy the grid was built with.
func (g *Grid) Policy() BoundaryPolicy { return g.policy }

// Index converts a node index triple to an offset into row-major sample
// storage.
func (g *Grid) Index(i, j, k int) int {
	return i*g.ny*g.nz + j*g.nz + k
}
