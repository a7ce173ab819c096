// Package interpolate answers point queries against a sampled field by
// tensor-product polynomial interpolation. One evaluator owns the field
// it reads; evaluation is pure and deterministic.
package interpolate

import (
	"fmt"

	"github.com/nbrandt/interp3d/field"
	"github.com/nbrandt/interp3d/grid"
)

// Mode selects the interpolation scheme of a single query.
type Mode int

const (
	// Tricubic uses a 4-node cubic stencil along all three axes,
	// reading a 4x4x4 sample neighborhood.
	Tricubic Mode = iota
	// BicubicUnilinear uses cubic stencils along x and y but plain
	// linear interpolation between the two bracketing z layers. Cheaper
	// than Tricubic when the field varies slowly in z.
	BicubicUnilinear
)

// DomainError reports a query coordinate outside the interior-covered
// span of an axis. Queries beyond the domain are rejected, never
// extrapolated.
type DomainError struct {
	Axis     string
	Value    float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf(
		"interpolate: %s = %g outside domain [%g, %g]",
		e.Axis, e.Value, e.Min, e.Max,
	)
}

// Evaluator interpolates values of a sampled field at arbitrary points
// inside its domain. The field must not be modified for the lifetime of
// the evaluator.
type Evaluator struct {
	g          *grid.Grid
	f          *field.Field
	sx, sy, sz searcher
}

// New creates an evaluator over f.
func New(f *field.Field) *Evaluator {
	g := f.Grid()
	ev := &Evaluator{g: g, f: f}
	ev.sx.init(g.X())
	ev.sy.init(g.Y())
	ev.sz.init(g.Z())
	return ev
}

// Eval interpolates the field at (x, y, z). It returns a DomainError if
// any coordinate falls outside the span covered by interior nodes.
func (ev *Evaluator) Eval(x, y, z float64, mode Mode) (float64, error) {
	mx, err := locate("x", ev.g.X(), &ev.sx, x)
	if err != nil {
		return 0, err
	}
	my, err := locate("y", ev.g.Y(), &ev.sy, y)
	if err != nil {
		return 0, err
	}
	mz, err := locate("z", ev.g.Z(), &ev.sz, z)
	if err != nil {
		return 0, err
	}

	switch mode {
	case Tricubic:
		return ev.tricubic(mx, my, mz, x, y, z), nil
	case BicubicUnilinear:
		return ev.bicubicUnilinear(mx, my, mz, x, y, z), nil
	}
	panic(fmt.Sprintf("Unknown interpolation mode %d.", mode))
}

// EvalAll evaluates the field at all the given points. If an output
// array is given, the output is written to that array (the array is
// still returned as a convenience). Evaluation stops at the first
// out-of-domain point.
func (ev *Evaluator) EvalAll(
	xs, ys, zs []float64, mode Mode, out ...[]float64,
) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i := range xs {
		v, err := ev.Eval(xs[i], ys[i], zs[i], mode)
		if err != nil {
			return nil, err
		}
		out[0][i] = v
	}
	return out[0], nil
}

// locate bounds-checks v against the interior-covered span of an axis
// and returns the index of the cell containing it. The returned index m
// always leaves room for the full 4-node stencil m-1 .. m+2.
func locate(
	axis string, coords []float64, s *searcher, v float64,
) (int, error) {
	n := len(coords)
	if v < coords[1] || v > coords[n-2] {
		return 0, &DomainError{axis, v, coords[1], coords[n-2]}
	}

	m := s.search(v)
	if m < 1 {
		m = 1
	} else if m > n-3 {
		m = n - 3
	}
	return m, nil
}

// tricubic combines the 4x4x4 stencil around cell (mx, my, mz) axis by
// axis, innermost (z) first. The tensor-product combination is separable
// and needs no cross terms.
func (ev *Evaluator) tricubic(mx, my, mz int, x, y, z float64) float64 {
	xs, ys, zs := ev.g.X(), ev.g.Y(), ev.g.Z()
	var vz, vy, vx [4]float64

	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			for c := 0; c < 4; c++ {
				vz[c] = ev.f.At(mx-1+a, my-1+b, mz-1+c)
			}
			vy[b] = cubic(zs[mz-1:mz+3], vz[:], z)
		}
		vx[a] = cubic(ys[my-1:my+3], vy[:], y)
	}
	return cubic(xs[mx-1:mx+3], vx[:], x)
}

// bicubicUnilinear is tricubic with the z axis collapsed to linear
// interpolation between the two bracketing layers.
func (ev *Evaluator) bicubicUnilinear(
	mx, my, mz int, x, y, z float64,
) float64 {
	xs, ys, zs := ev.g.X(), ev.g.Y(), ev.g.Z()
	var vz [2]float64
	var vy, vx [4]float64

	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			vz[0] = ev.f.At(mx-1+a, my-1+b, mz)
			vz[1] = ev.f.At(mx-1+a, my-1+b, mz+1)
			vy[b] = linear(zs[mz:mz+2], vz[:], z)
		}
		vx[a] = cubic(ys[my-1:my+3], vy[:], y)
	}
	return cubic(xs[mx-1:mx+3], vx[:], x)
}
