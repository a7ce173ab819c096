package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"github.com/nbrandt/interp3d/field"
	"github.com/nbrandt/interp3d/grid"
)

func generate(t *testing.T, cfg *grid.Config, s field.Sampler) *Evaluator {
	g, err := grid.New(cfg)
	assert.NoError(t, err)
	f := field.New(g)
	f.Generate(s)
	return New(f)
}

func gaussian(x, y, z float64) float64 {
	return math.Exp((-x*x-y*y-z*z)/5) + 1
}

func gaussianConfig() *grid.Config {
	return &grid.Config{
		X: grid.AxisConfig{N: 24, Min: 0, Max: 4, Spacing: grid.ExponentialSpacing(2)},
		Y: grid.AxisConfig{N: 20, Min: 0, Max: 4},
		Z: grid.AxisConfig{N: 16, Min: 0, Max: 3},
	}
}

func TestKnotReproduction(t *testing.T) {
	ev := generate(t, gaussianConfig(), field.SamplerFunc(gaussian))
	g := ev.g

	nx, ny, nz := g.Dims()
	xs, ys, zs := g.X(), g.Y(), g.Z()
	for _, mode := range []Mode{Tricubic, BicubicUnilinear} {
		for i := 1; i <= nx-3; i++ {
			for j := 1; j <= ny-3; j++ {
				for k := 1; k <= nz-3; k++ {
					v, err := ev.Eval(xs[i], ys[j], zs[k], mode)
					if !assert.NoError(t, err) {
						return
					}
					assert.InDelta(t, ev.f.At(i, j, k), v, 1e-12,
						"mode %d at node (%d, %d, %d)", mode, i, j, k)
				}
			}
		}
	}
}

func TestConstantField(t *testing.T) {
	ev := generate(t, gaussianConfig(),
		field.SamplerFunc(func(x, y, z float64) float64 { return 1 }))
	g := ev.g

	xs := floats.Span(make([]float64, 15), g.X()[1], g.X()[len(g.X())-2])
	ys := floats.Span(make([]float64, 15), g.Y()[1], g.Y()[len(g.Y())-2])
	zs := floats.Span(make([]float64, 15), g.Z()[1], g.Z()[len(g.Z())-2])

	for _, mode := range []Mode{Tricubic, BicubicUnilinear} {
		for _, x := range xs {
			for _, y := range ys {
				for _, z := range zs {
					v, err := ev.Eval(x, y, z, mode)
					if !assert.NoError(t, err) {
						return
					}
					assert.InDelta(t, 1.0, v, 1e-12)
				}
			}
		}
	}
}

// Away from the boundary cells, the quadratic-fit slopes are exact for
// affine functions, so the interpolant must reproduce them to rounding
// error under both modes.
func TestAffineReproduction(t *testing.T) {
	value := func(x, y, z float64) float64 { return 2*x + 3*y + 5*z }
	ev := generate(t, gaussianConfig(), field.SamplerFunc(value))
	g := ev.g

	nx, ny, nz := g.Dims()
	xs := floats.Span(make([]float64, 12), g.X()[2], g.X()[nx-4])
	ys := floats.Span(make([]float64, 12), g.Y()[2], g.Y()[ny-4])
	zs := floats.Span(make([]float64, 12), g.Z()[2], g.Z()[nz-4])

	for _, mode := range []Mode{Tricubic, BicubicUnilinear} {
		for _, x := range xs {
			for _, y := range ys {
				for _, z := range zs {
					v, err := ev.Eval(x, y, z, mode)
					if !assert.NoError(t, err) {
						return
					}
					assert.InDelta(t, value(x, y, z), v, 1e-10)
				}
			}
		}
	}
}

func TestSmoothFunctionAccuracy(t *testing.T) {
	ev := generate(t, gaussianConfig(), field.SamplerFunc(gaussian))
	g := ev.g

	nx, ny, nz := g.Dims()
	xs := floats.Span(make([]float64, 12), g.X()[2], g.X()[nx-4])
	ys := floats.Span(make([]float64, 12), g.Y()[2], g.Y()[ny-4])
	zs := floats.Span(make([]float64, 12), g.Z()[2], g.Z()[nz-4])

	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				v, err := ev.Eval(x, y, z, Tricubic)
				if !assert.NoError(t, err) {
					return
				}
				assert.InDelta(t, gaussian(x, y, z), v, 5e-3)
			}
		}
	}
}

func TestDomainErrors(t *testing.T) {
	ev := generate(t, gaussianConfig(), field.SamplerFunc(gaussian))
	g := ev.g

	xlo, xhi := g.X()[1], g.X()[len(g.X())-2]
	ylo := g.Y()[1]
	zhi := g.Z()[len(g.Z())-2]

	tests := []struct {
		x, y, z float64
		axis    string
	}{
		{xlo - 0.01, ylo, 0.5, "x"},
		{xhi + 0.01, ylo, 0.5, "x"},
		{xlo, ylo - 1, 0.5, "y"},
		{xlo, ylo, zhi + 100, "z"},
	}

	for _, mode := range []Mode{Tricubic, BicubicUnilinear} {
		for _, test := range tests {
			_, err := ev.Eval(test.x, test.y, test.z, mode)
			if !assert.Error(t, err) {
				continue
			}
			domErr, ok := err.(*DomainError)
			if assert.True(t, ok, "error has type %T", err) {
				assert.Equal(t, test.axis, domErr.Axis)
			}
		}
	}

	// The edges of the covered span are still inside the domain.
	_, err := ev.Eval(xlo, ylo, zhi, Tricubic)
	assert.NoError(t, err)
	_, err = ev.Eval(xhi, ylo, zhi, BicubicUnilinear)
	assert.NoError(t, err)
}

func TestEvalAll(t *testing.T) {
	ev := generate(t, gaussianConfig(), field.SamplerFunc(gaussian))
	g := ev.g

	n := 20
	xs := floats.Span(make([]float64, n), g.X()[1], g.X()[len(g.X())-2])
	ys := floats.Span(make([]float64, n), g.Y()[1], g.Y()[len(g.Y())-2])
	zs := floats.Span(make([]float64, n), g.Z()[1], g.Z()[len(g.Z())-2])

	out, err := ev.EvalAll(xs, ys, zs, Tricubic)
	assert.NoError(t, err)
	assert.Equal(t, n, len(out))

	buf := make([]float64, n)
	out2, err := ev.EvalAll(xs, ys, zs, Tricubic, buf)
	assert.NoError(t, err)
	assert.Equal(t, out, out2)

	xs[3] = g.X()[0] - 1
	_, err = ev.EvalAll(xs, ys, zs, Tricubic)
	assert.Error(t, err)
}
