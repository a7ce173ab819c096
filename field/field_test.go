package field

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nbrandt/interp3d/grid"
)

func smallConfig() *grid.Config {
	// Deliberately different node counts per axis so that clamping with
	// the wrong axis's bound cannot go unnoticed.
	return &grid.Config{
		X: grid.AxisConfig{N: 2, Min: 0, Max: 1},
		Y: grid.AxisConfig{N: 4, Min: 0, Max: 2},
		Z: grid.AxisConfig{N: 6, Min: 0, Max: 3},
	}
}

// recordingSampler counts calls and records the coordinates it was
// called with, in order.
type recordingSampler struct {
	calls  int
	points [][3]float64
}

func (s *recordingSampler) Sample(x, y, z float64) float64 {
	s.calls++
	s.points = append(s.points, [3]float64{x, y, z})
	return float64(s.calls)
}

func TestGenerateCallCountAndOrder(t *testing.T) {
	cfg := smallConfig()
	g, err := grid.New(cfg)
	assert.NoError(t, err)

	s := &recordingSampler{}
	f := New(g)
	f.Generate(s)

	assert.Equal(t, cfg.X.N*cfg.Y.N*cfg.Z.N, s.calls)

	// Ascending (i, j, k) order with k varying fastest means the point
	// sequence is already sorted lexicographically by (x, y, z).
	sorted := sort.SliceIsSorted(s.points, func(a, b int) bool {
		pa, pb := s.points[a], s.points[b]
		for d := 0; d < 3; d++ {
			if pa[d] != pb[d] {
				return pa[d] < pb[d]
			}
		}
		return false
	})
	assert.True(t, sorted, "sampling order not ascending row-major")
}

func TestGenerateInteriorValues(t *testing.T) {
	g, err := grid.New(smallConfig())
	assert.NoError(t, err)

	f := New(g)
	f.Generate(SamplerFunc(func(x, y, z float64) float64 {
		return 2*x + 3*y + 5*z
	}))

	nx, ny, nz := g.Dims()
	xs, ys, zs := g.X(), g.Y(), g.Z()
	for i := 1; i <= nx-3; i++ {
		for j := 1; j <= ny-3; j++ {
			for k := 1; k <= nz-3; k++ {
				assert.Equal(t, 2*xs[i]+3*ys[j]+5*zs[k], f.At(i, j, k))
			}
		}
	}
}

func TestBoundaryPropagation(t *testing.T) {
	g, err := grid.New(smallConfig())
	assert.NoError(t, err)

	// Every interior node gets a unique value, so a ghost clamped to the
	// wrong source sticks out immediately.
	s := &recordingSampler{}
	f := New(g)
	f.Generate(s)

	nx, ny, nz := g.Dims()
	policy := g.Policy()
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				si := policy.SourceIndex(i, nx)
				sj := policy.SourceIndex(j, ny)
				sk := policy.SourceIndex(k, nz)
				assert.Equal(t, f.At(si, sj, sk), f.At(i, j, k),
					"node (%d, %d, %d)", i, j, k)
			}
		}
	}
}

func TestConstantField(t *testing.T) {
	g, err := grid.New(smallConfig())
	assert.NoError(t, err)

	f := New(g)
	f.Generate(SamplerFunc(func(x, y, z float64) float64 { return 1 }))

	for _, v := range f.Vals() {
		if v != 1 {
			t.Fatalf("Constant field contains value %g.", v)
		}
	}
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	cfg := &grid.Config{
		X: grid.AxisConfig{N: 12, Min: 0, Max: 2},
		Y: grid.AxisConfig{N: 9, Min: 0, Max: 2},
		Z: grid.AxisConfig{N: 7, Min: 0, Max: 2, Spacing: grid.ExponentialSpacing(2)},
	}
	g, err := grid.New(cfg)
	assert.NoError(t, err)

	pure := SamplerFunc(func(x, y, z float64) float64 {
		return x*x - y*z + 7
	})

	seq := New(g)
	seq.Generate(pure)

	for _, workers := range []int{1, 2, 3, 8} {
		par := New(g)
		par.GenerateParallel(pure, workers)
		assert.Equal(t, seq.Vals(), par.Vals(), "workers = %d", workers)
	}
}

func TestFromValsLengthCheck(t *testing.T) {
	g, err := grid.New(smallConfig())
	assert.NoError(t, err)

	vals := make([]float64, g.Len())
	f := FromVals(g, vals)
	assert.Equal(t, g, f.Grid())

	assert.Panics(t, func() { FromVals(g, vals[1:]) })
}
