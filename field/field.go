// Package field stores the sampled values of a scalar function on a
// grid. Interior nodes are filled by calling the caller's sampler once
// per node; the ghost layer inherits values through the grid's boundary
// policy so that edge stencils read real data instead of zeros.
package field

import (
	"log"

	"github.com/nbrandt/interp3d/grid"
)

// Verbose enables progress logging during long sampling passes.
var Verbose = false

// Sampler supplies the scalar function being tabulated. Generate calls
// Sample exactly once per interior node, in ascending (i, j, k) order
// with k varying fastest. Samplers that mutate their own state must
// tolerate this fixed order and count.
type Sampler interface {
	Sample(x, y, z float64) float64
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(x, y, z float64) float64

func (f SamplerFunc) Sample(x, y, z float64) float64 { return f(x, y, z) }

// Field is the dense row-major sample storage of one grid. Entries are
// indexed with grid.Index.
type Field struct {
	g    *grid.Grid
	vals []float64
}

// New allocates a zeroed field matching g.
func New(g *grid.Grid) *Field {
	return &Field{g: g, vals: make([]float64, g.Len())}
}

// FromVals wraps existing sample storage, e.g. values read back from a
// file. Panics if the length does not match the grid.
func FromVals(g *grid.Grid, vals []float64) *Field {
	if len(vals) != g.Len() {
		log.Panicf(
			"field: len(vals) = %d, but grid has %d nodes",
			len(vals), g.Len(),
		)
	}
	return &Field{g: g, vals: vals}
}

// Grid returns the grid the field is defined on.
func (f *Field) Grid() *grid.Grid { return f.g }

// Vals returns the raw sample storage. The caller must not modify it.
func (f *Field) Vals() []float64 { return f.vals }

// At returns the sample at node (i, j, k).
func (f *Field) At(i, j, k int) float64 {
	return f.vals[f.g.Index(i, j, k)]
}

// Generate fills the interior of the field by sampling s and then
// propagates boundary values into the ghost layer. Sampling is strictly
// sequential; use GenerateParallel only when s is safe to call from
// multiple goroutines.
func (f *Field) Generate(s Sampler) {
	nx, ny, nz := f.g.Dims()
	xs, ys, zs := f.g.X(), f.g.Y(), f.g.Z()

	for i := 1; i <= nx-3; i++ {
		for j := 1; j <= ny-3; j++ {
			for k := 1; k <= nz-3; k++ {
				f.vals[f.g.Index(i, j, k)] = s.Sample(xs[i], ys[j], zs[k])
			}
		}
		if Verbose && i%25 == 0 {
			log.Printf("field: sampled %d/%d planes", i, nx-3)
		}
	}

	f.fillBoundary()
}

// fillBoundary copies interior values into every ghost node. Each axis
// index is clamped independently with that axis's own bound, so corner
// ghosts inherit from the nearest interior corner.
func (f *Field) fillBoundary() {
	nx, ny, nz := f.g.Dims()
	policy := f.g.Policy()

	for i := 0; i < nx; i++ {
		si := policy.SourceIndex(i, nx)
		for j := 0; j < ny; j++ {
			sj := policy.SourceIndex(j, ny)
			for k := 0; k < nz; k++ {
				sk := policy.SourceIndex(k, nz)
				if si != i || sj != j || sk != k {
					f.vals[f.g.Index(i, j, k)] = f.vals[f.g.Index(si, sj, sk)]
				}
			}
		}
	}
}
