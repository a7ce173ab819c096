package field

import (
	"log"
)

// GenerateParallel fills the field like Generate, but splits the interior
// x planes across workers goroutines. The per-node call count is the same
// as in the sequential pass, but the order in which nodes are visited is
// not: only use this when s is pure or externally synchronized. Sampling
// never runs in parallel unless the caller comes through here.
func (f *Field) GenerateParallel(s Sampler, workers int) {
	if workers <= 1 {
		f.Generate(s)
		return
	}

	nx, ny, nz := f.g.Dims()
	xs, ys, zs := f.g.X(), f.g.Y(), f.g.Z()

	out := make(chan int, workers)
	for id := 0; id < workers; id++ {
		go func(id int) {
			// Worker id owns planes id, id+workers, id+2*workers, ...
			for i := 1 + id; i <= nx-3; i += workers {
				for j := 1; j <= ny-3; j++ {
					for k := 1; k <= nz-3; k++ {
						f.vals[f.g.Index(i, j, k)] =
							s.Sample(xs[i], ys[j], zs[k])
					}
				}
			}
			out <- id
		}(id)
	}
	for id := 0; id < workers; id++ {
		<-out
	}
	if Verbose {
		log.Printf("field: sampled %d planes on %d workers", nx-3, workers)
	}

	f.fillBoundary()
}
