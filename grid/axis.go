package grid

import (
	"math"
)

// position evaluates the spacing law of cfg at the integer offset i.
// Interior nodes live at offsets 0..N-1; the surrounding offsets -1, N,
// and N+1 are placeholders for the ghost slots, which a BoundaryPolicy
// overwrites afterwards.
//
// The normalizing denominator is the total slot count minus 4: it
// reserves room for the three ghost slots while spreading the N interior
// nodes evenly (in the Linear case) over [Min, Max].
func position(i int, cfg *AxisConfig) float64 {
	d := float64(cfg.N + 3 - 4)
	if cfg.Spacing.Kind == Exponential && cfg.Spacing.K != 0 {
		k := cfg.Spacing.K
		return cfg.Min + (cfg.Max-cfg.Min)*
			math.Expm1(math.Ln2*float64(i)/d*k)/
			math.Expm1(math.Ln2*k)
	}
	return cfg.Min + (cfg.Max-cfg.Min)*float64(i)/d
}

// buildAxis evaluates the spacing law at every slot of one axis and then
// hands the ghost slots to the boundary policy. The returned slice has
// cfg.N + 3 strictly increasing coordinates.
func buildAxis(cfg *AxisConfig, policy BoundaryPolicy) []float64 {
	n := cfg.N + 3
	xs := make([]float64, n)
	for slot := 0; slot < n; slot++ {
		xs[slot] = position(slot-1, cfg)
	}
	policy.ExtendCoords(xs)
	return xs
}
