package interpolate

// searcher finds the cell containing a coordinate on a strictly
// increasing axis. It guesses under the assumption of uniform spacing
// and falls back to binary search when the guess misses, so lookups on
// mildly non-uniform axes are usually O(1) and never worse than
// O(log n).
type searcher struct {
	xs []float64
	dx float64
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
}

// search returns an index m with xs[m] <= x <= xs[m+1]. When x sits
// exactly on an interior knot either bracketing cell may be returned;
// both give the same interpolant there. The caller must have
// bounds-checked x already.
func (s *searcher) search(x float64) int {
	guess := int((x - s.xs[0]) / s.dx)
	if guess >= 0 && guess < len(s.xs)-1 &&
		s.xs[guess] <= x && s.xs[guess+1] >= x {

		return guess
	}

	lo, hi := 0, len(s.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
