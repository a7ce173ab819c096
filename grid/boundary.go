package grid

// BoundaryPolicy decides how the three ghost slots of each axis relate to
// the interior nodes. Slot 0 sits below the first interior node and the
// top two slots sit above the last one. Grid construction and boundary
// value propagation only ever talk to the policy, so alternative schemes
// (periodic, mirrored) can be swapped in without touching either.
type BoundaryPolicy interface {
	// ExtendCoords overwrites the ghost coordinate slots of axis in
	// place. axis holds n+3 slots whose interior range 1..n has already
	// been filled by the spacing law.
	ExtendCoords(axis []float64)

	// SourceIndex maps a node index on an axis with n total slots to the
	// interior index whose sample value the node inherits. Interior
	// indices map to themselves.
	SourceIndex(i, n int) int
}

// FlatBoundary extrapolates ghost coordinates linearly from the two
// nearest interior nodes and copies the nearest interior sample value
// into each ghost slot.
type FlatBoundary struct{}

func (FlatBoundary) ExtendCoords(axis []float64) {
	n := len(axis)
	axis[0] = 2*axis[1] - axis[2]
	axis[n-2] = 2*axis[n-3] - axis[n-4]
	// Chained off the slot overwritten on the previous line.
	axis[n-1] = 2*axis[n-2] - axis[n-3]
}

func (FlatBoundary) SourceIndex(i, n int) int {
	if i < 1 {
		return 1
	}
	if i > n-3 {
		return n - 3
	}
	return i
}

var _ BoundaryPolicy = FlatBoundary{}
