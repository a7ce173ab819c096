package interpolate

// cubic evaluates a cubic Hermite interpolant through a 4-point stencil
// at x, with x inside the middle interval [xs[1], xs[2]]. The slopes at
// the two bracketing nodes are the derivatives of the quadratics fit
// through each node and its two neighbors, which keeps the scheme exact
// on the knots and C1 across cell boundaries for any node spacing. On a
// uniform stencil this reduces to Catmull-Rom.
func cubic(xs, vs []float64, x float64) float64 {
	s0 := (vs[1] - vs[0]) / (xs[1] - xs[0])
	s1 := (vs[2] - vs[1]) / (xs[2] - xs[1])
	s2 := (vs[3] - vs[2]) / (xs[3] - xs[2])

	m1 := (s0*(xs[2]-xs[1]) + s1*(xs[1]-xs[0])) / (xs[2] - xs[0])
	m2 := (s1*(xs[3]-xs[2]) + s2*(xs[2]-xs[1])) / (xs[3] - xs[1])

	h := xs[2] - xs[1]
	t := (x - xs[1]) / h
	t2, t3 := t*t, t*t*t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*vs[1] + h10*h*m1 + h01*vs[2] + h11*h*m2
}

// linear evaluates a straight line through the 2-point stencil at x.
func linear(xs, vs []float64, x float64) float64 {
	return vs[0] + (vs[1]-vs[0])/(xs[1]-xs[0])*(x-xs[0])
}
