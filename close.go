package cubic2quad

import "math"

// closenessSamples is the number of intervals a parameter range is divided
// into when comparing a cubic with its approximation. The curves are
// compared at the closenessSamples-1 interior points.
const closenessSamples = 10

// negligibleCoeff is the relative magnitude below which a leading polynomial
// coefficient is treated as zero by [QuadBez.MinDistance].
const negligibleCoeff = 1e-12

// MinDistance returns the smallest distance between pt and any point on the
// quadratic Bézier.
func (q QuadBez) MinDistance(pt Point) float64 {
	// With f(t) = a t² + b t + c, the distance |f(t) - pt| has a local
	// extremum where f'(t) · (f(t) - pt) = 0, which expands to
	//
	//   2a² t³ + 3ab t² + (b² + 2a·(c - pt)) t + (c - pt)·b = 0.
	//
	// The minimum over [0, 1] is at one of that equation's roots inside the
	// range, or at one of the end points.
	a, b, c := quadPowerBasis(q)
	d := c.Sub(Vec2(pt))
	coeffs := [4]float64{
		2 * a.Hypot2(),
		3 * a.Dot(b),
		b.Hypot2() + 2*a.Dot(d),
		d.Dot(b),
	}
	roots, n := SolveCubic(trimLeading(coeffs))

	var candidates [5]float64
	var nc int
	for _, r := range roots[:n] {
		if r > 0 && r < 1 {
			candidates[nc] = r
			nc++
		}
	}
	candidates[nc] = 0
	candidates[nc+1] = 1
	nc += 2

	dist := math.Inf(1)
	for _, t := range candidates[:nc] {
		dist = min(dist, evalQuadPower(a, b, c, t).Distance(pt))
	}
	return dist
}

// trimLeading zeroes leading coefficients that are negligible compared to the
// largest coefficient. For a nearly straight quadratic, the cubic coefficient
// of the nearest point equation is pure rounding noise, and feeding it to
// Cardan's method would move the point of symmetry to infinity.
func trimLeading(coeffs [4]float64) (_, _, _, _ float64) {
	var scale float64
	for _, c := range coeffs {
		scale = max(scale, math.Abs(c))
	}
	for i := range len(coeffs) - 1 {
		if math.Abs(coeffs[i]) > negligibleCoeff*scale {
			break
		}
		coeffs[i] = 0
	}
	return coeffs[0], coeffs[1], coeffs[2], coeffs[3]
}

// SegmentClose reports whether the quadratic q stays within bound of the
// curve's parameter range [tmin, tmax].
//
// This is a simplified, one-sided version of the Hausdorff distance: the
// curve is sampled at a fixed number of interior points, and each sample must
// be within bound of q. The end points aren't checked, as q is expected to
// share them with the curve. Points on q aren't checked against the curve.
// This is not a formal bound, but it is sufficient for practical purposes.
func (pb PowerBasis) SegmentClose(tmin, tmax float64, q QuadBez, bound float64) bool {
	dt := (tmax - tmin) / closenessSamples
	for i := 1; i < closenessSamples; i++ {
		pt := pb.Eval(tmin + float64(i)*dt)
		if q.MinDistance(pt) > bound {
			return false
		}
	}
	return true
}

// ApproximationClose reports whether quads, as a whole, approximate the curve
// within bound. The parameter range [0, 1] is divided into len(quads) equal
// intervals, and each quadratic is checked against its interval with
// [PowerBasis.SegmentClose].
func (pb PowerBasis) ApproximationClose(quads []QuadBez, bound float64) bool {
	n := float64(len(quads))
	for i, q := range quads {
		t0 := float64(i) / n
		t1 := float64(i+1) / n
		if !pb.SegmentClose(t0, t1, q, bound) {
			return false
		}
	}
	return true
}
