package cubic2quad

import "math"

// tangentEpsilon is the magnitude below which the cross product of two
// tangents is considered zero, i.e. the tangents parallel.
const tangentEpsilon = 1e-8

// FitQuad approximates the curve in the parameter range [t1, t2] with a single
// quadratic Bézier.
//
// The quadratic's end points are the curve's points at t1 and t2, and its
// control point is the intersection of the curve's tangents at those points.
// When the tangents are (nearly) parallel, the range is treated as a straight
// line and the control point is placed halfway between the end points.
func (pb PowerBasis) FitQuad(t1, t2 float64) QuadBez {
	// With f(t) the curve, the tangent lines are f(t1) + f'(t1) z1 and
	// f(t2) + f'(t2) z2. Equating them and solving for z1 gives
	//
	//      -(fx(t2) - fx(t1)) fy'(t2) + (fy(t2) - fy(t1)) fx'(t2)
	// z1 = ------------------------------------------------------
	//               -fx'(t1) fy'(t2) + fx'(t2) fy'(t1)
	//
	// which, substituted back into the first tangent line, yields the closed
	// forms for cx and cy below. The denominator is zero iff the tangents are
	// parallel.
	f1 := pb.Eval(t1)
	f2 := pb.Eval(t2)
	d1 := pb.Deriv(t1)
	d2 := pb.Deriv(t2)

	den := -d1.X*d2.Y + d2.X*d1.Y
	if math.Abs(den) < tangentEpsilon {
		return QuadBez{f1, f1.Midpoint(f2), f2}
	}
	k2 := f2.Y*d2.X - f2.X*d2.Y
	k1 := f1.X*d1.Y - f1.Y*d1.X
	cx := (d1.X*k2 + d2.X*k1) / den
	cy := (d1.Y*k2 + d2.Y*k1) / den
	return QuadBez{f1, Pt(cx, cy), f2}
}
