package cubic2quad

import "math"

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which a x² + b x + c = 0. The second return value
// states how many roots were found.
//
// If a is zero, the equation is treated as linear. If both a and b are zero,
// no roots are returned, regardless of c; in particular, the degenerate
// equation 0 = 0 doesn't report any root. A double root is reported once. Two
// distinct roots are returned in the order (-b - √D) / 2a, (-b + √D) / 2a,
// which is only ascending for positive a.
func SolveQuadratic(a, b, c float64) ([2]float64, int) {
	if a == 0 {
		if b == 0 {
			return [2]float64{}, 0
		}
		return [2]float64{-c / b}, 1
	}
	// The conversions keep the compiler from fusing the products into a
	// multiply-add, which would make the d == 0 case platform dependent.
	d := float64(b*b) - float64(4*a*c)
	if d < 0 {
		return [2]float64{}, 0
	} else if d == 0 {
		return [2]float64{-b / (2 * a)}, 1
	}
	sq := math.Sqrt(d)
	return [2]float64{
		(-b - sq) / (2 * a),
		(-b + sq) / (2 * a),
	}, 2
}

// SolveCubic finds real roots of cubic equations.
//
// Returns values of x for which a x³ + b x² + c x + d = 0. The second return
// value states how many roots were found. If a is zero, this solves the
// quadratic equation b x² + c x + d = 0 instead.
//
// The roots are found with Cardan's method, expressed in terms of the cubic's
// point of symmetry as described by Nickalls. Roots aren't sorted. They also
// aren't deduplicated: when the discriminant is exactly zero, two roots are
// returned even though one of them is a double root, and rounding may make
// distinct values out of what mathematically is a single root.
//
// See: R.W.D. Nickalls, "A new approach to solving the cubic: Cardan's
// solution revealed", The Mathematical Gazette 77 (1993).
func SolveCubic(a, b, c, d float64) ([3]float64, int) {
	if a == 0 {
		roots, n := SolveQuadratic(b, c, d)
		return [3]float64{roots[0], roots[1]}, n
	}

	// (xn, yn) is the point of symmetry, which is also the inflection point
	// of the cubic.
	xn := -b / (3 * a)
	yn := ((a*xn+b)*xn+c)*xn + d
	deltaSq := (b*b - 3*a*c) / (9 * a * a)
	// Both products are rounded explicitly, as in SolveQuadratic.
	hSq := float64(4 * a * a * (deltaSq * deltaSq * deltaSq))
	d3 := float64(yn*yn) - hSq
	if d3 > 0 {
		sq := math.Sqrt(d3)
		return [3]float64{
			xn + cbrt((-yn+sq)/(2*a)) + cbrt((-yn-sq)/(2*a)),
		}, 1
	} else if d3 == 0 {
		delta := cbrt(yn / (2 * a))
		return [3]float64{
			xn - 2*delta,
			xn + delta,
		}, 2
	}

	// h = 2aδ³ carries the sign of a, which √h² would lose.
	delta := math.Sqrt(deltaSq)
	h := 2 * a * deltaSq * delta
	th := math.Acos(max(-1, min(1, -yn/h))) / 3
	return [3]float64{
		xn + 2*delta*math.Cos(th),
		xn + 2*delta*math.Cos(th+2*math.Pi/3),
		xn + 2*delta*math.Cos(th+4*math.Pi/3),
	}, 3
}

// cbrt returns the real cube root of x, preserving its sign.
func cbrt(x float64) float64 {
	return math.Cbrt(x)
}
