package cubic2quad

// PowerBasis is a cubic Bézier expressed as the polynomial
// A t³ + B t² + C t + D.
//
// Evaluating the polynomial at t = 0 yields exactly D, the curve's start
// point. Evaluating it at t = 1 yields the end point, subject to rounding.
type PowerBasis struct {
	A, B, C, D Vec2
}

// PowerBasis converts the cubic's control points to power basis coefficients.
func (c CubicBez) PowerBasis() PowerBasis {
	// P(t) = P0 (1-t)³ + 3 P1 t (1-t)² + 3 P2 t² (1-t) + P3 t³
	p0, p1, p2, p3 := Vec2(c.P0), Vec2(c.P1), Vec2(c.P2), Vec2(c.P3)
	return PowerBasis{
		A: p3.Sub(p0).Add(p1.Sub(p2).Mul(3)),
		B: p0.Add(p2).Mul(3).Sub(p1.Mul(6)),
		C: p1.Sub(p0).Mul(3),
		D: p0,
	}
}

// Eval evaluates the curve at parameter t.
func (pb PowerBasis) Eval(t float64) Point {
	// ((A t + B) t + C) t + D
	return Point(pb.A.Mul(t).Add(pb.B).Mul(t).Add(pb.C).Mul(t).Add(pb.D))
}

// Deriv evaluates the curve's first derivative at parameter t.
func (pb PowerBasis) Deriv(t float64) Vec2 {
	// (3A t + 2B) t + C
	return pb.A.Mul(3 * t).Add(pb.B.Mul(2)).Mul(t).Add(pb.C)
}

// quadPowerBasis converts a quadratic Bézier to the coefficients of
// a t² + b t + c.
func quadPowerBasis(q QuadBez) (a, b, c Vec2) {
	p0, p1, p2 := Vec2(q.P0), Vec2(q.P1), Vec2(q.P2)
	a = p0.Add(p2).Sub(p1.Mul(2))
	b = p1.Sub(p0).Mul(2)
	c = p0
	return a, b, c
}

func evalQuadPower(a, b, c Vec2, t float64) Point {
	return Point(a.Mul(t).Add(b).Mul(t).Add(c))
}
