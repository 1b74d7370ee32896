package cubic2quad

import "sort"

// inflectionEpsilon is the distance from either end of the parameter range
// within which inflection points are ignored. Splitting there would produce
// pieces of (nearly) zero length.
const inflectionEpsilon = 1e-8

// CubicBez is a cubic Bézier curve with start point P0, control points P1 and
// P2, and end point P3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// SubdivideAt splits the cubic at parameter t, using de Casteljau. The two
// resulting cubics together trace the original curve. The first one starts
// exactly at P0, the second one ends exactly at P3, and both share the point
// at t.
func (c CubicBez) SubdivideAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm},
		CubicBez{pm, p123, p23, c.P3}
}

// Inflections returns the inflection points.
//
// The function returns up to two inflection points in the first return
// parameter, in increasing order, with the second parameter specifying the
// number of points returned. Inflection points within 1e-8 of either end of
// the curve aren't reported.
func (c CubicBez) Inflections() ([2]float64, int) {
	// The curvature's sign changes where the cross product of the first and
	// second derivatives is zero. Expanding it in terms of the control points
	// and dropping the common factor yields p t² + q t + r. See
	// http://www.caffeineowl.com/graphics/2d/vectorial/cubic-inflexion.html
	x1, y1 := c.P0.Splat()
	x2, y2 := c.P1.Splat()
	x3, y3 := c.P2.Splat()
	x4, y4 := c.P3.Splat()
	p := -(x4 * (y1 - 2*y2 + y3)) + x3*(2*y1-3*y2+y4) +
		x1*(y2-2*y3+y4) - x2*(y1-3*y3+2*y4)
	q := x4*(y1-y2) + 3*x3*(-y1+y2) + x2*(2*y1-3*y3+y4) - x1*(2*y2-3*y3+y4)
	r := x3*(y1-y2) + x1*(y2-y3) + x2*(-y1+y3)

	roots, n := SolveQuadratic(p, q, r)
	var out [2]float64
	var outN int
	for _, t := range roots[:n] {
		if t > inflectionEpsilon && t < 1-inflectionEpsilon {
			out[outN] = t
			outN++
		}
	}
	if outN == 2 && out[0] > out[1] {
		out[0], out[1] = out[1], out[0]
	}
	return out, outN
}

// Extrema returns the parameters of the curve's extrema in x and y, in
// increasing order.
func (c CubicBez) Extrema() ([4]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [4]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(a, b, c)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest (axis-aligned) rectangle that encloses the
// curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// ControlBox returns the smallest (axis-aligned) rectangle that encloses the
// curve's control points. By the convex hull property of Béziers, it also
// encloses the curve.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P3).UnionPoint(c.P1).UnionPoint(c.P2)
}
