package cubic2quad

const (
	// MaxSegments is the maximum number of quadratic Béziers used to
	// approximate a cubic Bézier without inflection points.
	MaxSegments = 8
	// MaxInflections is the maximum number of inflection points of a cubic
	// Bézier.
	MaxInflections = 2
	// MaxPieces is the maximum number of inflection-free pieces a cubic
	// Bézier is split into.
	MaxPieces = MaxInflections + 1
	// MaxQuads is the maximum number of quadratic Béziers produced for a
	// single cubic Bézier.
	MaxQuads = MaxPieces * MaxSegments
)

// DefaultPrecision is a default value for the precision argument of
// [CubicBez.ToQuads] and related functions. It is suitable for font outlines
// in units of 1/1000 em and for 2D graphics in device pixels.
const DefaultPrecision = 0.1

// ToQuads approximates the cubic Bézier with a sequence of quadratic Béziers.
//
// The quadratics are placed end to end: the first one starts at c.P0, the last
// one ends at c.P3, and each one starts exactly where the previous one ends.
// The curve is first split at its inflection points, and each piece is
// approximated with the smallest number of quadratics, up to [MaxSegments],
// that stays within precision of the piece. At most [MaxQuads] quadratics are
// returned.
//
// The second return value reports whether the precision was attained. If it
// wasn't, the approximation of the offending pieces uses MaxSegments
// quadratics, which is the best effort this function makes.
//
// Coordinates must be finite. Precision must be positive.
func (c CubicBez) ToQuads(precision float64) ([]QuadBez, bool) {
	return c.AppendQuads(make([]QuadBez, 0, MaxSegments), precision)
}

// AppendQuads is like [CubicBez.ToQuads] but appends the quadratics to dst and
// returns the extended slice.
func (c CubicBez) AppendQuads(dst []QuadBez, precision float64) ([]QuadBez, bool) {
	pieces, n := c.inflectionPieces()
	ok := true
	for _, piece := range pieces[:n] {
		var pieceOK bool
		dst, pieceOK = piece.appendQuadsNoInflections(dst, precision)
		ok = ok && pieceOK
	}
	return dst, ok
}

// inflectionPieces splits the cubic at its inflection points.
func (c CubicBez) inflectionPieces() ([MaxPieces]CubicBez, int) {
	var out [MaxPieces]CubicBez
	var outN int

	infl, n := c.Inflections()
	rest := c
	prev := 0.0
	for _, t := range infl[:n] {
		// rest covers [prev, 1] of the original curve, so map t into its
		// parameter space.
		left, right := rest.SubdivideAt(1 - (1-t)/(1-prev))
		out[outN] = left
		outN++
		rest = right
		prev = t
	}
	out[outN] = rest
	outN++
	return out, outN
}

// appendQuadsNoInflections approximates a cubic without inflection points
// using 1 to MaxSegments quadratics, picking the smallest number that is
// close enough.
func (c CubicBez) appendQuadsNoInflections(dst []QuadBez, precision float64) ([]QuadBez, bool) {
	pb := c.PowerBasis()
	var quads [MaxSegments]QuadBez
	for n := 1; n <= MaxSegments; n++ {
		for i := range n {
			t0 := float64(i) / float64(n)
			t1 := float64(i+1) / float64(n)
			quads[i] = pb.FitQuad(t0, t1)
		}
		// Eval(0) is exact but Eval(1) is subject to rounding; pin both ends
		// to the control points so that neighboring pieces connect exactly.
		quads[0].P0 = c.P0
		quads[n-1].P2 = c.P3

		if n == 1 && !c.sameConvexity(quads[0].P1) {
			continue
		}
		if pb.ApproximationClose(quads[:n], precision) {
			return append(dst, quads[:n]...), true
		}
	}
	return append(dst, quads[:]...), false
}

// sameConvexity reports whether a quadratic control point ctrl bends towards
// the same side as the cubic's own control points. A single quadratic whose
// control point lies on the other side of the end points is concave where
// the cubic is convex, or vice versa.
func (c CubicBez) sameConvexity(ctrl Point) bool {
	return ctrl.Sub(c.P0).Dot(c.P1.Sub(c.P0)) >= 0 &&
		ctrl.Sub(c.P3).Dot(c.P2.Sub(c.P3)) >= 0
}
