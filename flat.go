package cubic2quad

// FlatCapacity is the number of float64 values needed to store the largest
// possible result of [CubicToQuad]: [MaxQuads] quadratic Béziers with six
// coordinates each.
const FlatCapacity = MaxQuads * 6

// Fails to compile if FlatCapacity can't hold every quadratic.
const _ = uint(FlatCapacity - MaxPieces*MaxSegments*6)

// CubicToQuad approximates the cubic Bézier described by in with quadratic
// Béziers and stores them in out.
//
// in holds the coordinates of the start point, the two control points and the
// end point, in that order: x0, y0, x1, y1, x2, y2, x3, y3. Each quadratic is
// stored as six consecutive values: start point, control point and end point.
// The function returns the number of quadratics written to out, and whether
// their distance to the cubic is within precision. See [CubicBez.ToQuads] for
// details.
func CubicToQuad(in [8]float64, precision float64, out *[FlatCapacity]float64) (int, bool) {
	var buf [MaxQuads]QuadBez
	quads, ok := CubicFromFloats(in).AppendQuads(buf[:0], precision)
	AppendFloats(out[:0], quads)
	return len(quads), ok
}

// CubicFromFloats returns the cubic Bézier with the coordinates x0, y0, x1,
// y1, x2, y2, x3, y3.
func CubicFromFloats(in [8]float64) CubicBez {
	return CubicBez{
		P0: Pt(in[0], in[1]),
		P1: Pt(in[2], in[3]),
		P2: Pt(in[4], in[5]),
		P3: Pt(in[6], in[7]),
	}
}

// AppendFloats appends the coordinates of quads to dst, six per quadratic, and
// returns the extended slice.
func AppendFloats(dst []float64, quads []QuadBez) []float64 {
	for _, q := range quads {
		dst = append(dst, q.P0.X, q.P0.Y, q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)
	}
	return dst
}
