// Package sfntquad converts glyph outlines loaded with
// [golang.org/x/image/font/sfnt] to quadratic Bézier outlines, as used by
// TrueType glyf tables.
//
// CFF based OpenType fonts describe their outlines with cubic Béziers. Their
// segments are replaced with chains of quadratic Béziers; all other segments
// are kept as they are.
package sfntquad

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/cubic2quad"
)

// Segments appends the segments of src to dst, with every cubic Bézier
// replaced by quadratic Béziers that are within precision of it, and returns
// the extended slice. The second return value reports whether all cubics
// could be approximated within precision; see [cubic2quad.CubicBez.ToQuads].
//
// Control points are rounded to the nearest 26.6 fixed point value. End
// points shared by consecutive quadratics round identically, so contours stay
// connected.
func Segments(dst, src sfnt.Segments, precision fixed.Int26_6) (sfnt.Segments, bool) {
	var buf [cubic2quad.MaxQuads]cubic2quad.QuadBez
	prec := fromFixed(precision)
	ok := true
	var current fixed.Point26_6
	for _, seg := range src {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
			current = seg.Args[0]
		case sfnt.SegmentOpQuadTo:
			current = seg.Args[1]
		case sfnt.SegmentOpCubeTo:
			c := cubic2quad.CubicBez{
				P0: toPoint(current),
				P1: toPoint(seg.Args[0]),
				P2: toPoint(seg.Args[1]),
				P3: toPoint(seg.Args[2]),
			}
			quads, cubicOK := c.AppendQuads(buf[:0], prec)
			ok = ok && cubicOK
			for _, q := range quads {
				dst = append(dst, sfnt.Segment{
					Op:   sfnt.SegmentOpQuadTo,
					Args: [3]fixed.Point26_6{toFixed(q.P1), toFixed(q.P2)},
				})
			}
			current = seg.Args[2]
			continue
		}
		dst = append(dst, seg)
	}
	return dst, ok
}

// LoadGlyph loads the outline of glyph x, scaled to ppem, and converts it with
// [Segments]. The buffer b may be nil, as with [sfnt.Font.LoadGlyph].
func LoadGlyph(f *sfnt.Font, b *sfnt.Buffer, x sfnt.GlyphIndex, ppem, precision fixed.Int26_6) (sfnt.Segments, bool, error) {
	segs, err := f.LoadGlyph(b, x, ppem, nil)
	if err != nil {
		return nil, false, err
	}
	out, ok := Segments(nil, segs, precision)
	return out, ok, nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toPoint(p fixed.Point26_6) cubic2quad.Point {
	return cubic2quad.Pt(fromFixed(p.X), fromFixed(p.Y))
}

func toFixed(pt cubic2quad.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(pt.X * 64)),
		Y: fixed.Int26_6(math.Round(pt.Y * 64)),
	}
}
