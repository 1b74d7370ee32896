// Package geompath replaces the cubic Bézier segments of
// [seehuhn.de/go/geom/path] paths with quadratic Bézier segments.
package geompath

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/cubic2quad"
)

// Quadratics returns a path in which every cubic Bézier segment of p is
// approximated by quadratic Bézier segments, to within precision. All other
// commands are passed through unchanged.
//
// The slices yielded by the returned path are only valid until the next
// iteration.
func Quadratics(p path.Path, precision float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		walk(p, precision, yield)
	}
}

// Convert is like [Quadratics] but collects the result. It also reports
// whether every cubic segment was approximated within precision.
func Convert(p path.Path, precision float64) (*path.Data, bool) {
	out := &path.Data{}
	ok := walk(p, precision, func(cmd path.Command, pts []vec.Vec2) bool {
		switch cmd {
		case path.CmdMoveTo:
			out.MoveTo(pts[0])
		case path.CmdLineTo:
			out.LineTo(pts[0])
		case path.CmdQuadTo:
			out.QuadTo(pts[0], pts[1])
		case path.CmdCubeTo:
			out.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			out.Close()
		}
		return true
	})
	return out, ok
}

// walk feeds the commands of p to yield, with cubic segments replaced by
// quadratic ones. It stops early if yield returns false. The result reports
// whether all cubic segments met the precision.
func walk(p path.Path, precision float64, yield func(path.Command, []vec.Vec2) bool) bool {
	var (
		current vec.Vec2 // current point
		subpath vec.Vec2 // subpath start
		buf     [cubic2quad.MaxQuads]cubic2quad.QuadBez
		pts     [2]vec.Vec2
	)
	ok := true
	for cmd, args := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = args[0]
			subpath = current
		case path.CmdLineTo:
			current = args[0]
		case path.CmdQuadTo:
			current = args[1]
		case path.CmdCubeTo:
			c := cubic2quad.CubicBez{
				P0: toPoint(current),
				P1: toPoint(args[0]),
				P2: toPoint(args[1]),
				P3: toPoint(args[2]),
			}
			quads, cubicOK := c.AppendQuads(buf[:0], precision)
			ok = ok && cubicOK
			for _, q := range quads {
				pts[0] = toVec(q.P1)
				pts[1] = toVec(q.P2)
				if !yield(path.CmdQuadTo, pts[:]) {
					return ok
				}
			}
			current = args[2]
			continue
		case path.CmdClose:
			current = subpath
		}
		if !yield(cmd, args) {
			return ok
		}
	}
	return ok
}

func toPoint(v vec.Vec2) cubic2quad.Point {
	return cubic2quad.Pt(v.X, v.Y)
}

func toVec(pt cubic2quad.Point) vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}
