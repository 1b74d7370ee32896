package cubic2quad

import (
	"fmt"
	"math"
	"testing"
)

var testCubics = []struct {
	name string
	c    CubicBez
}{
	{"straight", CubicBez{Pt(0, 0), Pt(10, 10), Pt(20, 20), Pt(30, 30)}},
	{"raised quadratic", CubicBez{Pt(0, 0), Pt(20, 40), Pt(40, 40), Pt(60, 0)}},
	{"s-curve", CubicBez{Pt(10, 50), Pt(10, 10), Pt(54, 54), Pt(54, 14)}},
	{"two inflections", CubicBez{Pt(0, 0), Pt(0.8, 1), Pt(0.2, 1), Pt(1, 0)}},
	{"one inflection", CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0)}},
	{"large one inflection", CubicBez{Pt(0, 0), Pt(100, 200), Pt(200, -200), Pt(300, 0)}},
	{"arch", CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}},
	{"glyph", CubicBez{Pt(550, 258), Pt(1044, 482), Pt(2029, 1841), Pt(1934, 1554)}},
}

var testPrecisions = []float64{10, 1, 0.1, 0.01, 0.001}

func TestToQuadsCount(t *testing.T) {
	tests := []struct {
		name      string
		c         CubicBez
		precision float64
		n         int
		ok        bool
	}{
		{"s-curve", testCubics[2].c, 10, 2, true},
		{"s-curve", testCubics[2].c, 1, 4, true},
		{"s-curve", testCubics[2].c, 0.1, 6, true},
		{"s-curve", testCubics[2].c, 0.01, 10, true},
		{"s-curve", testCubics[2].c, 0.001, 16, false},
		{"two inflections", testCubics[3].c, 10, 3, true},
		{"two inflections", testCubics[3].c, 0.01, 4, true},
		{"two inflections", testCubics[3].c, 0.001, 7, true},
		{"two inflections", testCubics[3].c, 1e-5, 22, false},
		{"one inflection", testCubics[4].c, 0.1, 2, true},
		{"one inflection", testCubics[4].c, 0.01, 4, true},
		{"one inflection", testCubics[4].c, 0.001, 8, true},
		{"large one inflection", testCubics[5].c, 1, 4, true},
		{"large one inflection", testCubics[5].c, 0.1, 8, true},
		{"large one inflection", testCubics[5].c, 0.01, 16, false},
		{"arch", testCubics[6].c, 10, 2, true},
		{"arch", testCubics[6].c, 1, 3, true},
		{"arch", testCubics[6].c, 0.1, 5, true},
		{"glyph", testCubics[7].c, 1, 5, true},
		{"glyph", testCubics[7].c, 0.1, 8, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%g", tt.name, tt.precision), func(t *testing.T) {
			quads, ok := tt.c.ToQuads(tt.precision)
			if len(quads) != tt.n {
				t.Errorf("got %d quadratics, expected %d", len(quads), tt.n)
			}
			if ok != tt.ok {
				t.Errorf("got ok=%t, expected %t", ok, tt.ok)
			}
		})
	}
}

func TestToQuadsStraight(t *testing.T) {
	c := testCubics[0].c
	quads, ok := c.ToQuads(1e-8)
	if !ok {
		t.Error("precision not attained")
	}
	diff(t, []QuadBez{{Pt(0, 0), Pt(15, 15), Pt(30, 30)}}, quads)
}

func TestToQuadsRaisedQuadratic(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(30, 60), Pt(60, 0)}
	c := q.Raise()
	if _, n := c.Inflections(); n != 0 {
		t.Fatalf("got %d inflections, expected 0", n)
	}
	quads, ok := c.ToQuads(DefaultPrecision)
	if !ok {
		t.Error("precision not attained")
	}
	diff(t, []QuadBez{q}, quads, pointComparer)
}

func TestToQuadsBestEffort(t *testing.T) {
	// The arch needs more than MaxSegments quadratics for this precision.
	c := testCubics[6].c
	quads, ok := c.ToQuads(0.01)
	if ok {
		t.Error("got ok=true, expected precision not to be attained")
	}
	if len(quads) != MaxSegments {
		t.Fatalf("got %d quadratics, expected %d", len(quads), MaxSegments)
	}
	assertChained(t, c, quads)
	// The result is still the best approximation available.
	if !c.PowerBasis().ApproximationClose(quads, 0.02) {
		t.Error("best effort approximation isn't within 0.02")
	}
}

func assertChained(t *testing.T, c CubicBez, quads []QuadBez) {
	t.Helper()
	if len(quads) == 0 {
		t.Fatal("got no quadratics")
	}
	if len(quads) > MaxQuads {
		t.Errorf("got %d quadratics, at most %d allowed", len(quads), MaxQuads)
	}
	if quads[0].P0 != c.P0 {
		t.Errorf("first quadratic starts at %s, expected %s", quads[0].P0, c.P0)
	}
	if end := quads[len(quads)-1].P2; end != c.P3 {
		t.Errorf("last quadratic ends at %s, expected %s", end, c.P3)
	}
	for i := 1; i < len(quads); i++ {
		if quads[i-1].P2 != quads[i].P0 {
			t.Errorf("quadratic %d ends at %s, but quadratic %d starts at %s",
				i-1, quads[i-1].P2, i, quads[i].P0)
		}
	}
	for i, q := range quads {
		if q.IsNaN() || q.IsInf() {
			t.Errorf("quadratic %d isn't finite: %v", i, q)
		}
	}
}

func TestToQuadsChained(t *testing.T) {
	for _, tc := range testCubics {
		for _, precision := range append(testPrecisions, 1e-5) {
			t.Run(fmt.Sprintf("%s/%g", tc.name, precision), func(t *testing.T) {
				quads, _ := tc.c.ToQuads(precision)
				assertChained(t, tc.c, quads)
			})
		}
	}
}

func TestToQuadsWithinPrecision(t *testing.T) {
	for _, tc := range testCubics {
		for _, precision := range testPrecisions {
			t.Run(fmt.Sprintf("%s/%g", tc.name, precision), func(t *testing.T) {
				quads, ok := tc.c.ToQuads(precision)
				if !ok {
					t.Skip("precision not attainable")
				}
				const n = 2000
				for i := range n + 1 {
					pt := tc.c.Eval(float64(i) / n)
					dist := math.Inf(1)
					for _, q := range quads {
						dist = min(dist, q.MinDistance(pt))
					}
					if dist > precision {
						t.Fatalf("%s is %g away from the approximation", pt, dist)
					}
				}
			})
		}
	}
}

func TestToQuadsMonotonic(t *testing.T) {
	for _, tc := range testCubics {
		prev := 0
		for _, precision := range testPrecisions {
			quads, _ := tc.c.ToQuads(precision)
			if len(quads) < prev {
				t.Errorf("%s: got %d quadratics for precision %g, but %d for a coarser one",
					tc.name, len(quads), precision, prev)
			}
			prev = len(quads)
		}
	}
}

func TestToQuadsWithinControlBox(t *testing.T) {
	// Splitting at inflections leaves pieces whose quadratics stay within
	// the cubic's control box. Without inflections this needn't hold: a
	// raised quadratic's own control point lies outside of it.
	for _, tc := range testCubics {
		if _, n := tc.c.Inflections(); n == 0 {
			continue
		}
		box := tc.c.ControlBox().Inflate(1e-9, 1e-9)
		for _, precision := range testPrecisions {
			quads, _ := tc.c.ToQuads(precision)
			for _, q := range quads {
				for _, pt := range []Point{q.P0, q.P1, q.P2} {
					if !box.Contains(pt) {
						t.Errorf("%s/%g: %s lies outside of %v", tc.name, precision, pt, box)
					}
				}
			}
		}
	}
}

func TestToQuadsEndPointsWithinBoundingBox(t *testing.T) {
	for _, tc := range testCubics {
		box := tc.c.BoundingBox().Inflate(1e-9, 1e-9)
		for _, precision := range testPrecisions {
			quads, _ := tc.c.ToQuads(precision)
			for _, q := range quads {
				for _, pt := range []Point{q.P0, q.P2} {
					if !box.Contains(pt) {
						t.Errorf("%s/%g: %s lies outside of %v", tc.name, precision, pt, box)
					}
				}
			}
		}
	}
}

func TestToQuadsIdempotent(t *testing.T) {
	// Each quadratic, raised to a cubic, approximates itself.
	for _, tc := range testCubics {
		for _, precision := range []float64{1, 0.1, 0.01} {
			quads, _ := tc.c.ToQuads(precision)
			for i, q := range quads {
				again, ok := q.Raise().ToQuads(precision)
				if !ok || len(again) != 1 {
					t.Errorf("%s/%g: quadratic %d became %d quadratics (ok=%t)",
						tc.name, precision, i, len(again), ok)
				}
			}
		}
	}
}

func TestAppendQuads(t *testing.T) {
	c := testCubics[2].c
	prefix := QuadBez{Pt(-1, -1), Pt(0, 0), Pt(1, 1)}
	dst := []QuadBez{prefix}
	dst, ok := c.AppendQuads(dst, 1)
	if !ok {
		t.Error("precision not attained")
	}
	if len(dst) != 5 {
		t.Fatalf("got %d quadratics, expected 5", len(dst))
	}
	diff(t, prefix, dst[0])
	want, _ := c.ToQuads(1)
	diff(t, want, dst[1:])
}

func TestInflectionPieces(t *testing.T) {
	c := testCubics[3].c
	infl, n := c.Inflections()
	if n != 2 {
		t.Fatalf("got %d inflections, expected 2", n)
	}
	pieces, np := c.inflectionPieces()
	if np != 3 {
		t.Fatalf("got %d pieces, expected 3", np)
	}
	bounds := []float64{0, infl[0], infl[1], 1}
	for i, piece := range pieces[:np] {
		t0, t1 := bounds[i], bounds[i+1]
		const samples = 10
		for j := range samples + 1 {
			u := float64(j) / samples
			assertNear(t, piece.Eval(u), c.Eval(t0+u*(t1-t0)), 1e-9)
		}
		if _, m := piece.Inflections(); m != 0 {
			t.Errorf("piece %d has %d inflections", i, m)
		}
	}
}

func TestSameConvexity(t *testing.T) {
	c := testCubics[6].c
	if !c.sameConvexity(Pt(50, 75)) {
		t.Error("control point inside the arch was rejected")
	}
	if c.sameConvexity(Pt(50, -75)) {
		t.Error("control point below the arch was accepted")
	}
	if c.sameConvexity(Pt(-50, -10)) {
		t.Error("control point behind the start was accepted")
	}
}

func BenchmarkToQuads(b *testing.B) {
	for _, tc := range testCubics[2:] {
		b.Run(tc.name, func(b *testing.B) {
			var buf [MaxQuads]QuadBez
			for range b.N {
				tc.c.AppendQuads(buf[:0], DefaultPrecision)
			}
		})
	}
}
