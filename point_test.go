package cubic2quad

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(10, -4)), Pt(5, -2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointLerpEnds(t *testing.T) {
	p := Pt(0.1, 0.7)
	o := Pt(1e10, -3.3)
	if got := p.Lerp(o, 0); got != p {
		t.Errorf("got %v, want %v", got, p)
	}
	if got := p.Lerp(o, 1); got != o {
		t.Errorf("got %v, want %v", got, o)
	}
}

func TestVecProducts(t *testing.T) {
	a := Vec(1, 2)
	b := Vec(3, -4)
	if got := a.Dot(b); got != -5 {
		t.Errorf("got dot product %v, want -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("got cross product %v, want -10", got)
	}
	if got := b.Hypot(); got != 5 {
		t.Errorf("got magnitude %v, want 5", got)
	}
}
