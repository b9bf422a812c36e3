package geometry

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("sub: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("dot: got %f", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("cross: got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("expected unit length, got %f", v.Length())
	}

	// Zero vector must not produce NaN.
	z := Vec3{}.Normalize()
	if z != (Vec3{}) {
		t.Errorf("expected zero vector, got %v", z)
	}
}

func TestCyl(t *testing.T) {
	p := cyl(math.Pi/2, 2, 1)
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-2) > 1e-12 || p.Z != 1 {
		t.Errorf("cyl at pi/2: got %v", p)
	}
}
