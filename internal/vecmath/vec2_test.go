package vecmath

import (
	"math"
	"testing"
)

func TestVectorOps(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{-1, 2}

	if got := Add(a, b); got != (Vec2{2, 6}) {
		t.Errorf("Add = %v, want {2 6}", got)
	}
	if got := Sub(a, b); got != (Vec2{4, 2}) {
		t.Errorf("Sub = %v, want {4 2}", got)
	}
	if got := Dot(a, b); got != 5 {
		t.Errorf("Dot = %v, want 5", got)
	}
	if got := Scale(a, -2); got != (Vec2{-6, -8}) {
		t.Errorf("Scale = %v, want {-6 -8}", got)
	}
	if got := Magnitude(a); got != 5 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
	if got := MagnitudeSq(a); got != 25 {
		t.Errorf("MagnitudeSq = %v, want 25", got)
	}
}

func TestNormalizeZeroSafe(t *testing.T) {
	if got := Zero.Normalize(); got != Zero {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
	n := Vec2{0, -7}.Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-12 || n.Y != -1 {
		t.Errorf("Normalize = %v, want {0 -1}", n)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Vec2{1, 1}
	b := Vec2{5, -3}
	if got := Lerp(a, b, 1); got != a {
		t.Errorf("Lerp(t=1) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 0); got != b {
		t.Errorf("Lerp(t=0) = %v, want %v", got, b)
	}
	if got := Lerp(a, b, 0.5); got != (Vec2{3, -1}) {
		t.Errorf("Lerp(t=0.5) = %v, want {3 -1}", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec2{1, 2}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec2{math.Inf(1), 0}).IsFinite() || (Vec2{0, math.NaN()}).IsFinite() {
		t.Error("non-finite vector reported finite")
	}
}
