package physics

import (
	"math"
	"testing"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/vecmath"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func nearVec(a, b vecmath.Vec2) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func at(x, y float64) *body.Body {
	b := body.New(nil)
	b.SetPosition(vecmath.Vec2{X: x, Y: y})
	return b
}

func TestDistanceSymmetric(t *testing.T) {
	points := [][2]float64{{0, 0}, {0, 1}, {0, 3}, {2, 5}, {-4, 7.5}, {3, -3}, {1e3, -2e3}}
	for _, p := range points {
		for _, q := range points {
			x, y := at(p[0], p[1]), at(q[0], q[1])
			if DistanceBetween(x, y) != DistanceBetween(y, x) {
				t.Errorf("distance(%v,%v) not symmetric", p, q)
			}
			if DistanceBetween(x, y) < 0 {
				t.Errorf("distance(%v,%v) negative", p, q)
			}
		}
		x := at(p[0], p[1])
		if DistanceBetween(x, x) != 0 {
			t.Errorf("distance(%v,%v) = %v, want 0", p, p, DistanceBetween(x, x))
		}
	}
}

// A formula that multiplies un-subtracted y coordinates gives sqrt(6) here.
func TestDistanceUsesSquaredDifference(t *testing.T) {
	tests := []struct {
		x, y [2]float64
		want float64
	}{
		{[2]float64{0, 1}, [2]float64{0, 3}, 2},
		{[2]float64{0, 2}, [2]float64{0, 5}, 3},
		{[2]float64{1, 1}, [2]float64{4, 5}, 5},
		{[2]float64{-1, -2}, [2]float64{2, 2}, 5},
	}
	for _, tt := range tests {
		got := DistanceBetween(at(tt.x[0], tt.x[1]), at(tt.y[0], tt.y[1]))
		if !near(got, tt.want) {
			t.Errorf("distance(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGravityInverseSquare(t *testing.T) {
	g := NewGravity()
	src := at(0, 0)
	other := at(2, 0)
	_ = other.SetMass(8)

	a, ok := g.AccelerationOn(src, other)
	if !ok {
		t.Fatal("expected a contribution")
	}
	// 8 / 2² toward +x.
	if !nearVec(a, vecmath.Vec2{X: 2}) {
		t.Errorf("acceleration = %v, want {2 0}", a)
	}

	far := at(0, -4)
	_ = far.SetMass(8)
	a, _ = g.AccelerationOn(src, far)
	if !nearVec(a, vecmath.Vec2{Y: -0.5}) {
		t.Errorf("acceleration = %v, want {0 -0.5}", a)
	}
}

func TestGravityCoincidentSkipped(t *testing.T) {
	g := NewGravity()
	a, ok := g.AccelerationOn(at(1, 1), at(1, 1))
	if ok || a != vecmath.Zero {
		t.Errorf("coincident bodies gave %v ok=%v", a, ok)
	}
	if !a.IsFinite() {
		t.Error("coincident acceleration not finite")
	}
}

func TestGravitySoftening(t *testing.T) {
	g := Gravity{Strength: 1, Softening: 1}
	other := at(1, 0)
	a, ok := g.AccelerationOn(at(0, 0), other)
	// d=1, r²=1+1 -> 1 / 2^1.5
	if !ok || !near(a.X, 1/math.Pow(2, 1.5)) {
		t.Errorf("softened acceleration = %v", a)
	}
}

func TestInertModel(t *testing.T) {
	if a, ok := (Inert{}).AccelerationOn(at(0, 0), at(3, 0)); ok || a != vecmath.Zero {
		t.Errorf("inert gave %v ok=%v", a, ok)
	}
}

func snap(px, py, vx, vy, m, r, e float64) Snapshot {
	return Snapshot{
		Position:    vecmath.Vec2{X: px, Y: py},
		Velocity:    vecmath.Vec2{X: vx, Y: vy},
		Mass:        m,
		Radius:      r,
		Restitution: e,
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		a, b Snapshot
		want bool
	}{
		{"approaching overlap", snap(0, 0, 1, 0, 1, 1, 1), snap(1.5, 0, -1, 0, 1, 1, 1), true},
		{"separating overlap", snap(0, 0, -1, 0, 1, 1, 1), snap(1.5, 0, 1, 0, 1, 1, 1), false},
		{"apart", snap(0, 0, 1, 0, 1, 1, 1), snap(3, 0, -1, 0, 1, 1, 1), false},
		{"touching", snap(0, 0, 1, 0, 1, 1, 1), snap(2, 0, -1, 0, 1, 1, 1), false},
		{"coincident", snap(1, 1, 1, 0, 1, 1, 1), snap(1, 1, -1, 0, 1, 1, 1), false},
		{"parallel", snap(0, 0, 0, 1, 1, 1, 1), snap(1, 0, 0, 1, 1, 1, 1), false},
	}
	for _, tt := range tests {
		if got := Detect(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Detect = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveElasticHeadOn(t *testing.T) {
	a := snap(0, 0, 2, 0, 1, 1, 1)
	b := snap(1.5, 0, -2, 0, 1, 1, 1)
	va, vb := Resolve(a, b)

	if !nearVec(va, vecmath.Vec2{X: -2}) || !nearVec(vb, vecmath.Vec2{X: 2}) {
		t.Errorf("velocities = %v %v, want swapped", va, vb)
	}
	before := a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass))
	after := va.Scale(a.Mass).Add(vb.Scale(b.Mass))
	if !nearVec(before, after) {
		t.Errorf("momentum %v -> %v", before, after)
	}
	keBefore := 0.5*a.Mass*a.Velocity.MagnitudeSq() + 0.5*b.Mass*b.Velocity.MagnitudeSq()
	keAfter := 0.5*a.Mass*va.MagnitudeSq() + 0.5*b.Mass*vb.MagnitudeSq()
	if !near(keBefore, keAfter) {
		t.Errorf("kinetic energy %v -> %v", keBefore, keAfter)
	}
}

func TestResolveElasticUnequalMass(t *testing.T) {
	a := snap(0, 0, 3, 1, 2, 1, 1)
	b := snap(1, 1, -1, 0, 5, 1, 1)
	va, vb := Resolve(a, b)

	before := a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass))
	after := va.Scale(a.Mass).Add(vb.Scale(b.Mass))
	if !nearVec(before, after) {
		t.Errorf("momentum %v -> %v", before, after)
	}
	keBefore := 0.5*a.Mass*a.Velocity.MagnitudeSq() + 0.5*b.Mass*b.Velocity.MagnitudeSq()
	keAfter := 0.5*a.Mass*va.MagnitudeSq() + 0.5*b.Mass*vb.MagnitudeSq()
	if !near(keBefore, keAfter) {
		t.Errorf("kinetic energy %v -> %v", keBefore, keAfter)
	}
}

func TestResolveInelasticMerge(t *testing.T) {
	a := snap(0, 0, 4, 1, 1, 1, 0)
	b := snap(1, 0, -2, 0, 3, 1, 1)
	va, vb := Resolve(a, b)

	want := vecmath.Vec2{X: (4*1 + -2*3) / 4.0, Y: 1.0 / 4}
	if !nearVec(va, want) || !nearVec(vb, want) {
		t.Errorf("velocities = %v %v, want both %v", va, vb, want)
	}
}

func TestResolveUsesMinimumRestitution(t *testing.T) {
	a := snap(0, 0, 1, 0, 1, 1, 0.5)
	b := snap(1, 0, -1, 0, 1, 1, 0.9)
	va, vb := Resolve(a, b)
	// elastic swaps to -1/+1, inelastic is 0: interpolate at 0.5.
	if !nearVec(va, vecmath.Vec2{X: -0.5}) || !nearVec(vb, vecmath.Vec2{X: 0.5}) {
		t.Errorf("velocities = %v %v", va, vb)
	}
}

func TestResolveCoincidentUnchanged(t *testing.T) {
	a := snap(1, 1, 1, 0, 1, 1, 1)
	b := snap(1, 1, -1, 0, 1, 1, 1)
	va, vb := Resolve(a, b)
	if va != a.Velocity || vb != b.Velocity {
		t.Errorf("coincident resolve changed velocities: %v %v", va, vb)
	}
}

func TestResolveIdempotentOnceSeparating(t *testing.T) {
	a := snap(0, 0, 2, 0, 1, 1, 1)
	b := snap(1.5, 0, -2, 0, 1, 1, 1)
	va, vb := Resolve(a, b)
	a.Velocity, b.Velocity = va, vb
	if Detect(b, a) || Detect(a, b) {
		t.Error("pair still detected after resolution")
	}
}
