package physics

import (
	"testing"

	"github.com/pie2d/sim/internal/vecmath"
)

func TestWallHit(t *testing.T) {
	bd := CenteredBounds(20, 10)
	tests := []struct {
		name string
		s    Snapshot
		wall Wall
		want bool
	}{
		{"west edge across", snap(-9.5, 0, 0, 0, 1, 1, 1), WallWest, true},
		{"west inside", snap(-8.5, 0, 0, 0, 1, 1, 1), WallWest, false},
		{"east edge across", snap(9.5, 0, 0, 0, 1, 1, 1), WallEast, true},
		{"south edge across", snap(0, -4.5, 0, 0, 1, 1, 1), WallSouth, true},
		{"north edge across", snap(0, 4.5, 0, 0, 1, 1, 1), WallNorth, true},
		{"north inside", snap(0, 3, 0, 0, 1, 1, 1), WallNorth, false},
	}
	for _, tt := range tests {
		if got := bd.Hit(tt.s, tt.wall); got != tt.want {
			t.Errorf("%s: Hit = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMirror(t *testing.T) {
	bd := CenteredBounds(20, 10)
	s := snap(-9.5, 2, -3, 1, 2, 1, 0.7)

	m := bd.Mirror(s, WallWest)
	if m.Position != (vecmath.Vec2{X: -10.5, Y: 2}) {
		t.Errorf("west mirror position = %v", m.Position)
	}
	if m.Velocity != (vecmath.Vec2{X: 3, Y: 1}) {
		t.Errorf("west mirror velocity = %v", m.Velocity)
	}
	if m.Mass != s.Mass || m.Radius != s.Radius || m.Restitution != s.Restitution {
		t.Error("mirror changed material")
	}

	m = bd.Mirror(snap(1, 4.5, 0, 2, 1, 1, 1), WallNorth)
	if m.Position != (vecmath.Vec2{X: 1, Y: 5.5}) || m.Velocity != (vecmath.Vec2{X: 0, Y: -2}) {
		t.Errorf("north mirror = %+v", m)
	}
}

func TestResolveWallElastic(t *testing.T) {
	bd := CenteredBounds(20, 10)
	v, ok := bd.ResolveWall(snap(-9.5, 0, -3, 1, 1, 1, 1), WallWest)
	if !ok {
		t.Fatal("expected a bounce")
	}
	if !nearVec(v, vecmath.Vec2{X: 3, Y: 1}) {
		t.Errorf("velocity = %v, want {3 1}", v)
	}
}

func TestResolveWallInelastic(t *testing.T) {
	bd := CenteredBounds(20, 10)
	v, ok := bd.ResolveWall(snap(9.5, 0, 3, 1, 1, 1, 0), WallEast)
	if !ok {
		t.Fatal("expected a bounce")
	}
	if !nearVec(v, vecmath.Vec2{X: 0, Y: 1}) {
		t.Errorf("velocity = %v, want {0 1}", v)
	}
}

func TestResolveWallMovingInward(t *testing.T) {
	bd := CenteredBounds(20, 10)
	s := snap(-9.5, 0, 2, 0, 1, 1, 1)
	if v, ok := bd.ResolveWall(s, WallWest); ok || v != s.Velocity {
		t.Errorf("inward body bounced: %v", v)
	}
}

func TestResolveWallCenterOnWall(t *testing.T) {
	bd := CenteredBounds(20, 10)
	v, ok := bd.ResolveWall(snap(0, -5, 0, -4, 1, 1, 1), WallSouth)
	if !ok || !nearVec(v, vecmath.Vec2{Y: 4}) {
		t.Errorf("velocity = %v ok=%v, want {0 4}", v, ok)
	}
}
