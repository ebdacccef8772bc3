package physics

import "github.com/pie2d/sim/internal/vecmath"

// Wall identifies one of the four world boundaries.
type Wall uint8

const (
	WallWest Wall = iota
	WallEast
	WallSouth
	WallNorth
)

// Walls lists every wall in test order.
var Walls = [...]Wall{WallWest, WallEast, WallSouth, WallNorth}

func (w Wall) String() string {
	switch w {
	case WallWest:
		return "west"
	case WallEast:
		return "east"
	case WallSouth:
		return "south"
	case WallNorth:
		return "north"
	}
	return "unknown"
}

// Normal is the unit vector pointing from the wall into the world.
func (w Wall) Normal() vecmath.Vec2 {
	switch w {
	case WallWest:
		return vecmath.Vec2{X: 1}
	case WallEast:
		return vecmath.Vec2{X: -1}
	case WallSouth:
		return vecmath.Vec2{Y: 1}
	default:
		return vecmath.Vec2{Y: -1}
	}
}

// Bounds is an axis-aligned world extent.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// CenteredBounds returns the extent of a width×height world centered on the origin.
func CenteredBounds(width, height float64) Bounds {
	return Bounds{
		MinX: -width / 2, MaxX: width / 2,
		MinY: -height / 2, MaxY: height / 2,
	}
}

// Hit reports whether the body's edge crosses wall w.
func (bd Bounds) Hit(s Snapshot, w Wall) bool {
	switch w {
	case WallWest:
		return s.Position.X-s.Radius < bd.MinX
	case WallEast:
		return s.Position.X+s.Radius > bd.MaxX
	case WallSouth:
		return s.Position.Y-s.Radius < bd.MinY
	case WallNorth:
		return s.Position.Y+s.Radius > bd.MaxY
	}
	return false
}

// Mirror returns the reflected twin of s across wall w: same material,
// position mirrored across the wall line, perpendicular velocity negated.
// The twin is a plain value and is never registered anywhere.
func (bd Bounds) Mirror(s Snapshot, w Wall) Snapshot {
	m := s
	switch w {
	case WallWest:
		m.Position.X = 2*bd.MinX - s.Position.X
		m.Velocity.X = -s.Velocity.X
	case WallEast:
		m.Position.X = 2*bd.MaxX - s.Position.X
		m.Velocity.X = -s.Velocity.X
	case WallSouth:
		m.Position.Y = 2*bd.MinY - s.Position.Y
		m.Velocity.Y = -s.Velocity.Y
	case WallNorth:
		m.Position.Y = 2*bd.MaxY - s.Position.Y
		m.Velocity.Y = -s.Velocity.Y
	}
	return m
}

// ResolveWall bounces s off wall w by resolving it against its mirror twin.
// Nothing happens unless the edge crosses the wall and the body is moving
// outward. The line of centers between a body and its twin is always the
// wall normal, so the normal is used directly; this stays defined when the
// center sits exactly on the wall.
func (bd Bounds) ResolveWall(s Snapshot, w Wall) (vecmath.Vec2, bool) {
	if !bd.Hit(s, w) {
		return s.Velocity, false
	}
	twin := bd.Mirror(s, w)
	n := w.Normal()
	if s.Velocity.Sub(twin.Velocity).Dot(n) >= 0 {
		return s.Velocity, false
	}
	v, _ := ResolveAlong(s, twin, n)
	return v, true
}
