package physics

import (
	"math"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/vecmath"
)

// Snapshot is an immutable copy of the state a collision needs. Detection and
// resolution read snapshots only; the caller applies the returned velocities.
type Snapshot struct {
	Position    vecmath.Vec2
	Velocity    vecmath.Vec2
	Mass        float64
	Radius      float64
	Restitution float64
}

func SnapshotOf(b *body.Body) Snapshot {
	return Snapshot{
		Position:    b.Position(),
		Velocity:    b.Velocity(),
		Mass:        b.Mass(),
		Radius:      b.Radius(),
		Restitution: b.Restitution(),
	}
}

// Detect reports whether a and b are overlapping and approaching each other.
// Coincident centers have no collision direction and never collide.
func Detect(a, b Snapshot) bool {
	sep := b.Position.Sub(a.Position)
	d2 := sep.MagnitudeSq()
	if d2 == 0 {
		return false
	}
	reach := a.Radius + b.Radius
	if d2 >= reach*reach {
		return false
	}
	return a.Velocity.Sub(b.Velocity).Dot(sep) > 0
}

// Resolve returns the post-collision velocities of a and b along their line
// of centers. Coincident centers leave both velocities unchanged.
func Resolve(a, b Snapshot) (va, vb vecmath.Vec2) {
	n := a.Position.Sub(b.Position).Normalize()
	if n == vecmath.Zero {
		return a.Velocity, b.Velocity
	}
	return ResolveAlong(a, b, n)
}

// ResolveAlong resolves a collision whose unit normal n points from b to a.
//
// The applied velocity interpolates between the elastic response (momentum
// and kinetic energy conserved along n) and the perfectly inelastic one
// (common mass-weighted velocity) by e = min(a.Restitution, b.Restitution):
//
//	v = e*elastic + (1-e)*inelastic
func ResolveAlong(a, b Snapshot, n vecmath.Vec2) (va, vb vecmath.Vec2) {
	total := a.Mass + b.Mass
	closing := a.Velocity.Sub(b.Velocity).Dot(n)

	elasticA := a.Velocity.Sub(n.Scale(2 * b.Mass / total * closing))
	elasticB := b.Velocity.Add(n.Scale(2 * a.Mass / total * closing))

	inelastic := a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass)).Scale(1 / total)

	e := math.Min(a.Restitution, b.Restitution)
	return vecmath.Lerp(elasticA, inelastic, e), vecmath.Lerp(elasticB, inelastic, e)
}
