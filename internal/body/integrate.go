package body

import "github.com/pie2d/sim/internal/vecmath"

// ForceLaw yields the acceleration that other imparts on source.
// ok is false when no contribution applies (e.g. coincident positions).
type ForceLaw interface {
	AccelerationOn(source, other *Body) (acc vecmath.Vec2, ok bool)
}

// Kinematics is a staged position/velocity pair produced by Integrate.
type Kinematics struct {
	Position vecmath.Vec2
	Velocity vecmath.Vec2
}

// Integrate computes one explicit Euler step against every other body without
// mutating anything. Self is skipped by pointer identity, never by index.
//
//	pos' = pos + vel*dt
//	vel' = vel + acc*dt
func (b *Body) Integrate(others []*Body, dt float64, law ForceLaw) Kinematics {
	var acc vecmath.Vec2
	if law != nil {
		for _, o := range others {
			if o == b {
				continue
			}
			if a, ok := law.AccelerationOn(b, o); ok {
				acc = acc.Add(a)
			}
		}
	}
	return Kinematics{
		Position: b.pos.Add(b.vel.Scale(dt)),
		Velocity: b.vel.Add(acc.Scale(dt)),
	}
}

// Apply commits staged kinematics.
func (b *Body) Apply(k Kinematics) {
	b.pos = k.Position
	b.vel = k.Velocity
}
