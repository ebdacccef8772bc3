package physics

import (
	"math"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/vecmath"
)

// DefaultMinSeparation is the separation below which two bodies are treated
// as coincident and exert no force on each other.
const DefaultMinSeparation = 1e-9

// Gravity is the pairwise inverse-square attraction
//
//	a = (other - source) * G * m_other / |other - source|³
//
// Strength is G (1 reproduces the unit-less law). Softening, when non-zero,
// replaces |d|² with |d|² + Softening² (Plummer softening).
type Gravity struct {
	Strength      float64
	Softening     float64
	MinSeparation float64
}

// NewGravity returns the plain law with the default singularity guard.
func NewGravity() Gravity {
	return Gravity{Strength: 1, MinSeparation: DefaultMinSeparation}
}

// AccelerationOn returns the acceleration other imparts on source. Coincident
// bodies (separation at or below MinSeparation) contribute nothing and ok is false.
func (g Gravity) AccelerationOn(source, other *body.Body) (vecmath.Vec2, bool) {
	d := other.Position().Sub(source.Position())
	r2 := d.MagnitudeSq()
	minSep := g.MinSeparation
	if minSep <= 0 {
		minSep = DefaultMinSeparation
	}
	if r2 <= minSep*minSep {
		return vecmath.Zero, false
	}
	r2 += g.Softening * g.Softening
	r := math.Sqrt(r2)
	return d.Scale(g.Strength * other.Mass() / (r2 * r)), true
}

// Inert exerts no force. Bodies move in straight lines between collisions.
type Inert struct{}

func (Inert) AccelerationOn(_, _ *body.Body) (vecmath.Vec2, bool) {
	return vecmath.Zero, false
}

// Distance is the Euclidean distance between two points.
func Distance(a, b vecmath.Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceBetween is the distance between two bodies' centers. Symmetric and
// non-negative.
func DistanceBetween(x, y *body.Body) float64 {
	return Distance(x.Position(), y.Position())
}
