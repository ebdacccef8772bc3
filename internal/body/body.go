package body

import (
	"errors"

	"github.com/pie2d/sim/internal/vecmath"
	"go.uber.org/zap"
)

// ID is a body's identity inside one World. Zero means "not yet registered".
type ID uint64

var (
	ErrInvalidMass   = errors.New("mass must be positive")
	ErrInvalidRadius = errors.New("radius must be positive")
	ErrIDAlreadySet  = errors.New("id already assigned")
	ErrInvalidID     = errors.New("id must be non-zero")
)

// Color is an RGBA color with every channel in [0,1].
type Color struct {
	R, G, B, A float64
}

// White is the default body color.
var White = Color{1, 1, 1, 1}

// Body is a simulated particle. The zero value is not usable; construct with New.
//
// Position and velocity are mutated by the owning World during a tick, or by
// the setters before registration. All other fields are validated on write.
type Body struct {
	id    ID
	idSet bool

	pos vecmath.Vec2
	vel vecmath.Vec2

	mass        float64
	radius      float64
	restitution float64
	color       Color

	log *zap.Logger
}

// New returns a body with default-safe values: unit mass and radius, fully
// elastic, white, at rest at the origin, id unset. A nil logger discards warnings.
func New(log *zap.Logger) *Body {
	if log == nil {
		log = zap.NewNop()
	}
	return &Body{
		mass:        1,
		radius:      1,
		restitution: 1,
		color:       White,
		log:         log,
	}
}

// SetLogger replaces the warning sink. World calls this on its registered copy.
func (b *Body) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	b.log = log
}

func (b *Body) logger() *zap.Logger {
	if b.log == nil {
		return zap.NewNop()
	}
	return b.log
}

// Unregistered returns a copy of b with its identity cleared, ready to be
// registered into a World.
func (b *Body) Unregistered() *Body {
	c := *b
	c.id = 0
	c.idSet = false
	return &c
}

func (b *Body) ID() ID { return b.id }

// HasID reports whether an id has been assigned.
func (b *Body) HasID() bool { return b.idSet }

// SetID assigns the identity exactly once. Later calls are rejected with a
// warning and the original id is kept.
func (b *Body) SetID(id ID) error {
	if id == 0 {
		b.logger().Warn("rejected zero body id")
		return ErrInvalidID
	}
	if b.idSet {
		b.logger().Warn("body id already set",
			zap.Uint64("id", uint64(b.id)),
			zap.Uint64("requested", uint64(id)),
		)
		return ErrIDAlreadySet
	}
	b.id = id
	b.idSet = true
	return nil
}

func (b *Body) Position() vecmath.Vec2 { return b.pos }
func (b *Body) Velocity() vecmath.Vec2 { return b.vel }
func (b *Body) Mass() float64          { return b.mass }
func (b *Body) Radius() float64        { return b.radius }
func (b *Body) Restitution() float64   { return b.restitution }
func (b *Body) Color() Color           { return b.color }

func (b *Body) SetPosition(p vecmath.Vec2) { b.pos = p }
func (b *Body) SetVelocity(v vecmath.Vec2) { b.vel = v }

// SetMass rejects non-positive values, keeping the previous mass.
func (b *Body) SetMass(m float64) error {
	if !(m > 0) {
		b.logger().Warn("rejected non-positive mass",
			zap.Uint64("id", uint64(b.id)),
			zap.Float64("value", m),
		)
		return ErrInvalidMass
	}
	b.mass = m
	return nil
}

// SetRadius rejects non-positive values, keeping the previous radius.
func (b *Body) SetRadius(r float64) error {
	if !(r > 0) {
		b.logger().Warn("rejected non-positive radius",
			zap.Uint64("id", uint64(b.id)),
			zap.Float64("value", r),
		)
		return ErrInvalidRadius
	}
	b.radius = r
	return nil
}

// SetRestitution clamps e into [0,1]: 1 is fully elastic, 0 fully inelastic.
func (b *Body) SetRestitution(e float64) {
	b.restitution = b.clamp("restitution", e)
}

// SetColor clamps each channel into [0,1] independently.
func (b *Body) SetColor(c Color) {
	b.color = Color{
		R: b.clamp("color.r", c.R),
		G: b.clamp("color.g", c.G),
		B: b.clamp("color.b", c.B),
		A: b.clamp("color.a", c.A),
	}
}

func (b *Body) clamp(field string, v float64) float64 {
	var out float64
	switch {
	case v < 0:
		out = 0
	case v > 1:
		out = 1
	case v != v: // NaN
		out = 0
	default:
		return v
	}
	b.logger().Warn("value out of range, clamped",
		zap.Uint64("id", uint64(b.id)),
		zap.String("field", field),
		zap.Float64("value", v),
		zap.Float64("clamped", out),
	)
	return out
}

// Momentum returns mass * velocity.
func (b *Body) Momentum() vecmath.Vec2 {
	return b.vel.Scale(b.mass)
}

// KineticEnergy returns ½·m·|v|².
func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.mass * b.vel.MagnitudeSq()
}
