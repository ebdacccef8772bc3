package data

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// GenerateOptions controls Generate. Zero fields take the defaults below.
type GenerateOptions struct {
	Count       int
	Seed        int64
	Width       float64 // world extent; bodies are placed inside ±Width/2
	Height      float64
	MinRadius   float64
	MaxRadius   float64
	Speed       float64 // peak initial speed
	Restitution float64 // 0 is a valid (perfectly inelastic) value
	NoiseScale  float64 // world units per noise cell
}

const (
	defaultMinRadius  = 4
	defaultMaxRadius  = 12
	defaultSpeed      = 40
	defaultNoiseScale = 120
	placementAttempts = 200
)

func (o *GenerateOptions) fill() {
	if o.MinRadius <= 0 {
		o.MinRadius = defaultMinRadius
	}
	if o.MaxRadius < o.MinRadius {
		o.MaxRadius = math.Max(defaultMaxRadius, o.MinRadius)
	}
	if o.Speed <= 0 {
		o.Speed = defaultSpeed
	}
	if o.NoiseScale <= 0 {
		o.NoiseScale = defaultNoiseScale
	}
}

// Generate places up to opts.Count non-overlapping bodies inside the world
// extent. Headings follow a Perlin noise field so neighbours drift together;
// mass grows with area. The same options always produce the same scenario.
// Fewer bodies are returned when the extent is too crowded to place them all.
func Generate(opts GenerateOptions) *Scenario {
	opts.fill()
	rng := rand.New(rand.NewSource(opts.Seed))
	noise := perlin.NewPerlin(2, 2, 3, opts.Seed)

	s := &Scenario{Name: fmt.Sprintf("generated-%d", opts.Seed)}
	restitution := opts.Restitution
	for len(s.Bodies) < opts.Count {
		spec, ok := place(rng, opts, s.Bodies)
		if !ok {
			break
		}
		angle := (noise.Noise2D(spec.Pos[0]/opts.NoiseScale, spec.Pos[1]/opts.NoiseScale) + 1) * math.Pi
		speed := opts.Speed * (0.5 + 0.5*rng.Float64())
		spec.Vel = [2]float64{math.Cos(angle) * speed, math.Sin(angle) * speed}

		r := *spec.Radius
		mass := r * r
		spec.Mass = &mass
		spec.Restitution = &restitution
		spec.Color = &ColorSpec{Color: HueColor(angle / (2 * math.Pi))}
		s.Bodies = append(s.Bodies, spec)
	}
	return s
}

// place picks a radius and a position fully inside the extent that does not
// overlap any already placed body.
func place(rng *rand.Rand, opts GenerateOptions, placed []BodySpec) (BodySpec, bool) {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		r := opts.MinRadius + rng.Float64()*(opts.MaxRadius-opts.MinRadius)
		spanX := opts.Width - 2*r
		spanY := opts.Height - 2*r
		if spanX <= 0 || spanY <= 0 {
			continue
		}
		x := -opts.Width/2 + r + rng.Float64()*spanX
		y := -opts.Height/2 + r + rng.Float64()*spanY
		if overlapsAny(x, y, r, placed) {
			continue
		}
		return BodySpec{Pos: [2]float64{x, y}, Radius: &r}, true
	}
	return BodySpec{}, false
}

func overlapsAny(x, y, r float64, placed []BodySpec) bool {
	for _, p := range placed {
		dx, dy := x-p.Pos[0], y-p.Pos[1]
		reach := r + *p.Radius
		if dx*dx+dy*dy < reach*reach {
			return true
		}
	}
	return false
}
