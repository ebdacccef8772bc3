package data

import (
	"fmt"
	"math"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/physics"
	"github.com/pie2d/sim/internal/world"
	"go.uber.org/zap"
)

// AssignOrbitalVelocities gives every body after the first that is at rest a
// circular-orbit velocity around body 0: v = sqrt(G·M/r), perpendicular to
// the radius vector.
func AssignOrbitalVelocities(bodies []BodySpec, g float64) {
	if len(bodies) == 0 {
		return
	}
	central := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel != [2]float64{} {
			continue
		}
		dx := bodies[i].Pos[0] - central.Pos[0]
		dy := bodies[i].Pos[1] - central.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		v := math.Sqrt(g * central.mass() / r)
		bodies[i].Vel = [2]float64{-dy / r * v, dx / r * v}
	}
}

// Populate registers every body of s into w and returns the assigned ids in
// scenario order. A non-zero scenario timestep overrides the world's; an
// invalid one fails before any body is added. Auto orbit needs gravity and is
// skipped with a warning under any other force law.
func Populate(w *world.World, s *Scenario, log *zap.Logger) ([]body.ID, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if s.Timestep != 0 {
		if err := w.SetTimestep(s.Timestep); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}

	specs := s.Bodies
	if s.AutoOrbit {
		if grav, ok := w.ForceLaw().(physics.Gravity); ok {
			specs = append([]BodySpec(nil), s.Bodies...)
			AssignOrbitalVelocities(specs, grav.Strength)
		} else {
			log.Warn("auto_orbit ignored without gravity",
				zap.String("scenario", s.Name),
				zap.String("law", fmt.Sprintf("%T", w.ForceLaw())),
			)
		}
	}

	ids := make([]body.ID, 0, len(specs))
	for i, spec := range specs {
		b, err := spec.Build(log)
		if err != nil {
			return ids, fmt.Errorf("scenario %q body %d: %w", s.Name, i, err)
		}
		id, err := w.AddBody(b)
		if err != nil {
			return ids, fmt.Errorf("scenario %q body %d: %w", s.Name, i, err)
		}
		ids = append(ids, id)
	}
	log.Info("scenario loaded",
		zap.String("name", s.Name),
		zap.Int("bodies", len(ids)),
	)
	return ids, nil
}
