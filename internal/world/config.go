package world

import (
	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/config"
	"github.com/pie2d/sim/internal/physics"
	"go.uber.org/zap"
)

// FromConfig builds a world from the [world] and [physics] sections.
func FromConfig(cfg *config.Config, log *zap.Logger) (*World, error) {
	w, err := NewSized(cfg.World.Width, cfg.World.Height, log)
	if err != nil {
		return nil, err
	}
	if err := w.SetTimestep(cfg.World.Timestep); err != nil {
		return nil, err
	}
	w.SetForceLaw(ForceLawFromConfig(cfg.Physics))
	return w, nil
}

// ForceLawFromConfig selects the pairwise force law.
func ForceLawFromConfig(pc config.PhysicsConfig) body.ForceLaw {
	if !pc.Gravity {
		return physics.Inert{}
	}
	return physics.Gravity{
		Strength:      pc.Strength,
		Softening:     pc.Softening,
		MinSeparation: pc.MinSeparation,
	}
}
