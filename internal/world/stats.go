package world

import "github.com/pie2d/sim/internal/vecmath"

// Stats is a diagnostic summary of the world after the last tick.
type Stats struct {
	Bodies        int
	Ticks         uint64
	KineticEnergy float64
	Momentum      vecmath.Vec2
	Collisions    int // resolved body pairs in the last tick
	WallBounces   int // wall resolutions in the last tick
}

func (w *World) Stats() Stats {
	st := Stats{
		Bodies:      w.bodies.Len(),
		Ticks:       w.ticks,
		Collisions:  w.collisions,
		WallBounces: w.wallBounces,
	}
	for _, b := range w.live() {
		st.KineticEnergy += b.KineticEnergy()
		st.Momentum = st.Momentum.Add(b.Momentum())
	}
	return st
}
