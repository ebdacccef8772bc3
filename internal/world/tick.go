package world

import (
	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/core/event"
	coresys "github.com/pie2d/sim/internal/core/system"
	"github.com/pie2d/sim/internal/physics"
	"github.com/pie2d/sim/internal/vecmath"
	"go.uber.org/zap"
)

// Tick advances the simulation by one timestep:
// integrate → commit → pairwise collisions → wall collisions → publish.
func (w *World) Tick() {
	w.runner.Tick(w.timestep)
}

func (w *World) registerSystems() {
	w.runner.Register(&integrateSystem{w: w})
	w.runner.Register(&commitSystem{w: w})
	w.runner.Register(&collideSystem{w: w, grid: newCellGrid()})
	w.runner.Register(&boundarySystem{w: w})
	w.runner.Register(&publishSystem{w: w})
}

// tickNumber is the number of the tick in progress.
func (w *World) tickNumber() uint64 { return w.ticks + 1 }

// integrateSystem stages every body's next kinematics from the pre-tick
// state of all bodies. Nothing is mutated, so iteration order is irrelevant.
type integrateSystem struct{ w *World }

func (s *integrateSystem) Phase() coresys.Phase { return coresys.PhaseIntegrate }

func (s *integrateSystem) Update(dt float64) {
	w := s.w
	clear(w.staged)
	all := w.live()
	for i, b := range all {
		w.staged[w.order[i]] = b.Integrate(all, dt, w.law)
	}
}

// commitSystem applies the staged kinematics.
type commitSystem struct{ w *World }

func (s *commitSystem) Phase() coresys.Phase { return coresys.PhaseCommit }

func (s *commitSystem) Update(_ float64) {
	w := s.w
	for h, k := range w.staged {
		if b, ok := w.bodies.Get(h); ok {
			b.Apply(k)
		}
	}
	clear(w.staged)
}

// collideSystem checks every ordered pair, so each pair is visited twice with
// roles swapped. Responses are computed from per-pair snapshots and written
// back immediately; once resolved, a pair separates and the swapped visit
// detects nothing. From gridMinBodies bodies on, pairs in non-adjacent grid
// cells are skipped: they cannot overlap, and positions are fixed during this
// phase, so the visiting order and outcome are unchanged.
type collideSystem struct {
	w    *World
	grid *cellGrid
}

func (s *collideSystem) Phase() coresys.Phase { return coresys.PhaseCollide }

func (s *collideSystem) Update(_ float64) {
	w := s.w
	w.collisions = 0
	all := w.live()
	n := len(all)
	if n >= w.gridMin && s.grid.rebuild(all) {
		for i := 0; i < n; i++ {
			for _, j := range s.grid.neighbours(i) {
				s.visit(all[i], all[j])
			}
		}
		return
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				s.visit(all[i], all[j])
			}
		}
	}
}

func (s *collideSystem) visit(a, b *body.Body) {
	sa, sb := physics.SnapshotOf(a), physics.SnapshotOf(b)
	if !physics.Detect(sa, sb) {
		return
	}
	va, vb := physics.Resolve(sa, sb)
	a.SetVelocity(va)
	b.SetVelocity(vb)

	w := s.w
	w.collisions++
	event.Emit(w.bus, event.Collision{Tick: w.tickNumber(), A: a.ID(), B: b.ID()})
	w.log.Debug("collision",
		zap.Uint64("a", uint64(a.ID())),
		zap.Uint64("b", uint64(b.ID())),
	)
}

// boundarySystem bounces bodies off each wall in turn. Each wall is tested
// against the state left by the previous one, so corners bounce twice.
type boundarySystem struct{ w *World }

func (s *boundarySystem) Phase() coresys.Phase { return coresys.PhaseBoundary }

func (s *boundarySystem) Update(_ float64) {
	w := s.w
	w.wallBounces = 0
	for i, h := range w.order {
		b, ok := w.bodies.Get(h)
		if !ok {
			continue
		}
		for _, wall := range physics.Walls {
			v, bounced := w.bounds.ResolveWall(physics.SnapshotOf(b), wall)
			if !bounced {
				continue
			}
			w.setVelocity(i, v)
			w.wallBounces++
			event.Emit(w.bus, event.WallBounce{Tick: w.tickNumber(), ID: b.ID(), Wall: wall.String()})
		}
	}
}

// publishSystem closes the tick: counts it and makes its events visible.
type publishSystem struct{ w *World }

func (s *publishSystem) Phase() coresys.Phase { return coresys.PhasePublish }

func (s *publishSystem) Update(_ float64) {
	s.w.ticks++
	s.w.bus.Publish()
}

// setVelocity writes through the arena by order index.
func (w *World) setVelocity(i int, v vecmath.Vec2) {
	if b, ok := w.bodies.Get(w.order[i]); ok {
		b.SetVelocity(v)
	}
}
