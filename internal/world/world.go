package world

import (
	"errors"
	"fmt"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/core/arena"
	"github.com/pie2d/sim/internal/core/event"
	coresys "github.com/pie2d/sim/internal/core/system"
	"github.com/pie2d/sim/internal/physics"
	"go.uber.org/zap"
)

const (
	DefaultWidth    = 640.0
	DefaultHeight   = 480.0
	DefaultTimestep = 1.0 / 60.0
)

var (
	ErrBodyNotFound    = errors.New("body not found")
	ErrIndexOutOfRange = errors.New("body index out of range")
	ErrInvalidTimestep = errors.New("timestep must be positive")
	ErrInvalidExtent   = errors.New("world extent must be positive")
	ErrNilBody         = errors.New("nil body")
)

// World owns every body, their identities, and the tick pipeline. The origin
// is the world center; walls sit at ±width/2 and ±height/2.
//
// Single-goroutine access only. Registry mutations from inside a tick are not
// supported; subscribe to events and mutate from DispatchEvents instead.
type World struct {
	width    float64
	height   float64
	bounds   physics.Bounds
	timestep float64
	law      body.ForceLaw
	log      *zap.Logger

	bodies  *arena.Arena[body.Body]
	order   []arena.Handle           // insertion order, compacted on removal
	idIndex map[body.ID]arena.Handle // rebuilt in full on every mutation
	nextID  body.ID

	runner *coresys.Runner
	bus    *event.Bus
	staged map[arena.Handle]body.Kinematics

	gridMin     int // body count from which collisions use the cell grid
	ticks       uint64
	collisions  int
	wallBounces int
}

// New returns a 640×480 world with the default timestep and plain gravity.
func New(log *zap.Logger) *World {
	w, _ := NewSized(DefaultWidth, DefaultHeight, log)
	return w
}

// NewSized returns a world with an explicit extent.
func NewSized(width, height float64, log *zap.Logger) (*World, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("new world %vx%v: %w", width, height, ErrInvalidExtent)
	}
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		width:    width,
		height:   height,
		bounds:   physics.CenteredBounds(width, height),
		timestep: DefaultTimestep,
		law:      physics.NewGravity(),
		log:      log,
		bodies:   arena.New[body.Body](),
		order:    make([]arena.Handle, 0, 16),
		idIndex:  make(map[body.ID]arena.Handle, 16),
		runner:   coresys.NewRunner(),
		bus:      event.NewBus(),
		staged:   make(map[arena.Handle]body.Kinematics, 16),
		gridMin:  gridMinBodies,
	}
	w.registerSystems()
	w.log.Debug("world created",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int("systems", w.runner.Len()),
	)
	return w, nil
}

func (w *World) Width() float64          { return w.width }
func (w *World) Height() float64         { return w.height }
func (w *World) Bounds() physics.Bounds  { return w.bounds }
func (w *World) Timestep() float64       { return w.timestep }
func (w *World) Ticks() uint64           { return w.ticks }
func (w *World) Events() *event.Bus      { return w.bus }
func (w *World) ForceLaw() body.ForceLaw { return w.law }
func (w *World) Len() int                { return len(w.order) }

// SetTimestep rejects non-positive values, keeping the previous Δt.
func (w *World) SetTimestep(dt float64) error {
	if !(dt > 0) {
		w.log.Warn("rejected non-positive timestep", zap.Float64("value", dt))
		return fmt.Errorf("set timestep %v: %w", dt, ErrInvalidTimestep)
	}
	w.timestep = dt
	return nil
}

// SetForceLaw replaces the pairwise force law. nil means no forces.
func (w *World) SetForceLaw(law body.ForceLaw) {
	if law == nil {
		law = physics.Inert{}
	}
	w.law = law
}

// DispatchEvents delivers the events published by the last tick to
// subscribers. Call it between ticks.
func (w *World) DispatchEvents() {
	w.bus.Dispatch()
}
