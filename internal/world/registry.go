package world

import (
	"fmt"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/core/arena"
	"github.com/pie2d/sim/internal/core/event"
	"go.uber.org/zap"
)

// AddBody registers a copy of b under the next unused id and returns that id.
// Ids start at 1 and are never reused. b itself is left untouched.
func (w *World) AddBody(b *body.Body) (body.ID, error) {
	if b == nil {
		return 0, ErrNilBody
	}
	c := b.Unregistered()
	c.SetLogger(w.log)

	w.nextID++
	if err := c.SetID(w.nextID); err != nil {
		return 0, fmt.Errorf("assign id %d: %w", w.nextID, err)
	}

	h := w.bodies.Insert(c)
	w.order = append(w.order, h)
	w.rebuildIndex()

	event.Emit(w.bus, event.BodyAdded{ID: c.ID()})
	w.log.Debug("body added", zap.Uint64("id", uint64(c.ID())), zap.Int("bodies", len(w.order)))
	return c.ID(), nil
}

// RemoveByIndex removes the body at position i and compacts the order. Later
// bodies shift down by one index.
func (w *World) RemoveByIndex(i int) error {
	if i < 0 || i >= len(w.order) {
		w.log.Warn("remove by index out of range", zap.Int("index", i), zap.Int("bodies", len(w.order)))
		return fmt.Errorf("remove index %d: %w", i, ErrIndexOutOfRange)
	}
	h := w.order[i]
	b, _ := w.bodies.Remove(h)

	w.order = append(w.order[:i], w.order[i+1:]...)
	w.rebuildIndex()

	if b != nil {
		event.Emit(w.bus, event.BodyRemoved{ID: b.ID()})
		w.log.Debug("body removed", zap.Uint64("id", uint64(b.ID())), zap.Int("bodies", len(w.order)))
	}
	return nil
}

// RemoveByID removes the body with the given id. An unknown id leaves the
// registry unchanged and returns ErrBodyNotFound.
func (w *World) RemoveByID(id body.ID) error {
	for i, h := range w.order {
		b, ok := w.bodies.Get(h)
		if ok && b.ID() == id {
			return w.RemoveByIndex(i)
		}
	}
	w.log.Warn("cannot remove body, id not found", zap.Uint64("id", uint64(id)))
	return fmt.Errorf("remove id %d: %w", id, ErrBodyNotFound)
}

// GetByIndex returns the body at position i in insertion order. Indices are
// not stable across removals; prefer GetByID.
func (w *World) GetByIndex(i int) (*body.Body, error) {
	if i < 0 || i >= len(w.order) {
		w.log.Warn("get by index out of range", zap.Int("index", i), zap.Int("bodies", len(w.order)))
		return nil, fmt.Errorf("get index %d: %w", i, ErrIndexOutOfRange)
	}
	b, ok := w.bodies.Get(w.order[i])
	if !ok {
		w.log.Warn("stale handle at index", zap.Int("index", i))
		return nil, fmt.Errorf("get index %d: %w", i, ErrBodyNotFound)
	}
	return b, nil
}

// GetByID returns the registered body with the given id.
func (w *World) GetByID(id body.ID) (*body.Body, error) {
	h, ok := w.idIndex[id]
	if !ok {
		w.log.Warn("cannot get body, id not found", zap.Uint64("id", uint64(id)))
		return nil, fmt.Errorf("get id %d: %w", id, ErrBodyNotFound)
	}
	b, ok := w.bodies.Get(h)
	if !ok {
		w.log.Warn("stale handle for id", zap.Uint64("id", uint64(id)))
		return nil, fmt.Errorf("get id %d: %w", id, ErrBodyNotFound)
	}
	return b, nil
}

// ListAll returns a copy of every body in insertion order. Mutating the
// copies does not affect the world.
func (w *World) ListAll() []body.Body {
	out := make([]body.Body, 0, len(w.order))
	for _, h := range w.order {
		if b, ok := w.bodies.Get(h); ok {
			out = append(out, *b)
		}
	}
	return out
}

// Each calls fn with a copy of every body in insertion order.
func (w *World) Each(fn func(i int, b body.Body)) {
	for i, h := range w.order {
		if b, ok := w.bodies.Get(h); ok {
			fn(i, *b)
		}
	}
}

// rebuildIndex regenerates the id→handle map from scratch. O(n), called only
// on structural mutation.
func (w *World) rebuildIndex() {
	idx := make(map[body.ID]arena.Handle, len(w.order))
	for _, h := range w.order {
		if b, ok := w.bodies.Get(h); ok {
			idx[b.ID()] = h
		}
	}
	w.idIndex = idx
}

// live returns the registered bodies in insertion order. The pointers are
// stable for the duration of a tick.
func (w *World) live() []*body.Body {
	out := make([]*body.Body, 0, len(w.order))
	for _, h := range w.order {
		if b, ok := w.bodies.Get(h); ok {
			out = append(out, b)
		}
	}
	return out
}
