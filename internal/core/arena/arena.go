package arena

// Arena owns values of T addressed by generation-checked handles. Values are
// heap-allocated individually, so a *T stays valid while its handle is alive
// regardless of how many other slots are created or freed.
type Arena[T any] struct {
	pool *Pool
	data map[Handle]*T
}

func New[T any]() *Arena[T] {
	return &Arena[T]{
		pool: NewPool(),
		data: make(map[Handle]*T, 64),
	}
}

// Insert takes ownership of v and returns its handle.
func (a *Arena[T]) Insert(v *T) Handle {
	h := a.pool.Create()
	a.data[h] = v
	return h
}

// Get resolves h. Stale handles (freed, or from a reused slot) miss.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if !a.pool.Alive(h) {
		return nil, false
	}
	v, ok := a.data[h]
	return v, ok
}

// Remove frees h and returns the value it held.
func (a *Arena[T]) Remove(h Handle) (*T, bool) {
	v, ok := a.Get(h)
	if !ok {
		return nil, false
	}
	delete(a.data, h)
	a.pool.Free(h)
	return v, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return len(a.data)
}
