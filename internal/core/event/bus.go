package event

import (
	"reflect"
	"sync"
)

// Bus queues simulation events while a tick runs and hands them out after
// it. Emit appends to the pending queue. The publish phase at the end of the
// tick calls Publish, which makes that tick's events readable through
// Published and deliverable through Dispatch. Handlers run only from
// Dispatch, between ticks, so they may add or remove bodies.
type Bus struct {
	mu        sync.Mutex // guards handlers
	pending   map[reflect.Type][]any
	published map[reflect.Type][]any
	handlers  map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		pending:   make(map[reflect.Type][]any),
		published: make(map[reflect.Type][]any),
		handlers:  make(map[reflect.Type][]func(any)),
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Emit records an event for the tick in progress.
func Emit[T any](b *Bus, event T) {
	t := typeOf[T]()
	b.pending[t] = append(b.pending[t], event)
}

// Subscribe adds a handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := typeOf[T]()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// Published returns the last tick's events of type T without delivering them.
func Published[T any](b *Bus) []T {
	events := b.published[typeOf[T]()]
	out := make([]T, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.(T))
	}
	return out
}

// Publish replaces the published events with the pending ones and empties
// the pending queue. Undispatched events from the previous tick are dropped.
func (b *Bus) Publish() {
	b.pending, b.published = b.published, b.pending
	for t := range b.pending {
		b.pending[t] = b.pending[t][:0]
	}
}

// Dispatch delivers the published events to their handlers once. A second
// call before the next Publish delivers nothing.
func (b *Bus) Dispatch() {
	for t, events := range b.published {
		for _, ev := range events {
			for _, h := range b.handlers[t] {
				h(ev)
			}
		}
		b.published[t] = events[:0]
	}
}
