/*
Fabric is the propagation layer every pipeline stage is built on.

# Module
  - store: keyed last-write-wins map, one per service
  - listener registry: append-only, notified in registration order
  - connector contracts: boundary adapters feeding or draining a service

# Delivery
  - synchronous and depth-first: an upsert drives the full downstream
    fan-out before returning to its caller
  - no batching, no coalescing, no removal semantics
*/
package fabric

import (
	"io"
	"sync"
)

// Listener receives downstream notifications from a service. Remove and
// update events exist in the capability set but carry no behavior in
// this pipeline.
type Listener[V any] interface {
	ProcessAdd(v V)
	ProcessRemove(v V)
	ProcessUpdate(v V)
}

// BaseListener is a no-op embedding helper so concrete listeners only
// implement ProcessAdd.
type BaseListener[V any] struct{}

func (BaseListener[V]) ProcessAdd(V)    {}
func (BaseListener[V]) ProcessRemove(V) {}
func (BaseListener[V]) ProcessUpdate(V) {}

// Publisher pushes a service value to an external sink.
type Publisher[V any] interface {
	Publish(v V)
}

// Subscriber drains an external source, calling into its service once
// per logical record.
type Subscriber interface {
	Subscribe(r io.Reader) error
}

// Store is a keyed value store with an append-only listener registry.
// Values go in through Put or OnMessage and come out by copy; absent
// keys yield the value type's zero value.
type Store[V any] struct {
	mu        sync.Mutex
	data      map[string]V
	listeners []Listener[V]
	key       func(V) string
}

// NewStore creates a store whose entries are keyed by the given function.
func NewStore[V any](key func(V) string) *Store[V] {
	return &Store[V]{
		data: make(map[string]V),
		key:  key,
	}
}

// Get returns the stored value for a key, or the zero value if absent.
func (s *Store[V]) Get(key string) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key]
}

// Lookup returns the stored value and whether the key is present.
func (s *Store[V]) Lookup(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// Put upserts a value without notifying listeners.
func (s *Store[V]) Put(v V) {
	s.mu.Lock()
	s.data[s.key(v)] = v
	s.mu.Unlock()
}

// OnMessage upserts a value and synchronously notifies every listener.
// This is the sole mutation entry point for connector-fed services.
func (s *Store[V]) OnMessage(v V) {
	s.Put(v)
	s.NotifyAdd(v)
}

// AddListener registers a listener for the lifetime of the store.
// Registration is expected to complete before message traffic begins.
func (s *Store[V]) AddListener(l Listener[V]) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Listeners returns the registered listeners in registration order.
func (s *Store[V]) Listeners() []Listener[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Listener[V], len(s.listeners))
	copy(out, s.listeners)
	return out
}

// NotifyAdd invokes ProcessAdd on every listener in registration order.
// The store lock is never held across listener calls; cross-service
// fan-out must not nest lock acquisition.
func (s *Store[V]) NotifyAdd(v V) {
	for _, l := range s.Listeners() {
		l.ProcessAdd(v)
	}
}

// Size returns the number of stored keys.
func (s *Store[V]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
