package repository

import "sync"

// NextID returns the identifier for the next entity appended to a
// collection holding the given ids: 1 for an empty collection,
// otherwise max(existing ids) + 1. Monotonic as long as entities are
// never removed; if an id at a gap were ever freed, a later max+1
// could reuse it. The API exposes no delete, so that never happens at
// runtime, but the boundary is covered by tests.
func NextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// Collection is an ordered in-memory sequence of entities of one
// resource type. Insertion order is display order. All access goes
// through the RWMutex so concurrent gin handlers see consistent
// snapshots; reads always copy so callers can never mutate the
// internal slice.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	idOf   func(T) int
	withID func(T, int) T
}

// NewCollection creates a collection seeded with the given entities.
// idOf extracts an entity's id; withID returns the entity with its id
// assigned (used by Append).
func NewCollection[T any](seed []T, idOf func(T) int, withID func(T, int) T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items, idOf: idOf, withID: withID}
}

// List returns a copy of the full collection in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the entity with the given id, or false if absent.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of entities in the collection.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Append allocates the next id, assigns it to the entity, appends it
// and returns the stored value. Id allocation and insertion happen
// under one lock so ids stay unique under concurrent writes.
func (c *Collection[T]) Append(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int, len(c.items))
	for i, existing := range c.items {
		ids[i] = c.idOf(existing)
	}
	stored := c.withID(item, NextID(ids))
	c.items = append(c.items, stored)
	return stored
}
