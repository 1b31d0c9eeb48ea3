// internal/entity/collection.go
package entity

import "go-survivor/internal/types"

// Identified is any entity stored in a Collection.
type Identified interface {
	ID() types.EntityID
}

// Collection is an ordered set of live entities. Iteration order is
// insertion order. Removal is always a compaction pass over the backing
// slice, so callers never remove by index while iterating.
type Collection[T Identified] struct {
	items []T
}

func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Items returns the backing slice. Callers must not keep it across a removal.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Snapshot returns a copy of the current items.
func (c *Collection[T]) Snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with id.
func (c *Collection[T]) Get(id types.EntityID) (T, bool) {
	for _, item := range c.items {
		if item.ID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// RemoveIf drops every item for which remove returns true and reports how
// many were dropped. remove is called exactly once per item, in order.
func (c *Collection[T]) RemoveIf(remove func(T) bool) int {
	kept := c.items[:0]
	for _, item := range c.items {
		if !remove(item) {
			kept = append(kept, item)
		}
	}
	removed := len(c.items) - len(kept)
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return removed
}

// RemoveIDs drops the items whose IDs are listed.
func (c *Collection[T]) RemoveIDs(ids []types.EntityID) int {
	if len(ids) == 0 {
		return 0
	}
	set := make(map[types.EntityID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return c.RemoveIf(func(item T) bool {
		_, ok := set[item.ID()]
		return ok
	})
}

// Remove drops the item with id.
func (c *Collection[T]) Remove(id types.EntityID) bool {
	return c.RemoveIf(func(item T) bool { return item.ID() == id }) > 0
}

func (c *Collection[T]) Clear() {
	c.items = nil
}
