// Package store holds the canonical in-memory collection for one domain.
// Every mutation happens under a single RWMutex so readers always observe a
// consistent snapshot, and a monotonic revision counter lets pull-based
// consumers detect that the collection changed since their last read.
package store

import (
	"sync"

	"github.com/dnieto/retailcore/internal/domain"
)

// Record is anything with a stable backend-assigned identity.
type Record interface {
	RecordID() int64
}

// Collection owns the canonical slice of records for one domain. The zero
// value is not usable; create instances with New.
type Collection[T Record] struct {
	mu    sync.RWMutex
	items []T
	rev   uint64
}

// New creates an empty collection.
func New[T Record]() *Collection[T] {
	return &Collection[T]{}
}

// ReplaceAll swaps the entire collection for the given records, as after a
// full backend fetch. The input slice is copied.
func (c *Collection[T]) ReplaceAll(records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(records))
	copy(c.items, records)
	c.rev++
}

// Insert appends a record. The ID must already be assigned by the backend;
// inserting a duplicate ID fails with ErrAlreadyExists.
func (c *Collection[T]) Insert(record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(record.RecordID()) >= 0 {
		return domain.ErrAlreadyExists
	}
	c.items = append(c.items, record)
	c.rev++
	return nil
}

// Replace swaps the record with the given ID wholesale. A missing ID is a
// no-op reported as ErrNotFound.
func (c *Collection[T]) Replace(id int64, record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	c.items[i] = record
	c.rev++
	return nil
}

// Remove deletes the record with the given ID. A missing ID is a no-op
// reported as ErrNotFound.
func (c *Collection[T]) Remove(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.rev++
	return nil
}

// FindByID looks up a record by identity without any I/O.
func (c *Collection[T]) FindByID(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// All returns a defensive copy of the collection in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Revision returns the mutation counter. It increases by one for every
// successful ReplaceAll/Insert/Replace/Remove.
func (c *Collection[T]) Revision() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rev
}

// indexOf must be called with the mutex held.
func (c *Collection[T]) indexOf(id int64) int {
	for i, r := range c.items {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}
