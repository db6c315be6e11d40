// Package memory contains the in-process implementation of the persistence layer.
// Every collection is an ordered slice guarded by its own lock; callers only
// ever receive copies of stored records.
package memory

import (
	"slices"
	"sync"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"

	"github.com/pkg/errors"
)

// Collection is an insertion-ordered set of records of one type.
type Collection[T entity.Entity[T]] struct {
	mu    sync.RWMutex
	name  string
	items []T
}

// NewCollection creates an empty collection. name only appears in error messages.
func NewCollection[T entity.Entity[T]](name string) *Collection[T] {
	return &Collection[T]{name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// All returns a snapshot of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]T, len(c.items))
	for i, item := range c.items {
		snapshot[i] = item.Clone()
	}

	return snapshot
}

// FindByID returns a copy of the record with the given id.
func (c *Collection[T]) FindByID(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		var zero T

		return zero, false
	}

	return c.items[idx].Clone(), true
}

// Append stores item at the end of the collection.
func (c *Collection[T]) Append(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkInsert(item, nil); err != nil {
		return err
	}
	c.items = append(c.items, item.Clone())

	return nil
}

// AppendAll stores items in order. Either every item is stored or none is.
func (c *Collection[T]) AppendAll(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := c.checkInsert(item, pending); err != nil {
			return err
		}
		pending[item.RecordID()] = struct{}{}
	}

	for _, item := range items {
		c.items = append(c.items, item.Clone())
	}

	return nil
}

// RemoveByID deletes the record with the given id and reports whether it existed.
func (c *Collection[T]) RemoveByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	c.items = slices.Delete(c.items, idx, idx+1)

	return true
}

// RemoveFunc deletes every record matching del and returns how many were removed.
func (c *Collection[T]) RemoveFunc(del func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, del)

	return before - len(c.items)
}

// Update runs mutate against the stored record under the write lock.
// The id and creation time are restored after mutate returns, and a
// non-nil error from mutate leaves the stored record untouched.
func (c *Collection[T]) Update(id string, mutate func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T

	idx := c.indexOf(id)
	if idx < 0 {
		return zero, errors.Wrapf(repository.ErrNotFound, "%s %q", c.name, id)
	}

	working := c.items[idx].Clone()
	if err := mutate(&working); err != nil {
		return zero, err
	}
	if working.RecordID() != id || !working.RecordCreatedAt().Equal(c.items[idx].RecordCreatedAt()) {
		return zero, errors.Errorf("%s %q: id and createdAt are immutable", c.name, id)
	}
	c.items[idx] = working

	return working.Clone(), nil
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Clear removes every record.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

// indexOf must be called with c.mu held.
func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.RecordID() == id
	})
}

// checkInsert must be called with c.mu held.
func (c *Collection[T]) checkInsert(item T, pending map[string]struct{}) error {
	id := item.RecordID()
	if id == "" {
		return errors.Wrapf(repository.ErrEmptyID, "%s", c.name)
	}
	if _, ok := pending[id]; ok || c.indexOf(id) >= 0 {
		return errors.Wrapf(repository.ErrDuplicateID, "%s %q", c.name, id)
	}
	if v, ok := any(item).(entity.Validator); ok {
		if err := v.Validate(); err != nil {
			return errors.Wrapf(repository.ErrInvalidRecord, "%s %q: %v", c.name, id, err)
		}
	}

	return nil
}
