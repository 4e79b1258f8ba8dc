package repositories

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/oguzdem/gradekeeper/internal/pkg/logger"
	"github.com/oguzdem/gradekeeper/internal/pkg/storage"
)

// Record is implemented by every persisted entity.
type Record interface {
	RecordID() string
	SetRecordID(id string)
}

// collection owns one named, ordered record collection. It is the in-memory
// source of truth; every mutation writes the entire collection back through
// the store, and a failed write is logged and absorbed (the session keeps
// running on the in-memory state).
type collection[T Record] struct {
	mu    sync.RWMutex
	key   string
	store storage.Store
	items []T
}

// newCollection loads the persisted collection under key, falling back to
// defaults when nothing is persisted or the persisted value is unparsable.
// Neither case is an error for the caller.
func newCollection[T Record](store storage.Store, key string, defaults []T) *collection[T] {
	var items []T
	if err := store.Load(key, &items); err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			logger.Info().Str("collection", key).Int("defaults", len(defaults)).Msg("No persisted collection, starting from defaults")
		} else {
			logger.Warn().Err(err).Str("collection", key).Msg("Persisted collection unreadable, starting from defaults")
		}
		items = append([]T(nil), defaults...)
	}

	return &collection[T]{
		key:   key,
		store: store,
		items: items,
	}
}

// List returns the collection in insertion order. The returned slice is a
// copy; callers sort it for display without affecting storage order.
func (c *collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// GetByID returns the record with the given id, or false if none matches.
func (c *collection[T]) GetByID(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Count returns the number of records in the collection.
func (c *collection[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Add assigns a fresh unique identifier to the draft, appends it and
// persists the whole collection. The stored record is returned.
func (c *collection[T]) Add(draft T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft.SetRecordID(uuid.New().String())
	c.items = append(c.items, draft)
	c.persistLocked()
	return draft
}

// AddUnless appends the draft like Add, unless conflict reports true for an
// existing record. Check and append run under one write lock, so two
// concurrent adds carrying the same business key cannot both pass.
func (c *collection[T]) AddUnless(draft T, conflict func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if conflict(item) {
			var zero T
			return zero, false
		}
	}

	draft.SetRecordID(uuid.New().String())
	c.items = append(c.items, draft)
	c.persistLocked()
	return draft, true
}

// Update replaces the record whose id matches, preserving its position.
// An unknown id is a silent no-op; callers treat it as success.
func (c *collection[T]) Update(id string, record T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.RecordID() == id {
			record.SetRecordID(id)
			c.items[i] = record
			c.persistLocked()
			return true
		}
	}
	return false
}

// UpdateUnless replaces the record whose id matches, unless conflict reports
// true for any other record. Both checks and the swap run under one write
// lock. Returns (updated, conflicted); (false, false) means the id is
// unknown.
func (c *collection[T]) UpdateUnless(id string, record T, conflict func(T) bool) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, item := range c.items {
		if item.RecordID() == id {
			idx = i
			continue
		}
		if conflict(item) {
			return false, true
		}
	}
	if idx < 0 {
		return false, false
	}

	record.SetRecordID(id)
	c.items[idx] = record
	c.persistLocked()
	return true, false
}

// Remove deletes the record whose id matches. An unknown id is a silent
// no-op; callers treat it as success.
func (c *collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persistLocked()
			return true
		}
	}
	return false
}

// persistLocked writes the entire collection through the store. Persistence
// failures are logged and swallowed; durability is best effort and the
// in-memory state stays authoritative for the rest of the session.
func (c *collection[T]) persistLocked() {
	if err := c.store.Save(c.key, c.items); err != nil {
		logger.Error().Err(err).Str("collection", c.key).Msg("Failed to persist collection, continuing on in-memory state")
	}
}
