// Package collection is the CRUD façade over a persisted, ordered collection
// of records. New records go to the front, records are replaced rather than
// mutated, and every mutation is written through to the store before it
// returns.
package collection

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/realverse/internal/client/identity"
	"github.com/dmitrijs2005/realverse/internal/client/store"
	"github.com/dmitrijs2005/realverse/internal/common"
)

// maxIDAttempts bounds id regeneration when the generator keeps colliding.
const maxIDAttempts = 16

// Change is the outcome of a mutation: the affected record and the full
// collection after the mutation, most recent first.
type Change[E any] struct {
	Entity E
	Items  []E
}

// Collection serializes operations on one store. Each operation runs to
// completion before the next starts.
type Collection[E any] struct {
	store *store.Store[[]E]
	ids   identity.IDGenerator
	idOf  func(E) string

	mu sync.Mutex
}

// New builds a Collection over s. idOf extracts a record's id.
func New[E any](s *store.Store[[]E], ids identity.IDGenerator, idOf func(E) string) *Collection[E] {
	return &Collection[E]{store: s, ids: ids, idOf: idOf}
}

// List returns a copy of the current records.
func (c *Collection[E]) List() []E {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.store.Snapshot())
}

// Get returns the record with the given id or common.ErrorNotFound.
func (c *Collection[E]) Get(id string) (E, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.store.Snapshot()
	if i := c.indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	var zero E
	return zero, fmt.Errorf("%s %q: %w", c.store.Key(), id, common.ErrorNotFound)
}

// Add generates an id not used in the collection, builds the record with it
// and puts it first.
//
// If persisting fails the record stays in memory: the Change is returned
// together with an error matching common.ErrPersistFailed.
func (c *Collection[E]) Add(ctx context.Context, build func(id string) E) (Change[E], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.store.Snapshot()
	id, err := c.freshID(items)
	if err != nil {
		return Change[E]{}, err
	}

	entity := build(id)
	next := make([]E, 0, len(items)+1)
	next = append(next, entity)
	next = append(next, items...)

	return c.commit(ctx, entity, next)
}

// UpdateByID replaces the record with the given id by mutate's result, keeping
// its position. An unknown id returns common.ErrorNotFound and changes nothing.
// mutate must return a new value rather than modify shared slices of its
// argument.
func (c *Collection[E]) UpdateByID(ctx context.Context, id string, mutate func(E) E) (Change[E], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.store.Snapshot()
	i := c.indexOf(items, id)
	if i < 0 {
		return Change[E]{}, fmt.Errorf("%s %q: %w", c.store.Key(), id, common.ErrorNotFound)
	}

	entity := mutate(items[i])
	next := slices.Clone(items)
	next[i] = entity

	return c.commit(ctx, entity, next)
}

func (c *Collection[E]) commit(ctx context.Context, entity E, next []E) (Change[E], error) {
	err := c.store.Write(ctx, next)
	return Change[E]{Entity: entity, Items: slices.Clone(next)}, err
}

func (c *Collection[E]) freshID(items []E) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := c.ids.NewID()
		if id != "" && c.indexOf(items, id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("%s: %w after %d attempts", c.store.Key(), common.ErrIDExhausted, maxIDAttempts)
}

func (c *Collection[E]) indexOf(items []E, id string) int {
	return slices.IndexFunc(items, func(e E) bool { return c.idOf(e) == id })
}
