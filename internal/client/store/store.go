// Package store persists whole values into a medium.Medium as JSON.
//
// Load never fails: an absent key yields the seed default, and a value that
// cannot be read or decoded is treated as corrupt state, logged, and replaced
// by the seed default. Writes report failures wrapped with
// common.ErrPersistFailed; a Store keeps the written value in memory either
// way, so the session goes on with the newest state.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/common"
	"github.com/dmitrijs2005/realverse/internal/logging"
)

// Keys of the persisted collections. Each one holds the full ordered
// collection of its content kind.
const (
	KeyCharacters = "rl_characters"
	KeyFanArt     = "rl_fanart"
	KeyForum      = "rl_forum"
	KeyBlog       = "rl_blog"
)

// Load reads and decodes the value at key. It returns seed unchanged when the
// key is absent or empty, and also when the stored value is corrupt. The
// medium is never written.
func Load[T any](ctx context.Context, m medium.Medium, key string, seed T, log logging.Logger) T {
	raw, ok, err := m.Get(ctx, key)
	if err != nil {
		log.Warn(ctx, "recovered unreadable collection", "key", key, "error", fmt.Errorf("%w: %w", common.ErrCorruptState, err))
		return seed
	}
	if !ok || raw == "" {
		return seed
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Warn(ctx, "recovered corrupt collection", "key", key, "error", fmt.Errorf("%w: %w", common.ErrCorruptState, err))
		return seed
	}
	return v
}

// Save encodes v and writes it at key.
func Save[T any](ctx context.Context, m medium.Medium, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", common.ErrPersistFailed, key, err)
	}
	if err := m.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("%w: write %s: %w", common.ErrPersistFailed, key, err)
	}
	return nil
}

// Store owns the in-memory value of one key for the lifetime of a session.
type Store[T any] struct {
	key    string
	medium medium.Medium
	log    logging.Logger

	mu    sync.RWMutex
	value T
}

// Open loads the value at key (falling back to seed) and binds it to a Store.
func Open[T any](ctx context.Context, m medium.Medium, key string, seed T, log logging.Logger) *Store[T] {
	value := Load(ctx, m, key, seed, log)
	return &Store[T]{
		key:    key,
		medium: m,
		log:    log.With("key", key),
		value:  value,
	}
}

// Key returns the medium key the store writes to.
func (s *Store[T]) Key() string {
	return s.key
}

// Snapshot returns the current in-memory value.
func (s *Store[T]) Snapshot() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Write makes v the current value and persists it. On error the in-memory
// value is still v and the medium may hold an older value.
func (s *Store[T]) Write(ctx context.Context, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	if err := Save(ctx, s.medium, s.key, v); err != nil {
		s.log.Error(ctx, "persist failed, keeping in-memory state", "error", err)
		return err
	}
	return nil
}
