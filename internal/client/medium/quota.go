package medium

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/realverse/internal/common"
)

// Quota limits the total number of key+value bytes written through it.
//
// Only keys seen through this wrapper (read or written) are accounted for,
// which matches how the store uses a medium: every key is loaded before it is
// written.
type Quota struct {
	inner Medium
	max   int64

	mu    sync.Mutex
	sizes map[string]int64
	total int64
}

var _ Medium = (*Quota)(nil)

// WithQuota wraps m so that writes pushing the total beyond maxBytes fail with
// common.ErrQuotaExceeded. maxBytes <= 0 disables the limit and returns m as is.
func WithQuota(m Medium, maxBytes int64) Medium {
	if maxBytes <= 0 {
		return m
	}
	return &Quota{inner: m, max: maxBytes, sizes: make(map[string]int64)}
}

func (q *Quota) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := q.inner.Get(ctx, key)
	if err != nil || !ok {
		return v, ok, err
	}

	q.mu.Lock()
	q.track(key, entrySize(key, v))
	q.mu.Unlock()

	return v, ok, nil
}

func (q *Quota) Set(ctx context.Context, key, value string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	size := entrySize(key, value)
	next := q.total - q.sizes[key] + size
	if next > q.max {
		return fmt.Errorf("%w: %d of %d bytes", common.ErrQuotaExceeded, next, q.max)
	}

	if err := q.inner.Set(ctx, key, value); err != nil {
		return err
	}
	q.track(key, size)
	return nil
}

// Used reports the accounted number of bytes.
func (q *Quota) Used() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.total
}

func (q *Quota) track(key string, size int64) {
	q.total += size - q.sizes[key]
	q.sizes[key] = size
}

func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}
