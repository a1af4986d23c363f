// Package medium provides the key-value storage the realverse collections are
// persisted into. It mirrors the browser's localStorage contract: string keys,
// string values, whole-value reads and writes, no partial updates.
//
// Implementations:
//   - Memory: process-local map, used in tests and the "memory" mode.
//   - File: a single JSON document on disk.
//   - SQLite: a kv table in a local SQLite database.
//
// WithQuota wraps any Medium with a byte budget, the way browsers cap
// localStorage per origin.
package medium

import "context"

// Medium is a synchronous string key-value store.
type Medium interface {
	// Get returns the value stored at key. ok is false when the key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Kind names a Medium implementation in configuration.
type Kind string

const (
	KindMemory Kind = "memory"
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)
