// Package services implements the per-content-kind operations on top of the
// generic collections: characters, fan art, forum and blog.
//
// Every mutating method returns the full collection after the change so the
// caller can re-render from it. A returned error matching
// common.ErrPersistFailed still comes with a valid change: the new state is
// kept in memory for the rest of the session.
package services

import (
	"time"

	"github.com/dmitrijs2005/realverse/internal/client/collection"
)

// Clock returns the current time; tests pass a fixed one.
type Clock func() time.Time

// Change aliases the collection mutation result.
type Change[E any] = collection.Change[E]
