package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/realverse/internal/client/collection"
	"github.com/dmitrijs2005/realverse/internal/client/identity"
	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/client/store"
	"github.com/dmitrijs2005/realverse/internal/logging"
)

var fixedNow = time.UnixMilli(1700000000000)

func fixedClock() time.Time { return fixedNow }

func newCollection[E any](t *testing.T, m medium.Medium, key string, seed []E, idOf func(E) string) *collection.Collection[E] {
	t.Helper()
	s := store.Open(context.Background(), m, key, seed, logging.Discard())
	return collection.New(s, identity.NewSequence(t.Name()+key), idOf)
}
