package identity

import (
	"regexp"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var randomFormat = regexp.MustCompile(`^_[0-9a-z]{9}$`)

func TestRandom_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := Random{}.NewID()
		require.Regexp(t, randomFormat, id)
	}
}

func TestRandom_NoCollisionsInPractice(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := Random{}.NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestUUID_IsValidV4(t *testing.T) {
	u, err := uuid.Parse(UUID{}.NewID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), u.Version())
}

func TestSequence_IsDeterministic(t *testing.T) {
	a := NewSequence("tests")
	b := NewSequence("tests")
	other := NewSequence("other")

	first := a.NewID()
	assert.Equal(t, first, b.NewID())
	assert.NotEqual(t, first, a.NewID())
	assert.NotEqual(t, first, other.NewID())

	u, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), u.Version())
}

func TestSequence_ConcurrentCallsAreUnique(t *testing.T) {
	s := NewSequence("concurrent")
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[string]struct{})
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := s.NewID()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)
}

func TestFunc(t *testing.T) {
	var g IDGenerator = Func(func() string { return "fixed" })
	assert.Equal(t, "fixed", g.NewID())
}
