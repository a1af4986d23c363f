// Package identity generates entity ids.
//
// Ids only need to be unique within one collection and are not secrets. The
// collection retries on collision, so generators just need enough entropy
// for collisions to be rare.
package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces a new id on every call.
type IDGenerator interface {
	NewID() string
}

const (
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
	randomLength = 9
)

// Random produces "_" followed by 9 random base-36 characters, e.g. "_k3z9q0x1a".
type Random struct{}

func (Random) NewID() string {
	var b strings.Builder
	b.Grow(randomLength + 1)
	b.WriteByte('_')

	max := big.NewInt(int64(len(base36)))
	for i := 0; i < randomLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(fmt.Sprintf("identity: read random: %v", err))
		}
		b.WriteByte(base36[n.Int64()])
	}
	return b.String()
}

// UUID produces random (version 4) UUID strings.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence produces reproducible ids: the n-th call returns the name-based
// (version 5) UUID of n within namespace. Two Sequences with the same
// namespace yield the same ids in the same order.
type Sequence struct {
	namespace uuid.UUID

	mu sync.Mutex
	n  uint64
}

// NewSequence creates a Sequence deriving its namespace from name.
func NewSequence(name string) *Sequence {
	return &Sequence{namespace: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	s.n++
	n := s.n
	s.mu.Unlock()

	return uuid.NewSHA1(s.namespace, []byte(fmt.Sprint(n))).String()
}

// Func adapts a plain function to IDGenerator.
type Func func() string

func (f Func) NewID() string { return f() }
