// Package idgen issues entity identifiers for stores that have no server to do it.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Generator issues a new identifier on every call.
type Generator interface {
	Next() string
}

// UUID issues time-ordered UUIDv7 identifiers.
// Ordering follows creation time, and unlike raw timestamps they do not collide
// within the same millisecond.
type UUID struct{}

// Next returns a new UUIDv7 string.
func (UUID) Next() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		return uuid.NewString()
	}
	return id.String()
}

// Sequence issues prefixed, zero-padded, strictly increasing identifiers (VD001, VD002, ...).
type Sequence struct {
	mu     sync.Mutex
	prefix string
	width  int
	last   int
}

// NewSequence creates a sequence whose first identifier is prefix + pad(1).
func NewSequence(prefix string, width int) *Sequence {
	return &Sequence{prefix: prefix, width: width}
}

// Next returns the next identifier.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return fmt.Sprintf("%s%0*d", s.prefix, s.width, s.last)
}

// Observe advances the sequence past an existing identifier so later
// identifiers never collide with seeded ones. Foreign identifiers are ignored.
func (s *Sequence) Observe(id string) {
	n, ok := s.parse(id)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > s.last {
		s.last = n
	}
}

func (s *Sequence) parse(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, s.prefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
