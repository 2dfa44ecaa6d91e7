package service

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source injected into the offer and reward engines so
// outcomes are reproducible in tests. One production source is shared by
// both engines, each behind its own lock, so implementations must be safe
// for concurrent use.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// lockedRand serializes draws on a single math/rand source.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

// NewRand returns a time-seeded production random source.
func NewRand() Rand {
	return &lockedRand{src: rand.New(rand.NewSource(time.Now().UnixNano()))}
}
