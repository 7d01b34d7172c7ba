package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values in [0, limit).
// Values may repeat, which exercises the replace path of keyed containers.
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Zipf returns a Zipfian-distributed value in [0, n).
// P(k) ∝ 1/k^s; a few hot keys receive most of the draws.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// ZipfKeys returns num keys in [0, n) drawn from a Zipf distribution.
func (r *RNG) ZipfKeys(num, n int, s float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, num)
	for i := range out {
		out[i] = r.zipfLocked(n, s)
	}
	return out
}

// OpKind identifies a mutation in a randomized operation sequence.
type OpKind int

const (
	// OpInsert inserts at a random position in [0, length].
	OpInsert OpKind = iota
	// OpRemove removes a random position in [0, length).
	OpRemove
	// OpSet sets a random position in [0, length+extend].
	OpSet
)

// Op is one step of a randomized operation sequence.
type Op struct {
	Kind  OpKind
	Index int
	Value int
}

// Ops generates n operations that are valid for a sequence starting empty.
// Set operations may target up to extend positions past the end.
func (r *RNG) Ops(n, extend int) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, 0, n)
	length := 0
	for i := 0; i < n; i++ {
		op := Op{Value: r.rand.Int()}
		switch k := r.rand.Intn(10); {
		case k < 5 || length == 0:
			op.Kind = OpInsert
			op.Index = r.rand.Intn(length + 1)
			length++
		case k < 8:
			op.Kind = OpRemove
			op.Index = r.rand.Intn(length)
			length--
		default:
			op.Kind = OpSet
			op.Index = r.rand.Intn(length + extend + 1)
			if op.Index >= length {
				length = op.Index + 1
			}
		}
		ops = append(ops, op)
	}
	return ops
}
