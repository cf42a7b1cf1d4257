// Package random provides the randomness source shared by level generation
// and the weighted draws used when spawning items.
package random

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the game consumes.
// Inject a seeded *rand.Rand (or a scripted fake) for deterministic tests.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// New returns a source seeded with seed, or with the current time when seed is 0.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Between returns a uniform integer in the closed range [lo, hi].
// The bounds may be given in either order.
func Between(src Source, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance returns true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// WeightedIndex picks an index into weights with probability proportional to
// its weight. Non-positive weights are never chosen. Returns -1 when no weight
// is positive.
func WeightedIndex(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := src.Intn(total)
	cumulative := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return i
		}
	}

	// Unreachable while roll < total
	return len(weights) - 1
}
