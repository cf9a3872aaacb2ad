// Package randutil builds the seeded random streams games are replayed from
// and the small sampling helpers every action uses.
package randutil

import (
	"errors"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// ErrNoWeight is returned by Weighted when no option can be picked.
var ErrNoWeight = errors.New("randutil: no option has a positive weight")

// New returns a *rand.Rand seeded deterministically from the provided int64.
// PCG output is specified bit for bit, so two peers sharing a seed draw the
// same sequence on any platform.
func New(seed int64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// NewSource returns the PCG source behind New. Callers that need to roll a
// stream back keep the source and snapshot it with MarshalBinary.
func NewSource(seed int64) *rand.PCG {
	u := uint64(seed)
	return rand.NewPCG(mix(u), mix(u+goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Weighted draws an index with probability proportional to its weight.
// Negative weights count as zero. Exactly one value is consumed from rng.
func Weighted(rng *rand.Rand, weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0, ErrNoWeight
	}
	r := rng.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i, nil
		}
		r -= w
	}
	// unreachable: r < total
	return len(weights) - 1, nil
}

// Between returns a uniform integer in [lo, hi].
func Between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// CoinFlip returns true with probability one half.
func CoinFlip(rng *rand.Rand) bool {
	return rng.IntN(2) == 0
}
