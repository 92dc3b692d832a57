// Package entropy provides the random-source handle shared by every
// randomized decision in a game session: ideology draws, vote shares,
// tax perturbation and cabinet picks.
package entropy

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"
)

// New returns a deterministic generator for the given seed.
func New(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional: games must be replayable from a seed.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// FromClock seeds a generator from a high-resolution clock reading and
// returns the seed so the game can be replayed with --seed.
func FromClock() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// ClampedNormal draws from N(mean, stddev), rounds to the nearest integer
// and clamps the result to [lo, hi].
func ClampedNormal(rng *rand.Rand, mean, stddev float64, lo, hi int) int {
	v := int(math.Round(rng.NormFloat64()*stddev + mean))
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
