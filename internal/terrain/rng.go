package terrain

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// NewRNG returns the single pseudorandom stream for one generation or
// scatter pass. Every stochastic draw comes from this stream in the
// order documented by each generator, so an identical seed replays the
// identical map. There is no package-level RNG; the stream is always
// passed explicitly.
func NewRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic map generation.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// intBetween draws a uniform integer in [lo, hi], both ends inclusive.
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// floatBetween draws a uniform float in [lo, hi).
func floatBetween(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
