package terrain

import (
	"math/rand/v2"
	"time"
)

// Result is a finished generation: a normalized heightmap, the
// concrete archetype that produced it (never ArchetypeRandom), and the
// effective seed so the run can be replayed exactly.
type Result struct {
	Heightmap *Heightmap
	Archetype Archetype
	Seed      int64
}

// Generate runs the full pipeline: validate the config, resolve a
// random archetype, invoke the pattern generator, then post-process.
// The returned grid is Size x Size with every cell in [0, 1].
func Generate(cfg GenerationConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := NewRNG(seed)
	archetype := cfg.Archetype
	if archetype == ArchetypeRandom {
		archetype = Archetypes[rng.IntN(len(Archetypes))]
	}
	hm := runPattern(archetype, cfg.Size, rng)
	if cfg.NoiseLevel > 0 {
		addGaussianNoise(hm, cfg.NoiseLevel, rng)
	}
	if cfg.SmoothingSigma > 0 {
		gaussianSmooth(hm, cfg.SmoothingSigma)
	}
	Normalize(hm)
	return &Result{Heightmap: hm, Archetype: archetype, Seed: seed}, nil
}

// runPattern dispatches to the pattern library. The switch is
// exhaustive over the six concrete archetypes; Validate has already
// rejected anything else.
func runPattern(a Archetype, size int, rng *rand.Rand) *Heightmap {
	switch a {
	case MountainRange:
		return generateMountainRange(size, rng)
	case RiverValley:
		return generateRiverValley(size, rng)
	case Plateau:
		return generatePlateau(size, rng)
	case Crater:
		return generateCrater(size, rng)
	case Hills:
		return generateHills(size, rng)
	case Archipelago:
		return generateArchipelago(size, rng)
	default:
		panic("terrain: no generator for archetype " + string(a))
	}
}
