package terrain

import "fmt"

// MinSize is the smallest accepted heightmap edge length.
const MinSize = 16

const (
	DefaultNoiseLevel     = 0.05
	DefaultSmoothingSigma = 2.0
)

// GenerationConfig describes one terrain generation request. It is
// treated as immutable for the duration of the call. A zero Seed asks
// the pipeline to pick a fresh one; the effective seed is echoed in the
// Result so any run can be reproduced.
type GenerationConfig struct {
	Size           int
	Archetype      Archetype
	Seed           int64
	NoiseLevel     float64
	SmoothingSigma float64
}

// DefaultGenerationConfig returns a random-archetype request with the
// standard post-processing parameters.
func DefaultGenerationConfig(size int) GenerationConfig {
	return GenerationConfig{
		Size:           size,
		Archetype:      ArchetypeRandom,
		NoiseLevel:     DefaultNoiseLevel,
		SmoothingSigma: DefaultSmoothingSigma,
	}
}

// Validate rejects configurations before anything is allocated.
func (c GenerationConfig) Validate() error {
	if c.Size < MinSize {
		return &ValidationError{
			Kind: ErrBadSize,
			Msg:  fmt.Sprintf("size must be at least %d, got %d", MinSize, c.Size),
		}
	}
	if c.Archetype != ArchetypeRandom && !c.Archetype.Known() {
		return unknownArchetypeError(string(c.Archetype))
	}
	return nil
}
