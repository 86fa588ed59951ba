package terrain

import (
	"math"
	"math/rand/v2"
)

// Spot is a grid coordinate accepted by the scatterer.
type Spot struct {
	Row int
	Col int
}

// ScatterOptions bound the rejection sampling for resource spots.
type ScatterOptions struct {
	// Count is the desired number of spots; the result never exceeds
	// it but may fall short.
	Count int
	// MinDistance is the minimum pairwise Euclidean distance between
	// accepted spots, in cells.
	MinDistance float64
	// LowBand and HighBand bracket the heightmap values a spot may
	// occupy, inclusive on both ends.
	LowBand  float64
	HighBand float64
	// MaxAttempts caps the rejection loop; zero means Count * 100.
	MaxAttempts int
	// Margin insets candidates from the grid edge.
	Margin int
}

// DefaultScatterOptions are the metal-spot defaults for a 1024-cell
// map: spots on buildable ground, clear of water and summits.
func DefaultScatterOptions() ScatterOptions {
	return ScatterOptions{
		Count:       20,
		MinDistance: 100,
		LowBand:     0.3,
		HighBand:    0.9,
	}
}

// ScatterSpots places up to opts.Count spots on the heightmap by
// rejection sampling: a candidate is kept when its height lies inside
// [LowBand, HighBand] and it sits at least MinDistance from every spot
// accepted so far. Under-filling is not an error; the loop stops after
// MaxAttempts candidates and returns whatever was accepted. The
// heightmap is only read, never retained.
func ScatterSpots(hm *Heightmap, opts ScatterOptions, rng *rand.Rand) []Spot {
	if hm == nil || opts.Count <= 0 {
		return nil
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = opts.Count * 100
	}
	lo := opts.Margin
	hi := hm.Size - opts.Margin
	if hi <= lo {
		return nil
	}
	spots := make([]Spot, 0, opts.Count)
	for attempts := 0; attempts < maxAttempts && len(spots) < opts.Count; attempts++ {
		row := lo + rng.IntN(hi-lo)
		col := lo + rng.IntN(hi-lo)
		h := hm.At(row, col)
		if h < opts.LowBand || h > opts.HighBand {
			continue
		}
		if tooClose(spots, row, col, opts.MinDistance) {
			continue
		}
		spots = append(spots, Spot{Row: row, Col: col})
	}
	return spots
}

func tooClose(spots []Spot, row, col int, minDistance float64) bool {
	for _, s := range spots {
		if math.Hypot(float64(row-s.Row), float64(col-s.Col)) < minDistance {
			return true
		}
	}
	return false
}
