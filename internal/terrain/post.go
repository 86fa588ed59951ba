package terrain

import (
	"math"
	"math/rand/v2"
)

// Post-processing stage, applied uniformly after any pattern
// generator: additive noise, Gaussian smoothing, min-max
// normalization. Normalization runs unconditionally and is what
// guarantees the [0, 1] invariant on finished grids.

// addGaussianNoise perturbs every cell, row-major, with zero-mean
// Gaussian noise of the given standard deviation.
func addGaussianNoise(hm *Heightmap, level float64, rng *rand.Rand) {
	for i := range hm.Cells {
		hm.Cells[i] += rng.NormFloat64() * level
	}
}

// gaussianSmooth applies an isotropic Gaussian blur as two separable
// one-dimensional passes. Edges clamp to the nearest cell.
func gaussianSmooth(hm *Heightmap, sigma float64) {
	kernel := gaussianKernel(sigma)
	if len(kernel) <= 1 {
		return
	}
	radius := len(kernel) / 2
	size := hm.Size
	tmp := make([]float64, len(hm.Cells))
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				sum += hm.At(i, clampInt(j+k, 0, size-1)) * kernel[k+radius]
			}
			tmp[i*size+j] = sum
		}
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				sum += tmp[clampInt(i+k, 0, size-1)*size+j] * kernel[k+radius]
			}
			hm.Set(i, j, sum)
		}
	}
}

// gaussianKernel builds a normalized one-dimensional kernel truncated
// at four standard deviations.
func gaussianKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for k := -radius; k <= radius; k++ {
		v := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// Normalize rescales the grid elementwise to [0, 1]. A perfectly flat
// grid maps to all zeros of the same shape rather than dividing by
// zero.
func Normalize(hm *Heightmap) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range hm.Cells {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		for i := range hm.Cells {
			hm.Cells[i] = 0
		}
		return
	}
	span := hi - lo
	for i := range hm.Cells {
		hm.Cells[i] = (hm.Cells[i] - lo) / span
	}
}
