package terrain

import (
	"math"
	"math/rand/v2"
)

// Pattern library. Each generator fills a fresh unnormalized grid from
// the edge size and the shared RNG stream. Draw order is fixed per
// generator and documented on it: replaying the same seed replays the
// identical parameter sequence, which post-processing then turns into
// the identical map. Feature overlays restrict their sweeps to the
// feature's bounding box; cells outside it are provably unaffected.

// generateMountainRange lays a Gaussian ridge across the grid, then
// overlays five linear-falloff peaks.
// Draws: ridge angle, ridge offset, then per peak: row, col, radius,
// height.
func generateMountainRange(size int, rng *rand.Rand) *Heightmap {
	hm := NewHeightmap(size)
	angle := floatBetween(rng, 0, math.Pi)
	offset := floatBetween(rng, -float64(size)/4, float64(size)/4)
	sigma := float64(size) / 5
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			dist := math.Abs(float64(i)*cosA + float64(j)*sinA - offset)
			hm.add(i, j, math.Exp(-dist*dist/(2*sigma*sigma)))
		}
	}
	for p := 0; p < 5; p++ {
		x := rng.IntN(size)
		y := rng.IntN(size)
		radius := intBetween(rng, size/10, size/5)
		height := floatBetween(rng, 0.5, 1.0)
		addPeak(hm, x, y, radius, height)
	}
	return hm
}

// addPeak raises a linear cone of the given height inside radius.
func addPeak(hm *Heightmap, x, y, radius int, height float64) {
	r := float64(radius)
	for i := max(0, x-radius); i < min(hm.Size, x+radius); i++ {
		for j := max(0, y-radius); j < min(hm.Size, y+radius); j++ {
			dist := math.Hypot(float64(i-x), float64(j-y))
			if dist < r {
				hm.add(i, j, height*(1-dist/r))
			}
		}
	}
}

// gridPoint is an integer cell coordinate; row tracks the first grid
// axis the same way the generators sweep it.
type gridPoint struct {
	Row int
	Col int
}

// riverPath is the ordered waypoint polyline a river valley carves
// along. Rows strictly increase from the western quarter to the far
// edge; the path is built once per call and discarded afterwards.
type riverPath []gridPoint

// generateRiverPath draws the start cell, then repeatedly advances the
// row by a random step and drifts the column, clamped to the grid.
// Draws: start row, start col, then per waypoint: step, drift.
func generateRiverPath(size int, rng *rand.Rand) riverPath {
	path := riverPath{}
	row := intBetween(rng, 0, size/4)
	col := rng.IntN(size)
	path = append(path, gridPoint{row, col})
	for row < size-1 {
		row += intBetween(rng, size/20, size/10)
		col = clampInt(col+intBetween(rng, -size/10, size/10), 0, size-1)
		path = append(path, gridPoint{row, col})
	}
	return path
}

// distanceTo returns the minimum distance from (row, col) to any
// segment of the path.
func (p riverPath) distanceTo(row, col float64) float64 {
	minDist := math.Inf(1)
	for k := 0; k+1 < len(p); k++ {
		d := pointToSegmentDistance(row, col,
			float64(p[k].Row), float64(p[k].Col),
			float64(p[k+1].Row), float64(p[k+1].Col))
		if d < minDist {
			minDist = d
		}
	}
	return minDist
}

// generateRiverValley carves a low channel and a ramped valley into a
// 0.7 base, following a random polyline across the grid.
// Draws: the river path (see generateRiverPath).
func generateRiverValley(size int, rng *rand.Rand) *Heightmap {
	hm := NewHeightmap(size)
	hm.Fill(0.7)
	path := generateRiverPath(size, rng)
	riverWidth := float64(size / 20)
	valleyWidth := float64(size / 5)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			dist := path.distanceTo(float64(i), float64(j))
			hm.Set(i, j, riverValleyHeight(dist, riverWidth, valleyWidth))
		}
	}
	return hm
}

// riverValleyHeight maps distance from the river line to elevation:
// channel floor inside riverWidth, a linear ramp through the valley,
// untouched base beyond.
func riverValleyHeight(dist, riverWidth, valleyWidth float64) float64 {
	switch {
	case dist < riverWidth:
		return 0.1
	case dist < valleyWidth:
		return 0.1 + 0.6*(dist-riverWidth)/(valleyWidth-riverWidth)
	default:
		return 0.7
	}
}

// generatePlateau drops flat-topped mesas onto a low-amplitude noise
// floor. Plateaus only ever raise terrain.
// Draws: per-cell base noise row-major, plateau count, then per
// plateau: center row, center col, radius, height.
func generatePlateau(size int, rng *rand.Rand) *Heightmap {
	hm := NewHeightmap(size)
	for i := range hm.Cells {
		hm.Cells[i] = rng.NormFloat64() * 0.1
	}
	cliff := size / 20
	count := intBetween(rng, 2, 5)
	for p := 0; p < count; p++ {
		cx := intBetween(rng, size/4, 3*size/4)
		cy := intBetween(rng, size/4, 3*size/4)
		radius := intBetween(rng, size/8, size/4)
		height := floatBetween(rng, 0.5, 0.8)
		addPlateau(hm, cx, cy, radius, cliff, height)
	}
	return hm
}

// addPlateau sets a flat top inside radius and a linear cliff in the
// ring [radius, radius+cliff), both via max so existing terrain is
// never lowered.
func addPlateau(hm *Heightmap, cx, cy, radius, cliff int, height float64) {
	reach := radius + cliff
	r := float64(radius)
	for i := max(0, cx-reach); i < min(hm.Size, cx+reach); i++ {
		for j := max(0, cy-reach); j < min(hm.Size, cy+reach); j++ {
			dist := math.Hypot(float64(i-cx), float64(j-cy))
			switch {
			case dist < r:
				hm.Set(i, j, math.Max(hm.At(i, j), height))
			case dist < r+float64(cliff):
				edge := 1 - (dist-r)/float64(cliff)
				hm.Set(i, j, math.Max(hm.At(i, j), height*edge))
			}
		}
	}
}

// generateCrater carves bowls into a flat 0.6 field and raises rims
// around them.
// Draws: crater count, then per crater: center row, center col,
// radius, rim height.
func generateCrater(size int, rng *rand.Rand) *Heightmap {
	hm := NewHeightmap(size)
	hm.Fill(0.6)
	count := intBetween(rng, 3, 8)
	for c := 0; c < count; c++ {
		cx := intBetween(rng, size/8, 7*size/8)
		cy := intBetween(rng, size/8, 7*size/8)
		radius := intBetween(rng, size/16, size/8)
		rim := floatBetween(rng, 0.2, 0.4)
		addCrater(hm, cx, cy, radius, rim)
	}
	return hm
}

// addCrater lowers the bowl via min, deepest at the center, and adds a
// rim bump with linear falloff in the ring [radius, 1.2*radius).
func addCrater(hm *Heightmap, cx, cy, radius int, rim float64) {
	r := float64(radius)
	reach := radius * 2
	for i := max(0, cx-reach); i < min(hm.Size, cx+reach); i++ {
		for j := max(0, cy-reach); j < min(hm.Size, cy+reach); j++ {
			dist := math.Hypot(float64(i-cx), float64(j-cy))
			switch {
			case dist < r:
				hm.Set(i, j, math.Min(hm.At(i, j), 0.3+0.3*dist/r))
			case dist < 1.2*r:
				hm.add(i, j, rim*(1-(dist-r)/(0.2*r)))
			}
		}
	}
}

// generateHills accumulates four octaves of smoothstep-interpolated
// value noise. Per octave the coarse lattice is drawn row-major before
// any interpolation, keeping the draw order independent of sweep
// parallelization.
// Draws: per octave, lattice values row-major.
func generateHills(size int, rng *rand.Rand) *Heightmap {
	hm := NewHeightmap(size)
	scale := size / 64
	if scale < 1 {
		// Grids below a 64-cell octave base still get a valid lattice.
		scale = 1
	}
	for octave := 1; octave <= 4; octave++ {
		cell := scale * (1 << octave)
		amplitude := 1.0 / float64(octave)
		lat := newLattice(size/cell+2, rng)
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				gi := float64(i) / float64(cell)
				gj := float64(j) / float64(cell)
				hm.add(i, j, amplitude*lat.sample(gi, gj))
			}
		}
	}
	return hm
}

// lattice is one octave's coarse grid of uniform values.
type lattice struct {
	n      int
	values []float64
}

func newLattice(n int, rng *rand.Rand) lattice {
	values := make([]float64, n*n)
	for i := range values {
		values[i] = rng.Float64()
	}
	return lattice{n: n, values: values}
}

func (l lattice) at(i, j int) float64 {
	return l.values[i*l.n+j]
}

// sample blends the four lattice corners around (gi, gj) bilinearly
// with smoothstep-weighted fractional coordinates.
func (l lattice) sample(gi, gj float64) float64 {
	i0 := int(gi)
	j0 := int(gj)
	si := smoothstep(gi - float64(i0))
	sj := smoothstep(gj - float64(j0))
	v00 := l.at(i0, j0)
	v01 := l.at(i0, j0+1)
	v10 := l.at(i0+1, j0)
	v11 := l.at(i0+1, j0+1)
	v0 := v00*(1-si) + v10*si
	v1 := v01*(1-si) + v11*si
	return v0*(1-sj) + v1*sj
}

// generateArchipelago raises quadratic island domes over a 0.2 water
// base; islands never lower terrain that is already higher.
// Draws: island count, then per island: center row, center col,
// radius, height.
func generateArchipelago(size int, rng *rand.Rand) *Heightmap {
	hm := NewHeightmap(size)
	hm.Fill(0.2)
	count := intBetween(rng, 5, 15)
	for n := 0; n < count; n++ {
		cx := intBetween(rng, size/8, 7*size/8)
		cy := intBetween(rng, size/8, 7*size/8)
		radius := intBetween(rng, size/16, size/8)
		height := floatBetween(rng, 0.4, 0.7)
		addIsland(hm, cx, cy, radius, height)
	}
	return hm
}

// addIsland raises a quadratic dome via max inside radius.
func addIsland(hm *Heightmap, cx, cy, radius int, height float64) {
	r := float64(radius)
	for i := max(0, cx-radius); i < min(hm.Size, cx+radius); i++ {
		for j := max(0, cy-radius); j < min(hm.Size, cy+radius); j++ {
			dist := math.Hypot(float64(i-cx), float64(j-cy))
			if dist < r {
				dome := 1 - (dist/r)*(dist/r)
				hm.Set(i, j, math.Max(hm.At(i, j), 0.3+height*dome))
			}
		}
	}
}
