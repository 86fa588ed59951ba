package terrain

import "math"

// smoothstep is the cubic ease t*t*(3-2t), clamped to [0, 1]. The hills
// lattice uses it to blend corner values without visible grid seams.
func smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// pointToSegmentDistance returns the Euclidean distance from (x, y) to
// the segment (x1, y1)-(x2, y2): project onto the segment, clamp the
// parameter to [0, 1], measure to the clamped point. A degenerate
// segment collapses to point distance.
func pointToSegmentDistance(x, y, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(x-x1, y-y1)
	}
	t := ((x-x1)*dx + (y-y1)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(x-(x1+t*dx), y-(y1+t*dy))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
