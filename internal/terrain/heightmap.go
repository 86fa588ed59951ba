// Package terrain generates square elevation grids from a small set of
// parametric archetypes and scatters resource spots over them. All
// randomness flows through one explicitly seeded stream, so the same
// configuration and seed always reproduce the same map.
package terrain

// Heightmap is a square, row-major grid of elevation samples. Grids
// returned by Generate hold values in [0, 1]; the raw pattern
// generators leave their accumulations unnormalized.
type Heightmap struct {
	Size  int
	Cells []float64
}

func NewHeightmap(size int) *Heightmap {
	return &Heightmap{Size: size, Cells: make([]float64, size*size)}
}

// Fill sets every cell to v.
func (h *Heightmap) Fill(v float64) {
	for i := range h.Cells {
		h.Cells[i] = v
	}
}

func (h *Heightmap) index(row, col int) int {
	return row*h.Size + col
}

// At returns the cell at (row, col). Callers are expected to stay in
// bounds; the grid does not re-check.
func (h *Heightmap) At(row, col int) float64 {
	return h.Cells[h.index(row, col)]
}

func (h *Heightmap) Set(row, col int, v float64) {
	h.Cells[h.index(row, col)] = v
}

func (h *Heightmap) add(row, col int, v float64) {
	h.Cells[h.index(row, col)] += v
}
