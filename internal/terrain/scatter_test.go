package terrain

import (
	"math"
	"testing"
)

func scatterFixture(t *testing.T) *Heightmap {
	t.Helper()
	result, err := Generate(validConfig(128, Hills, 7))
	if err != nil {
		t.Fatalf("generate fixture: %v", err)
	}
	return result.Heightmap
}

func TestScatterSpotsRespectsConstraints(t *testing.T) {
	hm := scatterFixture(t)
	opts := ScatterOptions{Count: 12, MinDistance: 10, LowBand: 0.2, HighBand: 0.9}
	spots := ScatterSpots(hm, opts, NewRNG(3))
	if len(spots) > opts.Count {
		t.Fatalf("accepted %d spots, asked for %d", len(spots), opts.Count)
	}
	for i, s := range spots {
		h := hm.At(s.Row, s.Col)
		if h < opts.LowBand || h > opts.HighBand {
			t.Fatalf("spot %d height %v outside band [%v, %v]", i, h, opts.LowBand, opts.HighBand)
		}
		for j := i + 1; j < len(spots); j++ {
			d := math.Hypot(float64(s.Row-spots[j].Row), float64(s.Col-spots[j].Col))
			if d < opts.MinDistance {
				t.Fatalf("spots %d and %d too close: %v < %v", i, j, d, opts.MinDistance)
			}
		}
	}
}

func TestScatterSpotsDeterministic(t *testing.T) {
	hm := scatterFixture(t)
	opts := ScatterOptions{Count: 8, MinDistance: 12, LowBand: 0.2, HighBand: 0.9}
	a := ScatterSpots(hm, opts, NewRNG(5))
	b := ScatterSpots(hm, opts, NewRNG(5))
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spot %d differs across identical seeds: %+v != %+v", i, a[i], b[i])
		}
	}
}

func TestScatterSpotsUnreachableBandUnderfills(t *testing.T) {
	hm := scatterFixture(t)
	opts := ScatterOptions{Count: 5, MinDistance: 1, LowBand: 2, HighBand: 3}
	spots := ScatterSpots(hm, opts, NewRNG(1))
	if len(spots) != 0 {
		t.Fatalf("no cell can satisfy the band, got %d spots", len(spots))
	}
}

func TestScatterSpotsHonorsMargin(t *testing.T) {
	hm := scatterFixture(t)
	opts := ScatterOptions{Count: 10, MinDistance: 2, LowBand: 0, HighBand: 1, Margin: 20}
	spots := ScatterSpots(hm, opts, NewRNG(2))
	if len(spots) == 0 {
		t.Fatalf("expected spots with a permissive band")
	}
	for i, s := range spots {
		if s.Row < 20 || s.Row >= hm.Size-20 || s.Col < 20 || s.Col >= hm.Size-20 {
			t.Fatalf("spot %d escapes the margin: %+v", i, s)
		}
	}
}

func TestScatterSpotsAttemptBudget(t *testing.T) {
	hm := scatterFixture(t)
	opts := ScatterOptions{Count: 50, MinDistance: 1, LowBand: 0, HighBand: 1, MaxAttempts: 3}
	spots := ScatterSpots(hm, opts, NewRNG(4))
	if len(spots) > 3 {
		t.Fatalf("attempt budget of 3 cannot yield %d spots", len(spots))
	}
}

func TestScatterSpotsNilAndZeroInputs(t *testing.T) {
	if got := ScatterSpots(nil, DefaultScatterOptions(), NewRNG(1)); got != nil {
		t.Fatalf("nil heightmap should yield nil, got %v", got)
	}
	hm := scatterFixture(t)
	if got := ScatterSpots(hm, ScatterOptions{Count: 0}, NewRNG(1)); got != nil {
		t.Fatalf("zero count should yield nil, got %v", got)
	}
	if got := ScatterSpots(hm, ScatterOptions{Count: 3, Margin: 64}, NewRNG(1)); got != nil {
		t.Fatalf("margin swallowing the grid should yield nil, got %v", got)
	}
}
