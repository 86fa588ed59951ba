package terrain

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Archetype names one of the terrain pattern algorithms.
type Archetype string

const (
	MountainRange Archetype = "mountain_range"
	RiverValley   Archetype = "river_valley"
	Plateau       Archetype = "plateau"
	Crater        Archetype = "crater"
	Hills         Archetype = "hills"
	Archipelago   Archetype = "archipelago"

	// ArchetypeRandom is accepted as input only. Generate always
	// resolves it to one of the six concrete archetypes before
	// dispatching, and never reports it back.
	ArchetypeRandom Archetype = "random"
)

// Archetypes lists the concrete archetypes in resolution order. The
// random resolver indexes into this slice, so the order is part of the
// deterministic draw sequence.
var Archetypes = []Archetype{
	MountainRange,
	RiverValley,
	Plateau,
	Crater,
	Hills,
	Archipelago,
}

// Known reports whether a is one of the six concrete archetypes.
func (a Archetype) Known() bool {
	for _, k := range Archetypes {
		if a == k {
			return true
		}
	}
	return false
}

// ParseArchetype maps user input to an Archetype, tolerating case and
// surrounding whitespace. Unknown names yield a ValidationError that
// carries the closest known name as a suggestion.
func ParseArchetype(raw string) (Archetype, error) {
	name := Archetype(strings.ToLower(strings.TrimSpace(raw)))
	if name == ArchetypeRandom || name.Known() {
		return name, nil
	}
	return "", unknownArchetypeError(string(name))
}

func unknownArchetypeError(name string) *ValidationError {
	msg := fmt.Sprintf("unknown terrain type: %q", name)
	if s := closestArchetype(name); s != "" {
		msg = fmt.Sprintf("unknown terrain type: %q (did you mean %q?)", name, s)
	}
	return &ValidationError{Kind: ErrUnknownArchetype, Msg: msg}
}

// closestArchetype returns the concrete archetype nearest to name by
// edit distance, or "" when nothing is close enough to suggest.
func closestArchetype(name string) Archetype {
	var best Archetype
	bestDist := 0
	for _, k := range Archetypes {
		dist := levenshtein.ComputeDistance(name, string(k))
		if dist > len(string(k))/2 {
			continue
		}
		if best == "" || dist < bestDist {
			best, bestDist = k, dist
		}
	}
	return best
}
