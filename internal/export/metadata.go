package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/ghenghis/bar-none-map-creator/internal/terrain"
)

// ElmosPerKm is the engine's world unit density: 512 elmos per map km.
const ElmosPerKm = 512

// WorldSpot is a resource spot converted to world coordinates (elmos).
type WorldSpot struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// ToWorldSpots converts grid coordinates to elmos for a square map of
// mapKm kilometres per side.
func ToWorldSpots(spots []terrain.Spot, gridSize, mapKm int) []WorldSpot {
	out := make([]WorldSpot, 0, len(spots))
	for _, s := range spots {
		out = append(out, WorldSpot{
			X: float64(s.Row) / float64(gridSize) * float64(mapKm) * ElmosPerKm,
			Z: float64(s.Col) / float64(gridSize) * float64(mapKm) * ElmosPerKm,
		})
	}
	return out
}

// MapMetadata is the textual sidecar written next to the heightmap.
// The packaging step reads it to assemble the installable artifact;
// the archive byte format itself lives outside this module.
type MapMetadata struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Author      string      `yaml:"author,omitempty"`
	SizeKm      int         `yaml:"size_km"`
	GridSize    int         `yaml:"grid_size"`
	TerrainType string      `yaml:"terrain_type"`
	Seed        int64       `yaml:"seed"`
	MetalSpots  []WorldSpot `yaml:"metal_spots"`
}

// WriteMapMetadata writes the sidecar as YAML.
func WriteMapMetadata(meta MapMetadata, path string) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal map metadata: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write map metadata: %w", err)
	}
	return nil
}

// Packager turns an assembled map directory into an installable
// artifact and returns its path. Archive formats, checksums and
// installation are deliberately outside this module; callers plug in
// their own implementation.
type Packager interface {
	Package(mapDir, name string) (string, error)
}
