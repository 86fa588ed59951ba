package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghenghis/bar-none-map-creator/internal/config"
	"github.com/ghenghis/bar-none-map-creator/internal/export"
	"github.com/ghenghis/bar-none-map-creator/internal/terrain"
)

func main() {
	var (
		configPath  string
		name        string
		terrainType string
		size        int
		seed        int64
		spotCount   int
		outDir      string
	)

	flag.StringVar(&configPath, "config", "", "optional YAML config file")
	flag.StringVar(&name, "name", "", "map name")
	flag.StringVar(&terrainType, "type", "", "terrain type: mountain_range, river_valley, plateau, crater, hills, archipelago or random")
	flag.IntVar(&size, "size", 0, "heightmap size in cells")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 picks a fresh one)")
	flag.IntVar(&spotCount, "spots", -1, "metal spot count")
	flag.StringVar(&outDir, "out", "", "output directory")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		die(err.Error())
	}
	if name != "" {
		cfg.Map.Name = name
	}
	if terrainType != "" {
		cfg.Terrain.Type = terrainType
	}
	if size > 0 {
		cfg.Terrain.Size = size
	}
	if seed != 0 {
		cfg.Terrain.Seed = seed
	}
	if spotCount >= 0 {
		cfg.Spots.Count = spotCount
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}

	archetype, err := terrain.ParseArchetype(cfg.Terrain.Type)
	if err != nil {
		die(err.Error())
	}

	result, err := terrain.Generate(terrain.GenerationConfig{
		Size:           cfg.Terrain.Size,
		Archetype:      archetype,
		Seed:           cfg.Terrain.Seed,
		NoiseLevel:     cfg.Terrain.NoiseLevel,
		SmoothingSigma: cfg.Terrain.SmoothingSigma,
	})
	if err != nil {
		die(fmt.Sprintf("generate terrain: %v", err))
	}

	spots := terrain.ScatterSpots(result.Heightmap, terrain.ScatterOptions{
		Count:       cfg.Spots.Count,
		MinDistance: cfg.Spots.MinDistance,
		LowBand:     cfg.Spots.LowBand,
		HighBand:    cfg.Spots.HighBand,
		Margin:      cfg.Spots.Margin,
	}, terrain.NewRNG(result.Seed))

	mapDir := filepath.Join(cfg.Output.Dir, cfg.Map.Name)
	if err := export.WriteHeightmapPNG(result.Heightmap, filepath.Join(mapDir, "heightmap.png")); err != nil {
		die(fmt.Sprintf("write heightmap: %v", err))
	}
	if err := export.WritePreviewPNG(result.Heightmap, filepath.Join(mapDir, "preview.png"), cfg.Output.PreviewSize); err != nil {
		die(fmt.Sprintf("write preview: %v", err))
	}
	meta := export.MapMetadata{
		Name:        cfg.Map.Name,
		Description: cfg.Map.Description,
		SizeKm:      cfg.Map.SizeKm,
		GridSize:    result.Heightmap.Size,
		TerrainType: string(result.Archetype),
		Seed:        result.Seed,
		MetalSpots:  export.ToWorldSpots(spots, result.Heightmap.Size, cfg.Map.SizeKm),
	}
	if err := export.WriteMapMetadata(meta, filepath.Join(mapDir, "map.yaml")); err != nil {
		die(fmt.Sprintf("write metadata: %v", err))
	}

	fmt.Printf("wrote %s\n", mapDir)
	fmt.Printf("terrain=%s seed=%d size=%d spots=%d/%d\n",
		result.Archetype, result.Seed, result.Heightmap.Size, len(spots), cfg.Spots.Count)
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
