// Package config holds the YAML application configuration for the map
// creator CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the top-level application configuration.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Terrain TerrainConfig `yaml:"terrain"`
	Spots   SpotsConfig   `yaml:"spots"`
	Output  OutputConfig  `yaml:"output"`
}

// MapConfig names the generated map.
type MapConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	SizeKm      int    `yaml:"size_km"`
}

// TerrainConfig drives the generation pipeline.
type TerrainConfig struct {
	Size           int     `yaml:"size"`
	Type           string  `yaml:"type"` // one of the archetypes, or "random"
	Seed           int64   `yaml:"seed"` // 0 means pick a fresh seed
	NoiseLevel     float64 `yaml:"noise_level"`
	SmoothingSigma float64 `yaml:"smoothing_sigma"`
}

// SpotsConfig drives metal spot scattering.
type SpotsConfig struct {
	Count       int     `yaml:"count"`
	MinDistance float64 `yaml:"min_distance"`
	LowBand     float64 `yaml:"low_band"`
	HighBand    float64 `yaml:"high_band"`
	Margin      int     `yaml:"margin"`
}

// OutputConfig controls where artifacts land.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	PreviewSize int    `yaml:"preview_size"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			Name:        "generated_map",
			Description: "Procedurally generated terrain",
			SizeKm:      8,
		},
		Terrain: TerrainConfig{
			Size:           1024,
			Type:           "random",
			Seed:           0,
			NoiseLevel:     0.05,
			SmoothingSigma: 2.0,
		},
		Spots: SpotsConfig{
			Count:       20,
			MinDistance: 100,
			LowBand:     0.3,
			HighBand:    0.9,
		},
		Output: OutputConfig{
			Dir:         "generated_maps",
			PreviewSize: 256,
		},
	}
}

// LoadConfig reads path over the defaults. An empty path or a missing
// file is not an error; the defaults come back unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to path as YAML.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
