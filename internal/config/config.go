// Package config handles generator configuration loading and management.
package config

import "github.com/samirm/terrainGen/pkg/hexasphere"

// Config holds all generator settings.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Export     ExportConfig     `yaml:"export"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GenerationConfig holds the hexasphere pipeline parameters.
type GenerationConfig struct {
	Seed         int64   `yaml:"seed"`
	Radius       float64 `yaml:"radius"`
	Subdivisions int     `yaml:"subdivisions"`
	HeightScale  float64 `yaml:"height_scale"`
	Terrain      string  `yaml:"terrain"` // "uniform" or "simplex"
	Workers      int     `yaml:"workers"` // 0 = single-threaded
}

// ExportConfig holds output settings.
type ExportConfig struct {
	Format string `yaml:"format"` // "hxw", "obj" or "json"
	Output string `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Seed:         1,
			Radius:       30,
			Subdivisions: 4,
			HeightScale:  0.5,
			Terrain:      string(hexasphere.TerrainUniform),
			Workers:      0,
		},
		Export: ExportConfig{
			Format: "hxw",
			Output: "world.hxw",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params converts the generation section into pipeline parameters.
func (c *Config) Params() hexasphere.Params {
	return hexasphere.Params{
		Seed:         c.Generation.Seed,
		Radius:       c.Generation.Radius,
		Subdivisions: c.Generation.Subdivisions,
		HeightScale:  c.Generation.HeightScale,
		Terrain:      hexasphere.TerrainMode(c.Generation.Terrain),
		Workers:      c.Generation.Workers,
	}
}
