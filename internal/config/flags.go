package config

import "flag"

// Flags live on their own FlagSet so subcommands can pass just their
// own arguments.
var flags = flag.NewFlagSet("hexgen", flag.ExitOnError)

var (
	flagConfig       = flags.String("config", "", "Path to config file")
	flagDebug        = flags.Bool("debug", false, "Enable debug logging")
	flagSeed         = flags.Int64("seed", 0, "Generation seed")
	flagSubdivisions = flags.Int("subdivisions", -1, "Icosahedron subdivision level (0-6)")
	flagRadius       = flags.Float64("radius", 0, "Sphere radius in world units")
	flagHeightScale  = flags.Float64("height-scale", -1, "World units per height level")
	flagTerrain      = flags.String("terrain", "", "Terrain mode: uniform or simplex")
	flagWorkers      = flags.Int("workers", -1, "Worker pool size (0 = single-threaded)")
	flagFormat       = flags.String("format", "", "Export format: hxw, obj or json")
	flagOutput       = flags.String("output", "", "Output file path")
)

// ParseFlags parses command-line flags. Call this early in main(),
// after stripping the subcommand name.
func ParseFlags(args []string) {
	flags.Parse(args)
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config. Zero values mean
// "not set" for flags whose real range excludes them; subdivisions,
// height scale and workers use negative sentinels because zero is
// meaningful for them.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Generation.Seed = *flagSeed
	}
	if *flagSubdivisions >= 0 {
		cfg.Generation.Subdivisions = *flagSubdivisions
	}
	if *flagRadius > 0 {
		cfg.Generation.Radius = *flagRadius
	}
	if *flagHeightScale >= 0 {
		cfg.Generation.HeightScale = *flagHeightScale
	}
	if *flagTerrain != "" {
		cfg.Generation.Terrain = *flagTerrain
	}
	if *flagWorkers >= 0 {
		cfg.Generation.Workers = *flagWorkers
	}
	if *flagFormat != "" {
		cfg.Export.Format = *flagFormat
	}
	if *flagOutput != "" {
		cfg.Export.Output = *flagOutput
	}
}
