// hexgen is a CLI utility that generates hexasphere terrain worlds and
// exports them for rendering and tooling consumers.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/samirm/terrainGen/internal/config"
	"github.com/samirm/terrainGen/internal/logger"
	"github.com/samirm/terrainGen/pkg/formats"
	"github.com/samirm/terrainGen/pkg/hexasphere"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hexgen - hexasphere terrain world generator

Usage:
  hexgen <command> [options]

Commands:
  generate [options]   Generate a world and write it to the export target
  info <file.hxw>      Show statistics for a generated world file

Generate options:
  -config path       Config file (default: ./config.yaml if present)
  -seed N            Generation seed
  -subdivisions N    Icosahedron subdivision level (0-6)
  -radius R          Sphere radius in world units
  -height-scale S    World units per height level
  -terrain mode      uniform or simplex
  -workers N         Worker pool size (0 = single-threaded)
  -format f          hxw, obj or json
  -output path       Output file
  -debug             Enable debug logging

Examples:
  hexgen generate -seed 42 -subdivisions 5 -output world.hxw
  hexgen generate -terrain simplex -format obj -output world.obj
  hexgen info world.hxw`)
}

func cmdGenerate(args []string) {
	config.ParseFlags(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	params := cfg.Params()
	logger.Info("generating hexasphere",
		zap.Int64("seed", params.Seed),
		zap.Int("subdivisions", params.Subdivisions),
		zap.Float64("radius", params.Radius),
		zap.Float64("height_scale", params.HeightScale),
		zap.String("terrain", string(params.Terrain)),
		zap.Int("workers", params.Workers),
	)

	start := time.Now()
	world, err := hexasphere.Generate(params)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	for _, w := range world.Report.Warnings {
		logger.Warn("skipped triangle",
			zap.String("stage", w.Stage),
			zap.Int("triangle", w.Triangle),
			zap.Int("vertex", w.Vertex),
		)
	}

	logger.Info("world generated",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("tiles", world.Stats.Tiles),
		zap.Int("pentagons", world.Stats.Pentagons),
		zap.Int("hexagons", world.Stats.Hexagons),
		zap.Int("corners", world.Stats.Corners),
		zap.Int("degenerate", world.Stats.Degenerate),
	)

	if err := export(world, cfg.Export); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("world written",
		zap.String("path", cfg.Export.Output),
		zap.String("format", cfg.Export.Format),
	)
}

func export(world *hexasphere.Hexasphere, cfg config.ExportConfig) error {
	switch cfg.Format {
	case "hxw":
		return formats.WriteHXWFile(cfg.Output, world)
	case "obj", "json":
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		if cfg.Format == "obj" {
			return formats.WriteOBJ(f, world)
		}
		return formats.WriteJSON(f, world)
	default:
		return fmt.Errorf("unknown export format: %q", cfg.Format)
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hexgen info <file.hxw>")
		os.Exit(1)
	}

	world, err := formats.ParseHXWFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("World:        %s\n", args[0])
	fmt.Printf("Format:       HXW %s\n", world.Version)
	fmt.Printf("Seed:         %d\n", world.Seed)
	fmt.Printf("Radius:       %g\n", world.Radius)
	fmt.Printf("Subdivisions: %d\n", world.Subdivisions)
	fmt.Printf("Height scale: %g\n", world.HeightScale)
	fmt.Printf("Terrain mode: %s\n", world.Terrain)
	fmt.Printf("Tiles:        %d (%d pentagons)\n", len(world.Tiles), world.Pentagons())

	counts := world.CountByTerrain()
	water := 0
	for category, n := range counts {
		if category.IsWater() {
			water += n
		}
	}
	if len(world.Tiles) > 0 {
		fmt.Printf("Water:        %.1f%%\n", 100*float64(water)/float64(len(world.Tiles)))
	}

	fmt.Println()
	fmt.Println("Tiles by terrain:")

	// Sort categories from lowest to highest elevation.
	categories := make([]hexasphere.TerrainCategory, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	for _, category := range categories {
		fmt.Printf("  %-11s %d\n", category, counts[category])
	}
}
