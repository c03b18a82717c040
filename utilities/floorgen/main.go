// floorgen writes a batch of dungeon snapshots, one per seed.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/layout"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
)

func main() {
	configFile := flag.String("config", "data/dungeon.yaml", "Path to generator config YAML file")
	seeds := flag.String("seeds", "", "Seed range to generate (e.g., 1-25 or 5)")
	mode := flag.String("mode", "", "Layout mode override")
	outDir := flag.String("out", "data/snapshots", "Output directory")
	flag.Parse()

	if *seeds == "" {
		fmt.Fprintln(os.Stderr, "Error: --seeds is required (e.g., --seeds=1-25 or --seeds=5)")
		flag.Usage()
		os.Exit(1)
	}

	startSeed, endSeed, err := parseSeedRange(*seeds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid seed range: %v\n", err)
		os.Exit(1)
	}

	// Only warnings and worse; progress goes to stdout.
	logConfig, _ := logger.LoadConfig(*configFile)
	logConfig.Level = "WARNING"
	logger.Initialize(logConfig)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Layout.Mode = layout.Mode(*mode)
	}
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	gen, err := NewBatchGenerator(cfg, cat, *outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generating seeds %d-%d (mode: %s)\n", startSeed, endSeed, cfg.Layout.Mode)
	fmt.Printf("Output directory: %s\n\n", *outDir)

	for seed := startSeed; seed <= endSeed; seed++ {
		fmt.Printf("Generating seed %d... ", seed)
		path, err := gen.GenerateSeed(seed)
		if err != nil {
			fmt.Printf("FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK (%s)\n", path)
	}

	fmt.Printf("\nSuccessfully generated %d dungeon(s)\n", endSeed-startSeed+1)
}

// parseSeedRange parses a seed range string like "1-25" or "5"
func parseSeedRange(s string) (start, end int64, err error) {
	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("invalid range format, expected 'start-end'")
		}
		start, err = strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid start seed: %w", err)
		}
		end, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid end seed: %w", err)
		}
	} else {
		start, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid seed: %w", err)
		}
		end = start
	}

	if start < 1 {
		return 0, 0, fmt.Errorf("seeds must be >= 1 (seed 0 means random)")
	}
	if end < start {
		return 0, 0, fmt.Errorf("end seed must be >= start seed")
	}

	return start, end, nil
}
