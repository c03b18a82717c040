// balance is a Monte Carlo report for tuning dungeon population.
//
// Usage:
//
//	balance [command] [options]
//
// Commands:
//
//	placement  - Aggregate enemy and prop placement over many seeds
//	modes      - Compare the three layout modes
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/layout"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/utilities/balance"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "placement":
		runPlacementSim()
	case "modes":
		runModeSim()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`DungeonForge Balance Report

Generates many dungeons and aggregates how they were populated.

Usage: balance <command> [options]

Commands:
  placement  Aggregate enemy and prop placement over many seeds
  modes      Compare the three layout modes

Examples:
  balance placement -runs=500 -difficulty=0.2
  balance modes -runs=200

Use "balance <command> -h" for more information about a command.`)
}

// commonFlags registers the flags shared by every command.
func commonFlags(fs *flag.FlagSet) (configFile *string, runs *int, first *int64) {
	configFile = fs.String("config", "data/dungeon.yaml", "Path to generator config YAML file")
	runs = fs.Int("runs", 200, "Number of dungeons to generate")
	first = fs.Int64("seed", 1, "First seed")
	return configFile, runs, first
}

func load(configFile string) (*config.Config, *catalog.Catalog) {
	logConfig, _ := logger.LoadConfig(configFile)
	logConfig.Level = "ERROR"
	logger.Initialize(logConfig)

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	return cfg, cat
}

func runPlacementSim() {
	fs := flag.NewFlagSet("placement", flag.ExitOnError)
	configFile, runs, first := commonFlags(fs)
	mode := fs.String("mode", "", "Layout mode override")
	difficulty := fs.Float64("difficulty", -1, "Override agents.difficulty_per_room")
	fs.Parse(os.Args[2:])

	cfg, cat := load(*configFile)
	if *mode != "" {
		cfg.Layout.Mode = layout.Mode(*mode)
	}
	if *difficulty >= 0 {
		cfg.Agents.DifficultyPerRoom = *difficulty
	}

	fmt.Println("=== Placement Simulation ===")
	fmt.Println()
	fmt.Printf("Mode: %s, difficulty per room %.2f, distance bonus %.2f\n",
		cfg.Layout.Mode, cfg.Agents.DifficultyPerRoom, cfg.Agents.DistanceBonus)
	fmt.Printf("Seeds: %d-%d\n", *first, *first+int64(*runs)-1)
	fmt.Println()

	result := balance.RunPlacementSim(cfg, cat, balance.SeedRange(*first, *runs))
	printPlacementResult(result)
}

func runModeSim() {
	fs := flag.NewFlagSet("modes", flag.ExitOnError)
	configFile, runs, first := commonFlags(fs)
	fs.Parse(os.Args[2:])

	cfg, cat := load(*configFile)
	seeds := balance.SeedRange(*first, *runs)

	fmt.Println("=== Layout Mode Comparison ===")
	fmt.Println()
	fmt.Println("Mode           | Rooms | Props | Room Enemies | Corridor Enemies | Elite % | Failures")
	fmt.Println("---------------+-------+-------+--------------+------------------+---------+---------")
	for _, mode := range []layout.Mode{layout.ModeRandomWalk, layout.ModeCorridorFirst, layout.ModeRoomsFirst} {
		modeCfg := *cfg
		modeCfg.Layout.Mode = mode
		r := balance.RunPlacementSim(&modeCfg, cat, seeds)
		fmt.Printf("%-14s | %5.1f | %5.1f | %12.1f | %16.1f | %6.1f%% | %8d\n",
			mode, r.AvgRooms, r.AvgProps, r.AvgRoomEnemies, r.AvgCorridorEnemies, r.EliteRate, r.Failures)
	}
}

func printPlacementResult(r balance.PlacementResult) {
	fmt.Printf("Dungeons:              %d (%d failed)\n", r.Dungeons, r.Failures)
	fmt.Printf("Avg Rooms:             %.1f\n", r.AvgRooms)
	fmt.Printf("Avg Props:             %.1f\n", r.AvgProps)
	fmt.Printf("Avg Room Enemies:      %.1f\n", r.AvgRoomEnemies)
	fmt.Printf("Avg Corridor Enemies:  %.1f\n", r.AvgCorridorEnemies)
	fmt.Printf("Empty Rooms:           %d\n", r.EmptyRooms)
	fmt.Printf("Elite Rate:            %.1f%%\n", r.EliteRate)
	if r.PlayerRoomEnemies > 0 {
		fmt.Printf("WARNING: %d enemies placed in the player room\n", r.PlayerRoomEnemies)
	}
	fmt.Println()

	fmt.Println("Variants:")
	for i, count := range r.VariantCounts {
		fmt.Printf("  %-9s %d\n", catalog.VariantIndex(i).String(), count)
	}
	fmt.Println()

	fmt.Println("Enemy Types:")
	types := make([]string, 0, len(r.TypeCounts))
	for name := range r.TypeCounts {
		types = append(types, name)
	}
	sort.Strings(types)
	for _, name := range types {
		fmt.Printf("  %-12s %d\n", name, r.TypeCounts[name])
	}
	fmt.Println()

	fmt.Println("Difficulty   | Rooms | Avg Enemies | Avg Threat | Elite %")
	fmt.Println("-------------+-------+-------------+------------+--------")
	for _, b := range r.Buckets {
		fmt.Printf("%4.2f - %4.2f  | %5d | %11.2f | %10.1f | %5.1f%%\n",
			b.Low, b.High, b.Rooms, b.AvgEnemies, b.AvgThreat, b.EliteRate)
	}
	fmt.Println(strings.Repeat("-", 60))
}
