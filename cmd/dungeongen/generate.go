package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/dungeonforge/internal/database"
	"github.com/lawnchairsociety/dungeonforge/internal/export"
	"github.com/lawnchairsociety/dungeonforge/internal/generator"
	"github.com/lawnchairsociety/dungeonforge/internal/layout"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
)

var (
	genSeed   int64
	genMode   string
	genOutput string
	genASCII  bool
	genLegend bool
	genRecord bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one dungeon",
	Long: `Generate a dungeon from the config file, optionally saving a YAML snapshot,
printing an ASCII map and recording the run in the history database.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Generation seed (default: config seed, or random)")
	generateCmd.Flags().StringVar(&genMode, "mode", "", "Layout mode: random_walk, corridor_first or rooms_first")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Write a YAML snapshot to this file")
	generateCmd.Flags().BoolVar(&genASCII, "ascii", false, "Print the dungeon as an ASCII map")
	generateCmd.Flags().BoolVar(&genLegend, "legend", false, "Include the glyph legend with --ascii")
	generateCmd.Flags().BoolVar(&genRecord, "record", false, "Record the run in the history database")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, cat, err := loadSettings()
	if err != nil {
		return err
	}
	if genMode != "" {
		cfg.Layout.Mode = layout.Mode(genMode)
	}

	seed := genSeed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = generator.NewSeed()
		logger.Info("Seed selected", "seed", seed, "random", true)
	} else {
		logger.Info("Seed selected", "seed", seed, "random", false)
	}

	gen, err := generator.New(cfg, cat, nil, nil)
	if err != nil {
		return err
	}
	data, stats, err := gen.Generate(seed)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	for _, skipped := range stats.Skipped {
		logger.Warning("Placement pass skipped", "error", skipped)
	}

	snapshot := export.FromDungeon(data, export.Meta{
		Seed:        stats.Seed,
		Mode:        string(stats.Mode),
		Fingerprint: stats.Fingerprint,
	})

	if genOutput != "" {
		if err := export.WriteYAML(genOutput, snapshot); err != nil {
			return err
		}
		logger.Info("Snapshot written", "path", genOutput)
	}

	if genRecord || cfg.History.Enabled {
		if err := recordRun(cfg.History.Config, stats); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if genASCII {
		fmt.Fprint(out, export.RenderASCII(snapshot, genLegend))
		fmt.Fprintln(out)
		fmt.Fprint(out, export.RoomSummary(snapshot))
	} else {
		fmt.Fprintf(out, "seed=%d mode=%s rooms=%d floor=%d corridors=%d props=%d enemies=%d duration=%s\n",
			stats.Seed, stats.Mode, stats.Rooms, stats.FloorTiles, stats.CorridorTiles,
			stats.Props, stats.RoomEnemies+stats.CorridorEnemies, stats.Duration)
	}
	return nil
}

// recordRun saves stats to the history database. A repeat of an already
// recorded seed and config is not an error.
func recordRun(dbCfg database.Config, stats generator.Stats) error {
	db, err := database.OpenWithConfig(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	run := runFromStats(stats)
	if err := db.SaveRun(run); err != nil {
		if errors.Is(err, database.ErrRunExists) {
			logger.Info("Run already recorded", "seed", stats.Seed, "fingerprint", stats.Fingerprint)
			return nil
		}
		return fmt.Errorf("failed to record run: %w", err)
	}
	logger.Info("Run recorded", "id", run.ID, "seed", run.Seed)
	return nil
}

func runFromStats(stats generator.Stats) *database.Run {
	return &database.Run{
		Seed:            stats.Seed,
		Mode:            string(stats.Mode),
		Fingerprint:     stats.Fingerprint,
		Rooms:           stats.Rooms,
		FloorTiles:      stats.FloorTiles,
		CorridorTiles:   stats.CorridorTiles,
		Props:           stats.Props,
		Enemies:         stats.RoomEnemies,
		CorridorEnemies: stats.CorridorEnemies,
		Skipped:         len(stats.Skipped),
		Duration:        stats.Duration,
	}
}
