package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/dungeonforge/internal/generator"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/internal/preview"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live dungeon preview over WebSocket",
	Long: `Serve streams the painted dungeon to WebSocket clients. Clients send
"regenerate [seed]" to rebuild the dungeon and receive the new frames.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: preview.addr from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, cat, err := loadSettings()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Preview.Addr = serveAddr
	}

	var gen *generator.Generator
	hub := preview.NewHub(cfg.Preview, func(seed int64) (string, error) {
		if seed == 0 {
			seed = generator.NewSeed()
		}
		_, stats, err := gen.Generate(seed)
		if err != nil {
			return "", err
		}
		if cfg.History.Enabled {
			if err := recordRun(cfg.History.Config, stats); err != nil {
				logger.Warning("Failed to record preview run", "seed", seed, "error", err)
			}
		}
		return fmt.Sprintf("seed %d: %d rooms, %d props, %d enemies",
			stats.Seed, stats.Rooms, stats.Props, stats.RoomEnemies+stats.CorridorEnemies), nil
	})

	gen, err = generator.New(cfg, cat, nil, hub)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = generator.NewSeed()
	}
	if _, _, err := gen.Generate(seed); err != nil {
		return fmt.Errorf("initial generation failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := hub.ListenAndServe(ctx); err != nil {
		return err
	}
	logger.Info("Preview server stopped")
	return nil
}
