// Package main is the dungeongen command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "dungeongen",
	Short: "Procedural 2D dungeon generator",
	Long: `dungeongen builds tile dungeons from a seed: floor plans, walls, room
classification, props, the player spawn and enemy groups.`,
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "data/dungeon.yaml", "Path to generator config YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

// initLogging reads the logging section of the config file.
func initLogging(_ *cobra.Command, _ []string) error {
	logConfig, err := logger.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		logConfig.Level = logLevel
	}
	return logger.Initialize(logConfig)
}

// loadSettings reads the generator config and the catalog it points at.
func loadSettings() (*config.Config, *catalog.Catalog, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cfg, cat, nil
}
