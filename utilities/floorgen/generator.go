package main

import (
	"fmt"
	"path/filepath"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/export"
	"github.com/lawnchairsociety/dungeonforge/internal/generator"
)

// BatchGenerator generates dungeons and writes them as snapshots.
type BatchGenerator struct {
	OutputDir string
	gen       *generator.Generator
}

// NewBatchGenerator creates a batch generator writing into outputDir.
func NewBatchGenerator(cfg *config.Config, cat *catalog.Catalog, outputDir string) (*BatchGenerator, error) {
	gen, err := generator.New(cfg, cat, nil, nil)
	if err != nil {
		return nil, err
	}
	return &BatchGenerator{OutputDir: outputDir, gen: gen}, nil
}

// GenerateSeed generates one dungeon and writes it to seed_<seed>.yaml.
func (b *BatchGenerator) GenerateSeed(seed int64) (string, error) {
	data, stats, err := b.gen.Generate(seed)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	snapshot := export.FromDungeon(data, export.Meta{
		Seed:        stats.Seed,
		Mode:        string(stats.Mode),
		Fingerprint: stats.Fingerprint,
	})

	path := filepath.Join(b.OutputDir, fmt.Sprintf("seed_%d.yaml", seed))
	if err := export.WriteYAML(path, snapshot); err != nil {
		return "", err
	}
	return path, nil
}
