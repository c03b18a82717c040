package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/export"
)

func TestParseSeedRange(t *testing.T) {
	tests := []struct {
		input      string
		start, end int64
		wantErr    bool
	}{
		{"5", 5, 5, false},
		{"1-25", 1, 25, false},
		{" 3 - 4 ", 3, 4, false},
		{"0", 0, 0, true},
		{"9-2", 0, 0, true},
		{"a-b", 0, 0, true},
		{"1-2-3", 0, 0, true},
	}

	for _, tt := range tests {
		start, end, err := parseSeedRange(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.start, start, tt.input)
		assert.Equal(t, tt.end, end, tt.input)
	}
}

func TestBatchGenerator_WritesSnapshots(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewBatchGenerator(config.DefaultConfig(), catalog.Default(), dir)
	require.NoError(t, err)

	for seed := int64(1); seed <= 2; seed++ {
		path, err := gen.GenerateSeed(seed)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, fmt.Sprintf("seed_%d.yaml", seed)), path)

		snapshot, err := export.ReadYAML(path)
		require.NoError(t, err)
		assert.Equal(t, seed, snapshot.Seed)
		assert.NotEmpty(t, snapshot.Floor)
	}
}
