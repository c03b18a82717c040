package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/config"
)

func TestRunPlacementSim(t *testing.T) {
	result := RunPlacementSim(config.DefaultConfig(), catalog.Default(), SeedRange(1, 5))

	require.Equal(t, 5, result.Dungeons)
	assert.Zero(t, result.Failures)
	assert.Positive(t, result.AvgRooms)
	assert.Zero(t, result.PlayerRoomEnemies)

	var variants, types int
	for _, n := range result.VariantCounts {
		variants += n
	}
	for _, n := range result.TypeCounts {
		types += n
	}
	assert.Equal(t, variants, types)
	assert.InDelta(t, result.AvgRoomEnemies+result.AvgCorridorEnemies, float64(types)/5, 1e-9)

	for _, b := range result.Buckets {
		assert.Less(t, b.Low, b.High)
		assert.Positive(t, b.Rooms)
	}
}

func TestRunPlacementSim_Deterministic(t *testing.T) {
	a := RunPlacementSim(config.DefaultConfig(), nil, SeedRange(10, 3))
	b := RunPlacementSim(config.DefaultConfig(), nil, SeedRange(10, 3))
	assert.Equal(t, a, b)
}

func TestSeedRange(t *testing.T) {
	assert.Equal(t, []int64{4, 5, 6}, SeedRange(4, 3))
	assert.Empty(t, SeedRange(1, 0))
}
