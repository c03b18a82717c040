package pcg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

func TestRandomWalkStepsAreCardinal(t *testing.T) {
	path := RandomWalkCorridor(NewRand(3), grid.Pt(0, 0), 25)
	require.Len(t, path, 26)
	assert.Equal(t, grid.Pt(0, 0), path[0])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, grid.Manhattan(path[i-1], path[i]))
	}
}

func TestRandomWalkIncludesStart(t *testing.T) {
	walk := RandomWalk(NewRand(9), grid.Pt(4, -2), 12)
	assert.True(t, walk.Has(grid.Pt(4, -2)))
	assert.LessOrEqual(t, walk.Len(), 13)
}

func TestRunRandomWalksDeterministic(t *testing.T) {
	params := WalkParams{Iterations: 5, WalkLength: 10, StartRandomly: true}
	first := RunRandomWalks(NewRand(42), params, grid.Pt(0, 0))
	second := RunRandomWalks(NewRand(42), params, grid.Pt(0, 0))

	assert.Equal(t, first.Points(), second.Points())
	assert.True(t, first.Has(grid.Pt(0, 0)))
}

func TestRunRandomWalksFixedStart(t *testing.T) {
	params := WalkParams{Iterations: 3, WalkLength: 0}
	floor := RunRandomWalks(NewRand(1), params, grid.Pt(7, 7))
	assert.Equal(t, []grid.Point{grid.Pt(7, 7)}, floor.Points())
}

func TestBSPLeafMinimum(t *testing.T) {
	space := grid.NewRect(0, 0, 20, 20)
	for seed := int64(0); seed < 200; seed++ {
		leaves := BinarySpacePartitioning(NewRand(seed), space, 6, 6)
		require.NotEmpty(t, leaves)

		area := 0
		for _, leaf := range leaves {
			assert.GreaterOrEqual(t, leaf.W, 6, "seed %d leaf %v", seed, leaf)
			assert.GreaterOrEqual(t, leaf.H, 6, "seed %d leaf %v", seed, leaf)
			area += leaf.Area()
		}
		assert.Equal(t, space.Area(), area, "leaves tile the space")
	}
}

func TestBSPUnsplittableRegionIsSingleLeaf(t *testing.T) {
	space := grid.NewRect(3, 3, 4, 9)
	leaves := BinarySpacePartitioning(NewRand(5), space, 6, 6)
	assert.Equal(t, []grid.Rect{space}, leaves)
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(NewRand(11), items)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items)

	again := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(NewRand(11), again)
	assert.Equal(t, items, again)
}

func TestWeightedPick(t *testing.T) {
	rng := NewRand(2)
	assert.Equal(t, -1, WeightedPick(rng, 0, nil))

	weights := []float64{0, 3, 0, -4}
	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, WeightedPick(rng, len(weights), func(i int) float64 { return weights[i] }))
	}

	zero := []float64{0, 0, 0}
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[WeightedPick(rng, len(zero), func(i int) float64 { return zero[i] })] = true
	}
	assert.Len(t, seen, 3, "all-zero weights fall back to uniform")
}

// zeroSource makes every Float64 draw exactly 0.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64) {}

func TestWeightedPickSkipsZeroWeightOnZeroDraw(t *testing.T) {
	rng := rand.New(zeroSource{})
	weights := []float64{0, -1, 2, 5}
	assert.Equal(t, 2, WeightedPick(rng, len(weights), func(i int) float64 { return weights[i] }))
}

func TestRangeInclusive(t *testing.T) {
	rng := NewRand(8)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := RangeInclusive(rng, 4, 1)
		require.True(t, v >= 1 && v <= 4)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestLerpHelpers(t *testing.T) {
	assert.InDelta(t, 0.225, Lerp(0.1, 0.35, 0.5), 1e-9)
	assert.InDelta(t, 0.35, Lerp(0.1, 0.35, 2), 1e-9)
	assert.InDelta(t, 0.5, InverseLerp(1, 3, 2), 1e-9)
	assert.Equal(t, 0.0, InverseLerp(2, 2, 5))
	assert.Equal(t, 6, ClampInt(9, 3, 6))
}
