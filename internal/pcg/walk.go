// Package pcg holds the stateless procedural generation algorithms: random
// walks, binary space partitioning and the seeded random helpers shared by
// the placement engines.
package pcg

import (
	"math/rand"

	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// WalkParams configures RunRandomWalks.
type WalkParams struct {
	Iterations    int  `yaml:"iterations"`
	WalkLength    int  `yaml:"walk_length"`
	StartRandomly bool `yaml:"start_randomly"`
}

// RandomStep returns one of the four cardinal directions uniformly.
func RandomStep(rng *rand.Rand) grid.Point {
	return grid.Cardinal[rng.Intn(len(grid.Cardinal))]
}

// RandomWalk walks length steps from start and returns every visited tile,
// start included.
func RandomWalk(rng *rand.Rand, start grid.Point, length int) *grid.PointSet {
	path := grid.NewPointSet(start)
	current := start
	for i := 0; i < length; i++ {
		current = current.Add(RandomStep(rng))
		path.Add(current)
	}
	return path
}

// RandomWalkCorridor uses the same step rule as RandomWalk but returns the
// ordered path, repeats included. The last element is the corridor end.
func RandomWalkCorridor(rng *rand.Rand, start grid.Point, length int) []grid.Point {
	if length < 0 {
		length = 0
	}
	path := make([]grid.Point, 0, length+1)
	path = append(path, start)
	current := start
	for i := 0; i < length; i++ {
		current = current.Add(RandomStep(rng))
		path = append(path, current)
	}
	return path
}

// RunRandomWalks unions params.Iterations walks. With StartRandomly each walk
// after the first begins at a uniformly chosen tile already visited.
func RunRandomWalks(rng *rand.Rand, params WalkParams, start grid.Point) *grid.PointSet {
	floor := grid.NewPointSet()
	current := start
	for i := 0; i < params.Iterations; i++ {
		floor.Union(RandomWalk(rng, current, params.WalkLength))
		if params.StartRandomly {
			current = floor.At(rng.Intn(floor.Len()))
		}
	}
	return floor
}
