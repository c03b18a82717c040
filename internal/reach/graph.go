// Package reach answers which room tiles a player entering from a corridor
// can actually walk to.
package reach

import (
	"math/rand"

	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
)

// DistanceMap holds BFS distances from an entry tile. Points come back in
// visit order.
type DistanceMap struct {
	dist  map[grid.Point]int
	order []grid.Point
}

// Distance returns the step count to p.
func (m *DistanceMap) Distance(p grid.Point) (int, bool) {
	d, ok := m.dist[p]
	return d, ok
}

// Len returns the number of reachable tiles.
func (m *DistanceMap) Len() int {
	return len(m.order)
}

// Points returns reachable tiles in visit order, nearest first.
func (m *DistanceMap) Points() []grid.Point {
	return append([]grid.Point(nil), m.order...)
}

// RoomGraph walks a room's floor with 4-connectivity.
type RoomGraph struct {
	floor *grid.PointSet
}

// NewRoomGraph creates a graph over floor.
func NewRoomGraph(floor *grid.PointSet) *RoomGraph {
	return &RoomGraph{floor: floor}
}

// RunBFS returns the distance to every floor tile reachable from entry
// without crossing an occupied tile. The map is empty when entry itself is
// off the floor or occupied.
func (g *RoomGraph) RunBFS(entry grid.Point, occupied grid.Blocker) *DistanceMap {
	m := &DistanceMap{dist: make(map[grid.Point]int)}
	if !g.floor.Has(entry) || blocked(occupied, entry) {
		return m
	}

	m.dist[entry] = 0
	m.order = append(m.order, entry)
	queue := []grid.Point{entry}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range grid.Neighbors4(current) {
			if _, seen := m.dist[n]; seen {
				continue
			}
			if !g.floor.Has(n) || blocked(occupied, n) {
				continue
			}
			m.dist[n] = m.dist[current] + 1
			m.order = append(m.order, n)
			queue = append(queue, n)
		}
	}
	return m
}

func blocked(b grid.Blocker, p grid.Point) bool {
	return b != nil && b.Has(p)
}

// FindEntry returns the first room tile, in floor order, with a cardinal
// neighbour in corridors.
func FindEntry(floor, corridors *grid.PointSet) (grid.Point, bool) {
	var (
		entry grid.Point
		found bool
	)
	floor.Each(func(p grid.Point) {
		if found {
			return
		}
		for _, n := range grid.Neighbors4(p) {
			if corridors.Has(n) {
				entry, found = p, true
				return
			}
		}
	})
	return entry, found
}

// AccessibleTiles returns the shuffled tiles reachable from the room's
// corridor entry. ok is false when the room has no usable entry; callers
// then use FallbackTiles.
func AccessibleTiles(rng *rand.Rand, floor, corridors *grid.PointSet, occupied grid.Blocker) (tiles []grid.Point, ok bool) {
	entry, found := FindEntry(floor, corridors)
	if !found {
		return nil, false
	}
	reachable := NewRoomGraph(floor).RunBFS(entry, occupied)
	if reachable.Len() == 0 {
		return nil, false
	}
	tiles = reachable.Points()
	pcg.Shuffle(rng, tiles)
	return tiles, true
}

// FallbackTiles returns every unoccupied floor tile, shuffled.
func FallbackTiles(rng *rand.Rand, floor *grid.PointSet, occupied grid.Blocker) []grid.Point {
	tiles := floor.Without(occupied).Points()
	pcg.Shuffle(rng, tiles)
	return tiles
}
