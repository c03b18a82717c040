package layout

import (
	"math"

	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
)

// buildCorridorFirst chains corridors end to end, grows rooms on a share of
// the corridor endpoints and on every dead end, then widens the corridors.
func (b *Builder) buildCorridorFirst() *Result {
	p := b.params.CorridorFirst

	paths := grid.NewPointSet()
	anchors := grid.NewPointSet(b.params.Start)
	var corridors [][]grid.Point

	current := b.params.Start
	for i := 0; i < p.CorridorCount; i++ {
		corridor := pcg.RandomWalkCorridor(b.rng, current, p.CorridorLength)
		corridors = append(corridors, corridor)
		current = corridor[len(corridor)-1]
		anchors.Add(current)
		paths.AddAll(corridor)
	}

	var blobs []*grid.PointSet
	roomFloors := grid.NewPointSet()

	candidates := anchors.Points()
	roomsToCreate := int(math.Round(float64(len(candidates)) * pcg.Clamp01(p.RoomPercent)))
	pcg.Shuffle(b.rng, candidates)
	for _, anchor := range candidates[:roomsToCreate] {
		blob := pcg.RunRandomWalks(b.rng, b.params.Walk, anchor)
		roomFloors.Union(blob)
		blobs = append(blobs, blob)
	}

	for _, end := range FindDeadEnds(paths) {
		if roomFloors.Has(end) {
			continue
		}
		blob := pcg.RunRandomWalks(b.rng, b.params.Walk, end)
		roomFloors.Union(blob)
		blobs = append(blobs, blob)
	}

	corridorTiles := grid.NewPointSet()
	for _, corridor := range corridors {
		corridorTiles.Union(ExpandBrush(corridor))
	}

	floor := roomFloors.Clone()
	floor.Union(corridorTiles)

	rooms := roomsFromBlobs(blobs, corridorTiles)
	moved, dropped := AttachFragments(rooms, corridorTiles)
	logger.Debug("Room fragments attached", "moved", moved, "dropped", dropped)

	return &Result{
		Floor:     floor,
		Corridors: corridorTiles,
		Rooms:     rooms,
	}
}

// FindDeadEnds returns the tiles of floor with exactly one cardinal floor
// neighbour.
func FindDeadEnds(floor *grid.PointSet) []grid.Point {
	var ends []grid.Point
	floor.Each(func(p grid.Point) {
		if floor.CountNeighbors4(p) == 1 {
			ends = append(ends, p)
		}
	})
	return ends
}

// roomsFromBlobs turns overlapping blobs into disjoint rooms. A tile belongs
// to the first blob that reached it; corridor tiles belong to no room.
func roomsFromBlobs(blobs []*grid.PointSet, corridors *grid.PointSet) []*dungeon.Room {
	owned := grid.NewPointSet()
	rooms := make([]*dungeon.Room, 0, len(blobs))
	for _, blob := range blobs {
		tiles := blob.Without(grid.AnyOf(owned, corridors))
		owned.Union(tiles)
		rooms = append(rooms, dungeon.NewRoom(len(rooms), centroid(blob), tiles))
	}
	return rooms
}
