package layout

import (
	"math/rand"

	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
)

// buildRoomsFirst partitions the dungeon with BSP, carves one room per leaf,
// links the room centers with L-shaped corridors and cleans up the result.
func (b *Builder) buildRoomsFirst() *Result {
	p := b.params.RoomsFirst
	space := grid.NewRect(b.params.Start.X, b.params.Start.Y, p.DungeonWidth, p.DungeonHeight)
	leaves := pcg.BinarySpacePartitioning(b.rng, space, p.MinRoomWidth+p.Offset, p.MinRoomHeight+p.Offset)

	rooms := make([]*dungeon.Room, 0, len(leaves))
	centers := make([]grid.Point, 0, len(leaves))
	for i, leaf := range leaves {
		var tiles *grid.PointSet
		if p.RandomRoomPlacement {
			tiles = b.blobRoom(leaf, p.Offset)
		} else {
			tiles = rectRoom(leaf, p.Offset)
		}
		rooms = append(rooms, dungeon.NewRoom(i, leaf.Center(), tiles))
		centers = append(centers, leaf.Center().Round())
	}

	corridors := ConnectRooms(b.rng, centers)

	floor := grid.NewPointSet()
	for _, r := range rooms {
		floor.Union(r.FloorTiles)
	}
	floor.Union(corridors)

	filled := FillEnclosedHoles(floor)
	smoothed := SmoothFloor(floor, b.params.SmoothIterations)
	logger.Debug("Floor post-processed", "holes_filled", filled, "dents_filled", smoothed)
	ReconcileRooms(rooms, floor, corridors, b.params.ReconcilePadding)
	moved, dropped := AttachFragments(rooms, corridors)
	logger.Debug("Room fragments attached", "moved", moved, "dropped", dropped)

	return &Result{
		Floor:     floor,
		Corridors: corridors,
		Rooms:     rooms,
	}
}

// innerBounds returns the inclusive tile range left after insetting leaf.
func innerBounds(leaf grid.Rect, offset int) grid.Bounds {
	return grid.Bounds{
		MinX: leaf.X + offset,
		MinY: leaf.Y + offset,
		MaxX: leaf.MaxX() - offset - 1,
		MaxY: leaf.MaxY() - offset - 1,
	}
}

func rectRoom(leaf grid.Rect, offset int) *grid.PointSet {
	tiles := grid.NewPointSet()
	innerBounds(leaf, offset).Each(func(p grid.Point) {
		tiles.Add(p)
	})
	return tiles
}

// blobRoom random-walks from the leaf center and keeps the tiles inside the
// inset leaf.
func (b *Builder) blobRoom(leaf grid.Rect, offset int) *grid.PointSet {
	bounds := innerBounds(leaf, offset)
	walk := pcg.RunRandomWalks(b.rng, b.params.Walk, leaf.Center().Round())
	tiles := grid.NewPointSet()
	walk.Each(func(p grid.Point) {
		if bounds.Contains(p) {
			tiles.Add(p)
		}
	})
	return tiles
}

// ConnectRooms starts at a random center and repeatedly carves a corridor to
// the nearest unvisited center. Corridors are widened with ExpandBrush.
func ConnectRooms(rng *rand.Rand, centers []grid.Point) *grid.PointSet {
	corridors := grid.NewPointSet()
	if len(centers) == 0 {
		return corridors
	}

	remaining := append([]grid.Point(nil), centers...)
	i := rng.Intn(len(remaining))
	current := remaining[i]
	remaining = append(remaining[:i], remaining[i+1:]...)

	for len(remaining) > 0 {
		j := closestIndex(current, remaining)
		next := remaining[j]
		remaining = append(remaining[:j], remaining[j+1:]...)

		corridors.Union(ExpandBrush(LCorridor(current, next)))
		current = next
	}
	return corridors
}

func closestIndex(from grid.Point, pts []grid.Point) int {
	best, bestDist := 0, -1.0
	for i, p := range pts {
		d := grid.Euclidean(from, p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// LCorridor returns the path from a to b moving vertically first, then
// horizontally. Both endpoints are included.
func LCorridor(a, b grid.Point) []grid.Point {
	path := []grid.Point{a}
	pos := a
	for pos.Y != b.Y {
		if b.Y > pos.Y {
			pos = pos.Add(grid.Up)
		} else {
			pos = pos.Add(grid.Down)
		}
		path = append(path, pos)
	}
	for pos.X != b.X {
		if b.X > pos.X {
			pos = pos.Add(grid.Right)
		} else {
			pos = pos.Add(grid.Left)
		}
		path = append(path, pos)
	}
	return path
}
