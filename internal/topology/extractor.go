// Package topology classifies room floor tiles by their neighbourhood so
// props and enemies can target corners, walls or open floor.
package topology

import (
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// Extract classifies the tiles of every room.
func Extract(rooms []*dungeon.Room) {
	for _, r := range rooms {
		ExtractRoom(r)
	}
}

// ExtractRoom rebuilds the inner, corner and near-wall sets of r. Only the
// room's own floor counts as a neighbour, so tiles facing a corridor are
// treated as wall-side tiles.
//
// A tile is inner when all four cardinal neighbours are present, and
// near-wall on each side whose neighbour is missing. A tile with exactly two
// neighbours in an L whose connecting diagonal is missing is a convex corner;
// corners are removed from every near-wall set afterwards.
func ExtractRoom(r *dungeon.Room) {
	r.ResetClassification()
	floor := r.FloorTiles

	floor.Each(func(p grid.Point) {
		up := floor.Has(p.Add(grid.Up))
		down := floor.Has(p.Add(grid.Down))
		right := floor.Has(p.Add(grid.Right))
		left := floor.Has(p.Add(grid.Left))

		count := 0
		for _, present := range [4]bool{up, down, right, left} {
			if present {
				count++
			}
		}

		if !up {
			r.NearWall[dungeon.SideUp].Add(p)
		}
		if !down {
			r.NearWall[dungeon.SideDown].Add(p)
		}
		if !right {
			r.NearWall[dungeon.SideRight].Add(p)
		}
		if !left {
			r.NearWall[dungeon.SideLeft].Add(p)
		}

		if count == 2 && isConvexCorner(floor, p, up, down, right, left) {
			r.CornerTiles.Add(p)
		}
		if count == 4 {
			r.InnerTiles.Add(p)
		}
	})

	for _, side := range dungeon.Sides {
		r.NearWall[side].RemoveAll(r.CornerTiles)
	}
}

func isConvexCorner(floor *grid.PointSet, p grid.Point, up, down, right, left bool) bool {
	return (up && left && !floor.Has(p.Add(grid.UpLeft))) ||
		(up && right && !floor.Has(p.Add(grid.UpRight))) ||
		(down && left && !floor.Has(p.Add(grid.DownLeft))) ||
		(down && right && !floor.Has(p.Add(grid.DownRight)))
}
