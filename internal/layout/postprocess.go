package layout

import (
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// OutsideEmpty flood-fills the empty tiles reachable from beyond the floor's
// bounding box, padded by two tiles so every wall candidate is covered.
// Enclosed pockets are not part of the result.
func OutsideEmpty(floor *grid.PointSet) *grid.PointSet {
	outside := grid.NewPointSet()
	bounds, ok := floor.Bounds()
	if !ok {
		return outside
	}
	bounds = bounds.Expand(2)

	start := grid.Pt(bounds.MinX, bounds.MinY)
	outside.Add(start)
	queue := []grid.Point{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range grid.Neighbors4(current) {
			if !bounds.Contains(n) || floor.Has(n) || outside.Has(n) {
				continue
			}
			outside.Add(n)
			queue = append(queue, n)
		}
	}
	return outside
}

// FillEnclosedHoles turns every empty tile that cannot reach the outside
// into floor and returns how many tiles were added. Running it again on the
// result adds nothing.
func FillEnclosedHoles(floor *grid.PointSet) int {
	bounds, ok := floor.Bounds()
	if !ok {
		return 0
	}
	outside := OutsideEmpty(floor)

	var holes []grid.Point
	bounds.Expand(2).Each(func(p grid.Point) {
		if !floor.Has(p) && !outside.Has(p) {
			holes = append(holes, p)
		}
	})
	floor.AddAll(holes)
	return len(holes)
}

// SmoothFloor fills empty tiles with three or more cardinal floor neighbours.
// Each pass decides every tile against the floor as it was at the start of
// the pass. It returns the number of tiles added.
func SmoothFloor(floor *grid.PointSet, iterations int) int {
	added := 0
	for i := 0; i < iterations; i++ {
		bounds, ok := floor.Bounds()
		if !ok {
			return added
		}
		var dents []grid.Point
		bounds.Expand(1).Each(func(p grid.Point) {
			if !floor.Has(p) && floor.CountNeighbors4(p) >= 3 {
				dents = append(dents, p)
			}
		})
		if len(dents) == 0 {
			break
		}
		floor.AddAll(dents)
		added += len(dents)
	}
	return added
}

// ReconcileRooms rebuilds every room's floor from the final floor set. A
// room keeps its surviving original tiles and claims unowned final tiles
// inside its original bounding box grown by padding. Corridor tiles are
// never room tiles and no tile is claimed by two rooms. Empty rooms stay
// empty.
func ReconcileRooms(rooms []*dungeon.Room, final, corridors *grid.PointSet, padding int) {
	claimed := grid.NewPointSet()
	boxes := make([]grid.Bounds, len(rooms))
	next := make([]*grid.PointSet, len(rooms))

	for i, r := range rooms {
		next[i] = grid.NewPointSet()
		if r.Empty() {
			continue
		}
		box, _ := r.FloorTiles.Bounds()
		boxes[i] = box.Expand(padding)
		r.FloorTiles.Each(func(p grid.Point) {
			if final.Has(p) && !corridors.Has(p) && claimed.Add(p) {
				next[i].Add(p)
			}
		})
	}

	for i, r := range rooms {
		if r.Empty() {
			continue
		}
		final.Each(func(p grid.Point) {
			if boxes[i].Contains(p) && !corridors.Has(p) && claimed.Add(p) {
				next[i].Add(p)
			}
		})
	}

	for i, r := range rooms {
		r.FloorTiles = next[i]
		r.ResetClassification()
	}
}

// fragment is one 4-connected piece of a room's floor.
type fragment struct {
	room     int
	tiles    []grid.Point
	anchored bool
}

// AttachFragments makes every piece of every room touch a corridor. A piece
// that does not is handed to a neighbouring room piece that does, repeating
// until nothing moves; pieces left over stop being room tiles but stay
// floor. Without corridors nothing changes. It returns the number of pieces
// moved and dropped.
func AttachFragments(rooms []*dungeon.Room, corridors *grid.PointSet) (moved, dropped int) {
	if corridors.Len() == 0 {
		return 0, 0
	}
	var pieces []*fragment
	owner := make(map[grid.Point]*fragment)
	for i, r := range rooms {
		for _, tiles := range components(r.FloorTiles) {
			f := &fragment{room: i, tiles: tiles}
			for _, t := range tiles {
				owner[t] = f
				if !f.anchored && corridors.CountNeighbors4(t) > 0 {
					f.anchored = true
				}
			}
			pieces = append(pieces, f)
		}
	}

	dirty := make([]bool, len(rooms))
	for changed := true; changed; {
		changed = false
		for _, f := range pieces {
			if f.anchored {
				continue
			}
			if host := anchoredNeighbour(f, owner); host != nil {
				dirty[f.room], dirty[host.room] = true, true
				f.room = host.room
				f.anchored = true
				moved++
				changed = true
			}
		}
	}

	next := make([]*grid.PointSet, len(rooms))
	for i := range next {
		next[i] = grid.NewPointSet()
	}
	for _, f := range pieces {
		if !f.anchored {
			dirty[f.room] = true
			dropped++
			continue
		}
		next[f.room].AddAll(f.tiles)
	}
	for i, r := range rooms {
		if dirty[i] {
			r.FloorTiles = next[i]
			r.ResetClassification()
		}
	}
	return moved, dropped
}

func anchoredNeighbour(f *fragment, owner map[grid.Point]*fragment) *fragment {
	for _, t := range f.tiles {
		for _, n := range grid.Neighbors4(t) {
			if o, ok := owner[n]; ok && o != f && o.anchored {
				return o
			}
		}
	}
	return nil
}

// components splits tiles into 4-connected pieces in first-tile order.
func components(tiles *grid.PointSet) [][]grid.Point {
	seen := grid.NewPointSet()
	var out [][]grid.Point
	tiles.Each(func(start grid.Point) {
		if !seen.Add(start) {
			return
		}
		piece := []grid.Point{start}
		for i := 0; i < len(piece); i++ {
			for _, n := range grid.Neighbors4(piece[i]) {
				if tiles.Has(n) && seen.Add(n) {
					piece = append(piece, n)
				}
			}
		}
		out = append(out, piece)
	})
	return out
}
