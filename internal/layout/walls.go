package layout

import (
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// FindWalls returns the wall tiles around floor. Only empty tiles connected
// to the outside become walls. Cardinal neighbours of floor are basic walls;
// diagonal-only neighbours are corner walls.
func FindWalls(floor *grid.PointSet) []dungeon.Wall {
	outside := OutsideEmpty(floor)

	basic := grid.NewPointSet()
	floor.Each(func(p grid.Point) {
		for _, d := range grid.Cardinal {
			n := p.Add(d)
			if !floor.Has(n) && outside.Has(n) {
				basic.Add(n)
			}
		}
	})

	corner := grid.NewPointSet()
	floor.Each(func(p grid.Point) {
		for _, d := range grid.Diagonal {
			n := p.Add(d)
			if !floor.Has(n) && outside.Has(n) && !basic.Has(n) {
				corner.Add(n)
			}
		}
	})

	walls := make([]dungeon.Wall, 0, basic.Len()+corner.Len())
	basic.Each(func(p grid.Point) {
		walls = append(walls, dungeon.Wall{Pos: p, Kind: dungeon.WallBasic, Pattern: CardinalPattern(floor, p)})
	})
	corner.Each(func(p grid.Point) {
		walls = append(walls, dungeon.Wall{Pos: p, Kind: dungeon.WallCorner, Pattern: EightPattern(floor, p)})
	})
	return walls
}

// CardinalPattern encodes which cardinal neighbours of p are floor, up in
// the highest of four bits, then right, down and left.
func CardinalPattern(floor *grid.PointSet, p grid.Point) uint8 {
	var bits uint8
	for i, d := range grid.Cardinal {
		if floor.Has(p.Add(d)) {
			bits |= 1 << (len(grid.Cardinal) - 1 - i)
		}
	}
	return bits
}

// EightPattern encodes all eight neighbours of p clockwise from up, up in
// the highest bit.
func EightPattern(floor *grid.PointSet, p grid.Point) uint8 {
	var bits uint8
	for i, d := range grid.Eight {
		if floor.Has(p.Add(d)) {
			bits |= 1 << (len(grid.Eight) - 1 - i)
		}
	}
	return bits
}

// Paint sends floor and walls to painter, clearing it first.
func Paint(painter dungeon.TilePainter, floor *grid.PointSet, walls []dungeon.Wall) {
	if painter == nil {
		return
	}
	painter.Clear()
	painter.PaintFloorTiles(floor.Points())
	painter.PaintWalls(walls)
}
