package props

import (
	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// Corner is the footprint corner pinned to the origin tile. Multi-tile props
// grow away from the wall they are placed against.
type Corner int

const (
	BottomLeft Corner = iota
	BottomRight
	TopLeft
	TopRight
)

// String returns the corner name.
func (c Corner) String() string {
	switch c {
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	default:
		return "unknown"
	}
}

// span returns the inclusive offset range along one axis.
func span(size int, negative bool) (lo, hi int) {
	if negative {
		return -size + 1, 0
	}
	return 0, size - 1
}

// TryToFitProp returns the footprint tiles of def that lie in available when
// its corner is pinned to origin. The prop fits only if every tile is
// returned.
func TryToFitProp(def *catalog.PropDefinition, available *grid.PointSet, origin grid.Point, corner Corner) []grid.Point {
	w, h := def.Footprint()
	xLo, xHi := span(w, corner == BottomRight || corner == TopRight)
	yLo, yHi := span(h, corner == TopLeft || corner == TopRight)

	var free []grid.Point
	for dx := xLo; dx <= xHi; dx++ {
		for dy := yLo; dy <= yHi; dy++ {
			t := origin.Add(grid.Pt(dx, dy))
			if available.Has(t) {
				free = append(free, t)
			}
		}
	}
	return free
}

// Anchor returns the minimum x and y over footprint.
func Anchor(footprint []grid.Point) grid.Point {
	if len(footprint) == 0 {
		return grid.Point{}
	}
	a := footprint[0]
	for _, t := range footprint[1:] {
		a.X = min(a.X, t.X)
		a.Y = min(a.Y, t.Y)
	}
	return a
}
