package pcg

import (
	"math/rand"

	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// splitAxis identifies the cut direction of a BSP split.
type splitAxis int

const (
	splitNone splitAxis = iota
	// splitHorizontal cuts across y, producing a bottom and a top half.
	splitHorizontal
	// splitVertical cuts across x, producing a left and a right half.
	splitVertical
)

// BinarySpacePartitioning splits space breadth first into leaves no smaller
// than minWidth x minHeight. A region is cut along a randomly chosen valid
// axis; an axis is valid when both halves keep the minimum size. Regions that
// cannot be cut are returned as leaves, including a space that is already
// below the minimum.
func BinarySpacePartitioning(rng *rand.Rand, space grid.Rect, minWidth, minHeight int) []grid.Rect {
	if minWidth < 1 {
		minWidth = 1
	}
	if minHeight < 1 {
		minHeight = 1
	}

	var leaves []grid.Rect
	queue := []grid.Rect{space}
	for len(queue) > 0 {
		region := queue[0]
		queue = queue[1:]

		switch chooseAxis(rng, region, minWidth, minHeight) {
		case splitHorizontal:
			cut := minHeight + rng.Intn(region.H-2*minHeight+1)
			queue = append(queue,
				grid.NewRect(region.X, region.Y, region.W, cut),
				grid.NewRect(region.X, region.Y+cut, region.W, region.H-cut))
		case splitVertical:
			cut := minWidth + rng.Intn(region.W-2*minWidth+1)
			queue = append(queue,
				grid.NewRect(region.X, region.Y, cut, region.H),
				grid.NewRect(region.X+cut, region.Y, region.W-cut, region.H))
		default:
			leaves = append(leaves, region)
		}
	}
	return leaves
}

func chooseAxis(rng *rand.Rand, r grid.Rect, minWidth, minHeight int) splitAxis {
	canH := r.H >= 2*minHeight && r.W >= minWidth
	canV := r.W >= 2*minWidth && r.H >= minHeight
	switch {
	case canH && canV:
		if rng.Float64() < 0.5 {
			return splitHorizontal
		}
		return splitVertical
	case canH:
		return splitHorizontal
	case canV:
		return splitVertical
	default:
		return splitNone
	}
}
