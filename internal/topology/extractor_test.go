package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/layout"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
)

func roomOf(pts ...grid.Point) *dungeon.Room {
	return dungeon.NewRoom(0, grid.Vec2{}, grid.NewPointSet(pts...))
}

func rect(w, h int) *dungeon.Room {
	r := roomOf()
	grid.Bounds{MaxX: w - 1, MaxY: h - 1}.Each(func(p grid.Point) { r.FloorTiles.Add(p) })
	return r
}

func TestSolidRectangle(t *testing.T) {
	r := rect(4, 4)
	ExtractRoom(r)

	assert.ElementsMatch(t, []grid.Point{grid.Pt(1, 1), grid.Pt(2, 1), grid.Pt(1, 2), grid.Pt(2, 2)}, r.InnerTiles.Points())
	assert.Zero(t, r.CornerTiles.Len(), "a filled rectangle has its L diagonals present")
	assert.Equal(t, 4, r.NearWallTiles(dungeon.SideUp).Len())
	assert.Equal(t, 4, r.NearWallTiles(dungeon.SideDown).Len())
	assert.True(t, r.NearWallTiles(dungeon.SideLeft).Has(grid.Pt(0, 0)))
	assert.True(t, r.NearWallTiles(dungeon.SideDown).Has(grid.Pt(0, 0)), "a tile may sit on two walls")
	assert.False(t, r.NearWallTiles(dungeon.SideRight).Has(grid.Pt(0, 0)))
}

func TestThinLShapeHasConvexCorner(t *testing.T) {
	r := roomOf(grid.Pt(0, 0), grid.Pt(0, 1), grid.Pt(1, 0))
	ExtractRoom(r)

	assert.Equal(t, []grid.Point{grid.Pt(0, 0)}, r.CornerTiles.Points())
	for _, side := range dungeon.Sides {
		assert.False(t, r.NearWallTiles(side).Has(grid.Pt(0, 0)), "corner removed from %s", side)
	}
	assert.True(t, r.NearWallTiles(dungeon.SideUp).Has(grid.Pt(0, 1)))
	assert.True(t, r.NearWallTiles(dungeon.SideRight).Has(grid.Pt(1, 0)))
	assert.Zero(t, r.InnerTiles.Len())
}

func TestStraightRecessIsNotACorner(t *testing.T) {
	// The middle tile has two neighbours in a line, not an L.
	r := roomOf(grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(2, 0))
	ExtractRoom(r)
	assert.False(t, r.CornerTiles.Has(grid.Pt(1, 0)))
	assert.True(t, r.NearWallTiles(dungeon.SideUp).Has(grid.Pt(1, 0)))
	assert.True(t, r.NearWallTiles(dungeon.SideDown).Has(grid.Pt(1, 0)))
}

func TestReentrantNotchBoundary(t *testing.T) {
	// 3x3 block missing its top-right tile. (1,2) and (2,1) each keep two
	// L neighbours but the diagonal between them is floor.
	r := rect(3, 3)
	r.FloorTiles.Remove(grid.Pt(2, 2))
	ExtractRoom(r)

	assert.False(t, r.CornerTiles.Has(grid.Pt(1, 2)))
	assert.False(t, r.CornerTiles.Has(grid.Pt(2, 1)))
	assert.True(t, r.NearWallTiles(dungeon.SideRight).Has(grid.Pt(1, 2)))
	assert.True(t, r.NearWallTiles(dungeon.SideUp).Has(grid.Pt(2, 1)))
	assert.Equal(t, []grid.Point{grid.Pt(1, 1)}, r.InnerTiles.Points())
}

func TestOpenDiagonalMakesCorner(t *testing.T) {
	// Two arms meeting at (0,0) with the outer diagonal empty, plus an
	// extra tile touching only diagonally elsewhere.
	r := roomOf(grid.Pt(0, 0), grid.Pt(0, -1), grid.Pt(-1, 0), grid.Pt(1, 1))
	ExtractRoom(r)
	assert.True(t, r.CornerTiles.Has(grid.Pt(0, 0)))
	assert.False(t, r.CornerTiles.Has(grid.Pt(1, 1)), "isolated tile has no neighbours")
}

func TestCorridorNeighboursCountAsWalls(t *testing.T) {
	// Room floor never includes corridor tiles, so a tile facing the
	// corridor is near-wall on that side.
	r := rect(3, 3)
	ExtractRoom(r)
	assert.True(t, r.NearWallTiles(dungeon.SideRight).Has(grid.Pt(2, 1)))
}

func TestEmptyRoom(t *testing.T) {
	r := roomOf()
	ExtractRoom(r)
	assert.Zero(t, r.InnerTiles.Len())
	assert.Zero(t, r.CornerTiles.Len())
	assert.Zero(t, r.AllNearWall().Len())
}

func TestClassificationExclusiveOnGeneratedRooms(t *testing.T) {
	params := layout.DefaultParams()
	params.RoomsFirst.RandomRoomPlacement = true
	for seed := int64(1); seed <= 15; seed++ {
		res, err := layout.NewBuilder(params, pcg.NewRand(seed)).Build()
		require.NoError(t, err)
		Extract(res.Rooms)

		for _, r := range res.Rooms {
			assert.False(t, r.InnerTiles.Intersects(r.CornerTiles))
			for _, side := range dungeon.Sides {
				assert.False(t, r.CornerTiles.Intersects(r.NearWallTiles(side)), "seed %d room %d side %s", seed, r.Index, side)
				assert.False(t, r.InnerTiles.Intersects(r.NearWallTiles(side)))
			}
			r.InnerTiles.Each(func(p grid.Point) { assert.True(t, r.FloorTiles.Has(p)) })
		}
	}
}
