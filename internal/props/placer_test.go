package props

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon/mock"
	"github.com/lawnchairsociety/dungeonforge/internal/entity"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/layout"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
	"github.com/lawnchairsociety/dungeonforge/internal/topology"
)

func rectRoom(w, h int) *dungeon.Room {
	floor := grid.NewPointSet()
	grid.Bounds{MaxX: w - 1, MaxY: h - 1}.Each(func(p grid.Point) { floor.Add(p) })
	r := dungeon.NewRoom(0, grid.Vec2{}, floor)
	topology.ExtractRoom(r)
	return r
}

func newPlacer(seed int64, spawner dungeon.EntitySpawner) (*Placer, *dungeon.Reservations) {
	reserved := dungeon.NewReservations()
	return NewPlacer(DefaultParams(), pcg.NewRand(seed), spawner, reserved), reserved
}

func TestTryToFitPropCorners(t *testing.T) {
	available := grid.NewPointSet()
	grid.Bounds{MinX: 3, MinY: 3, MaxX: 7, MaxY: 7}.Each(func(p grid.Point) { available.Add(p) })
	wide := &catalog.PropDefinition{Size: catalog.Size{W: 2, H: 1}}
	tall := &catalog.PropDefinition{Size: catalog.Size{W: 1, H: 2}}
	origin := grid.Pt(5, 5)

	assert.ElementsMatch(t, []grid.Point{grid.Pt(5, 5), grid.Pt(6, 5)}, TryToFitProp(wide, available, origin, BottomLeft))
	assert.ElementsMatch(t, []grid.Point{grid.Pt(4, 5), grid.Pt(5, 5)}, TryToFitProp(wide, available, origin, TopRight))
	assert.ElementsMatch(t, []grid.Point{grid.Pt(5, 4), grid.Pt(5, 5)}, TryToFitProp(tall, available, origin, TopLeft))
	assert.ElementsMatch(t, []grid.Point{grid.Pt(5, 5), grid.Pt(5, 6)}, TryToFitProp(tall, available, origin, BottomRight))

	// Only the in-bounds half is returned at the edge.
	assert.Len(t, TryToFitProp(wide, available, grid.Pt(7, 7), BottomLeft), 1)
	assert.Equal(t, grid.Pt(4, 5), Anchor(TryToFitProp(wide, available, origin, TopRight)))
}

func TestChestGoesFarFromCorridor(t *testing.T) {
	room := rectRoom(5, 5)
	corridors := grid.NewPointSet(grid.Pt(-1, 0))
	chest := &catalog.PropDefinition{Name: "chest", Corner: true, OnlyCorner: true, SpawnChance: 1, QuantityMin: 1, QuantityMax: 1}
	golden := &catalog.PropDefinition{Name: "golden_chest", Corner: true, OnlyCorner: true, SpawnChance: 1, QuantityMin: 1, QuantityMax: 1}

	p, _ := newPlacer(1, entity.NewRegistry())
	p.PlaceRoom(room, corridors, []*catalog.PropDefinition{chest, golden})

	require.Len(t, room.Props, 1, "one chest-like prop per room")
	assert.Equal(t, "chest", room.Props[0].Name)
	assert.Equal(t, grid.Pt(4, 4), room.Props[0].Anchor)
}

func TestCornerPropsAfterChestStillPlace(t *testing.T) {
	room := rectRoom(5, 5)
	corridors := grid.NewPointSet(grid.Pt(-1, 0))
	barrel := &catalog.PropDefinition{Name: "barrel", Corner: true, SpawnChance: 1, QuantityMin: 1, QuantityMax: 1}
	chest := &catalog.PropDefinition{Name: "chest", Corner: true, OnlyCorner: true, SpawnChance: 1, QuantityMin: 1, QuantityMax: 1}

	p, _ := newPlacer(1, entity.NewRegistry())
	p.corridors = corridors
	p.PlaceCornerProps(room, []*catalog.PropDefinition{barrel, chest})

	require.Len(t, room.Props, 2)
	assert.Equal(t, "chest", room.Props[0].Name, "corner-only props are placed first")
	assert.Equal(t, "barrel", room.Props[1].Name)
}

func TestGroupPlacement(t *testing.T) {
	room := rectRoom(5, 5)
	crate := &catalog.PropDefinition{
		Name: "crate", Inner: true, QuantityMin: 1, QuantityMax: 1, SpawnChance: 1,
		PlaceAsGroup: true, GroupMin: 3, GroupMax: 3,
	}

	p, reserved := newPlacer(3, entity.NewRegistry())
	p.PlaceRoom(room, grid.NewPointSet(), []*catalog.PropDefinition{crate})

	assert.Len(t, room.Props, 3)
	assert.Equal(t, 3, reserved.Len())
	assert.Equal(t, 3, room.PropPositions.Len())
	first := room.Props[0].Anchor
	for _, prop := range room.Props[1:] {
		assert.LessOrEqual(t, abs(prop.Anchor.X-first.X), 1)
		assert.LessOrEqual(t, abs(prop.Anchor.Y-first.Y), 1)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestTrapsGoToTrapList(t *testing.T) {
	room := rectRoom(5, 5)
	trap := &catalog.PropDefinition{Name: "spike_trap", Inner: true, Trap: true, QuantityMin: 2, QuantityMax: 2, SpawnChance: 100}

	p, _ := newPlacer(1, entity.NewRegistry())
	p.PlaceRoom(room, grid.NewPointSet(), []*catalog.PropDefinition{trap})

	assert.Empty(t, room.Props)
	assert.Len(t, room.Traps, 2)
}

func TestMultiTilePropStopsWhenNothingFits(t *testing.T) {
	room := rectRoom(3, 3)
	huge := &catalog.PropDefinition{Name: "altar", Size: catalog.Size{W: 2, H: 2}, Inner: true, QuantityMin: 3, QuantityMax: 3, SpawnChance: 1}

	p, reserved := newPlacer(1, entity.NewRegistry())
	p.PlaceRoom(room, grid.NewPointSet(), []*catalog.PropDefinition{huge})

	assert.Empty(t, room.Props, "a 3x3 room has a single inner tile")
	assert.Zero(t, reserved.Len())
}

func TestSpawnFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	spawner := mock.NewMockEntitySpawner(ctrl)
	spawner.EXPECT().SpawnProp(gomock.Any(), gomock.Any()).Return(dungeon.EntityID(0), errors.New("no sprite renderer")).Times(2)

	room := rectRoom(5, 5)
	pillar := &catalog.PropDefinition{Name: "pillar", Inner: true, QuantityMin: 2, QuantityMax: 2, SpawnChance: 1}

	p, reserved := newPlacer(1, spawner)
	p.PlaceRoom(room, grid.NewPointSet(), []*catalog.PropDefinition{pillar})

	assert.Empty(t, room.Props)
	assert.Zero(t, reserved.Len())
	assert.Zero(t, room.PropPositions.Len())
}

func TestPlaceSkipsWithoutTemplates(t *testing.T) {
	p, _ := newPlacer(1, entity.NewRegistry())
	data := dungeon.NewDungeonData()
	data.Rooms = []*dungeon.Room{rectRoom(4, 4)}
	assert.Zero(t, p.Place(data, nil))
}

func TestBreak(t *testing.T) {
	reg := entity.NewRegistry()
	room := rectRoom(5, 5)
	crate := &catalog.PropDefinition{Name: "crate", Inner: true, QuantityMin: 1, QuantityMax: 1, SpawnChance: 1, Destructible: true, MaxHP: 3}
	pillar := &catalog.PropDefinition{Name: "pillar", Inner: true, QuantityMin: 1, QuantityMax: 1, SpawnChance: 1}

	p, reserved := newPlacer(2, reg)
	p.PlaceRoom(room, grid.NewPointSet(), []*catalog.PropDefinition{crate, pillar})
	require.Len(t, room.Props, 2)

	crateID, pillarID := room.Props[0].ID, room.Props[1].ID
	require.NoError(t, p.Break(room, crateID))
	assert.Len(t, room.Props, 1)
	assert.Equal(t, 1, reserved.Len())
	assert.Equal(t, 1, room.PropPositions.Len())
	_, alive := reg.Get(crateID)
	assert.False(t, alive)

	assert.ErrorIs(t, p.Break(room, pillarID), ErrNotDestructible)
	assert.ErrorIs(t, p.Break(room, crateID), ErrPropNotFound)
}

func TestGeneratedDungeonPropsNeverOverlap(t *testing.T) {
	defs := catalog.DefaultProps()
	for seed := int64(1); seed <= 10; seed++ {
		res, err := layout.NewBuilder(layout.DefaultParams(), pcg.NewRand(seed)).Build()
		require.NoError(t, err)
		topology.Extract(res.Rooms)

		data := dungeon.NewDungeonData()
		data.Rooms, data.Corridors, data.Floor = res.Rooms, res.Corridors, res.Floor

		p, reserved := newPlacer(seed, entity.NewRegistry())
		placed := p.Place(data, defs)
		assert.Equal(t, placed, data.PropCount())

		seen := grid.NewPointSet()
		total := 0
		for _, room := range data.Rooms {
			for _, prop := range append(append([]dungeon.PlacedProp(nil), room.Props...), room.Traps...) {
				for _, tile := range prop.Tiles {
					assert.True(t, room.FloorTiles.Has(tile), "seed %d: %s off room floor", seed, prop.Name)
					assert.False(t, data.Corridors.Has(tile), "seed %d: %s on corridor", seed, prop.Name)
					assert.True(t, seen.Add(tile), "seed %d: %s overlaps", seed, prop.Name)
					total++
				}
			}
		}
		assert.Equal(t, total, reserved.Len())
	}
}
