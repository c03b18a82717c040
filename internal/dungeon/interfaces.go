package dungeon

//go:generate mockgen -destination=mock/mock_interfaces.go -package=mock github.com/lawnchairsociety/dungeonforge/internal/dungeon TilePainter,EntitySpawner

import (
	"errors"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// ErrSpawnRejected is returned by spawners that refuse an entity, for
// example because its template lacks a required capability.
var ErrSpawnRejected = errors.New("dungeon: spawn rejected")

// WallKind distinguishes edge walls from diagonal corner walls.
type WallKind int

const (
	WallBasic WallKind = iota
	WallCorner
)

// String returns the wall kind name.
func (k WallKind) String() string {
	if k == WallCorner {
		return "corner"
	}
	return "basic"
}

// Wall is one wall tile with the floor-occupancy pattern around it.
// Basic walls carry a 4-bit pattern over grid.Cardinal, corner walls an
// 8-bit pattern over grid.Eight. Bit i is set when the neighbour in slot i
// is floor; slot 0 is the most significant bit.
type Wall struct {
	Pos     grid.Point
	Kind    WallKind
	Pattern uint8
}

// TilePainter receives the final tile layout.
type TilePainter interface {
	Clear()
	PaintFloorTiles(floor []grid.Point)
	PaintWalls(walls []Wall)
}

// EntitySpawner instantiates entities in the game runtime. A returned error
// means nothing was created and any tile claimed for the attempt must be
// released by the caller.
type EntitySpawner interface {
	SpawnPlayer(class *catalog.PlayerClass, tile grid.Point) (EntityID, error)
	SpawnEnemy(enemy *catalog.EnemyType, variant catalog.VariantIndex, tile grid.Point) (EntityID, error)
	SpawnProp(prop *catalog.PropDefinition, anchor grid.Point) (EntityID, error)
	Despawn(id EntityID) error
}
