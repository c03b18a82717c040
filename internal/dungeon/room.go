// Package dungeon holds the generated dungeon data model shared by the layout
// builder, the topology extractor and the placement engines, together with
// the narrow interfaces used to hand results to a renderer or game runtime.
package dungeon

import (
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// Side names a wall side of a room tile.
type Side int

const (
	SideUp Side = iota
	SideDown
	SideRight
	SideLeft
)

// Sides lists every Side in declaration order.
var Sides = [4]Side{SideUp, SideDown, SideRight, SideLeft}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideDown:
		return "down"
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Offset returns the direction pointing from a tile toward side s.
func (s Side) Offset() grid.Point {
	switch s {
	case SideUp:
		return grid.Up
	case SideDown:
		return grid.Down
	case SideRight:
		return grid.Right
	default:
		return grid.Left
	}
}

// EntityID identifies an entity owned by the external entity registry.
type EntityID uint64

// PlacedProp records one spawned prop instance and the tiles it covers.
type PlacedProp struct {
	ID     EntityID
	Name   string
	Anchor grid.Point
	Tiles  []grid.Point

	// HP is zero for props that cannot be broken.
	HP int
}

// Destructible reports whether the prop can be broken.
func (p PlacedProp) Destructible() bool {
	return p.HP > 0
}

// PlacedAgent records one spawned enemy.
type PlacedAgent struct {
	ID      EntityID
	Type    string
	Variant int
	Tile    grid.Point
	Elite   bool
}

// Room is one connected blob of floor and everything placed in it.
type Room struct {
	Index  int
	Center grid.Vec2

	// FloorTiles never contains corridor tiles once the layout is final.
	FloorTiles *grid.PointSet

	InnerTiles  *grid.PointSet
	CornerTiles *grid.PointSet
	NearWall    [4]*grid.PointSet

	// PropPositions is the room-local occupancy set: prop footprints and
	// tiles held by agents spawned here.
	PropPositions *grid.PointSet

	Props   []PlacedProp
	Traps   []PlacedProp
	Enemies []PlacedAgent

	// AccessibleFromPath caches the tiles reachable from the corridor entry.
	AccessibleFromPath []grid.Point

	// EnemyBudget and Difficulty are kept so a checkpoint reset can
	// repopulate the room the same way.
	EnemyBudget int
	Difficulty  float64
}

// NewRoom returns an empty-classified room owning floor.
func NewRoom(index int, center grid.Vec2, floor *grid.PointSet) *Room {
	if floor == nil {
		floor = grid.NewPointSet()
	}
	r := &Room{
		Index:         index,
		Center:        center,
		FloorTiles:    floor,
		PropPositions: grid.NewPointSet(),
	}
	r.ResetClassification()
	return r
}

// ResetClassification empties the inner, corner and near-wall sets.
func (r *Room) ResetClassification() {
	r.InnerTiles = grid.NewPointSet()
	r.CornerTiles = grid.NewPointSet()
	for _, side := range Sides {
		r.NearWall[side] = grid.NewPointSet()
	}
}

// NearWallTiles returns the near-wall set for side.
func (r *Room) NearWallTiles(side Side) *grid.PointSet {
	return r.NearWall[side]
}

// AllNearWall returns the union of every near-wall side.
func (r *Room) AllNearWall() *grid.PointSet {
	out := grid.NewPointSet()
	for _, side := range Sides {
		out.Union(r.NearWall[side])
	}
	return out
}

// Empty reports whether the room owns no floor.
func (r *Room) Empty() bool {
	return r.FloorTiles.Len() == 0
}

// Occupied reports whether p is held by a prop or agent of this room.
func (r *Room) Occupied(p grid.Point) bool {
	return r.PropPositions.Has(p)
}

// AddProp records a placed prop and marks its footprint occupied.
func (r *Room) AddProp(p PlacedProp) {
	r.Props = append(r.Props, p)
	r.occupy(p.Tiles)
}

// AddTrap records a placed trap and marks its footprint occupied.
func (r *Room) AddTrap(p PlacedProp) {
	r.Traps = append(r.Traps, p)
	r.occupy(p.Tiles)
}

// AddEnemy records a placed enemy and marks its tile occupied.
func (r *Room) AddEnemy(a PlacedAgent) {
	r.Enemies = append(r.Enemies, a)
	r.PropPositions.Add(a.Tile)
}

func (r *Room) occupy(tiles []grid.Point) {
	for _, t := range tiles {
		r.PropPositions.Add(t)
	}
}

// RemoveProp drops the prop or trap with id and frees its footprint. It
// returns the removed record.
func (r *Room) RemoveProp(id EntityID) (PlacedProp, bool) {
	for i, p := range r.Props {
		if p.ID == id {
			r.Props = append(r.Props[:i], r.Props[i+1:]...)
			r.release(p.Tiles)
			return p, true
		}
	}
	for i, p := range r.Traps {
		if p.ID == id {
			r.Traps = append(r.Traps[:i], r.Traps[i+1:]...)
			r.release(p.Tiles)
			return p, true
		}
	}
	return PlacedProp{}, false
}

// ClearEnemies forgets every enemy and trap, frees their tiles and returns
// what was removed so the caller can despawn the entities.
func (r *Room) ClearEnemies() (enemies []PlacedAgent, traps []PlacedProp) {
	enemies, traps = r.Enemies, r.Traps
	for _, e := range enemies {
		r.PropPositions.Remove(e.Tile)
	}
	for _, t := range traps {
		r.release(t.Tiles)
	}
	r.Enemies = nil
	r.Traps = nil
	return enemies, traps
}

func (r *Room) release(tiles []grid.Point) {
	for _, t := range tiles {
		r.PropPositions.Remove(t)
	}
}
