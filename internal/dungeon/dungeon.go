package dungeon

import (
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// DungeonData is the result of one generation pass.
type DungeonData struct {
	Rooms     []*Room
	Corridors *grid.PointSet
	Floor     *grid.PointSet
	Walls     []Wall

	Player     EntityID
	PlayerTile grid.Point
	HasPlayer  bool
	PlayerRoom int

	CorridorEnemies []PlacedAgent
}

// NewDungeonData returns an empty dungeon.
func NewDungeonData() *DungeonData {
	d := &DungeonData{}
	d.Reset()
	return d
}

// Reset drops every room, corridor and entity reference.
func (d *DungeonData) Reset() {
	d.Rooms = nil
	d.Corridors = grid.NewPointSet()
	d.Floor = grid.NewPointSet()
	d.Walls = nil
	d.Player = 0
	d.PlayerTile = grid.Point{}
	d.HasPlayer = false
	d.PlayerRoom = 0
	d.CorridorEnemies = nil
}

// RoomContaining returns the room owning tile p.
func (d *DungeonData) RoomContaining(p grid.Point) (*Room, bool) {
	for _, r := range d.Rooms {
		if r.FloorTiles.Has(p) {
			return r, true
		}
	}
	return nil, false
}

// Room returns the room at index.
func (d *DungeonData) Room(index int) (*Room, bool) {
	if index < 0 || index >= len(d.Rooms) {
		return nil, false
	}
	return d.Rooms[index], true
}

// EnemyCount returns all enemies in rooms and corridors.
func (d *DungeonData) EnemyCount() int {
	n := len(d.CorridorEnemies)
	for _, r := range d.Rooms {
		n += len(r.Enemies)
	}
	return n
}

// PropCount returns all placed props and traps.
func (d *DungeonData) PropCount() int {
	n := 0
	for _, r := range d.Rooms {
		n += len(r.Props) + len(r.Traps)
	}
	return n
}

// Reservations is the process-wide reserved tile set. Every spawned entity
// claims its tiles here and every placement attempt consults it first.
type Reservations struct {
	tiles *grid.PointSet
}

// NewReservations returns an empty reservation set.
func NewReservations() *Reservations {
	return &Reservations{tiles: grid.NewPointSet()}
}

// Reserve claims p. It returns false if p was already taken.
func (r *Reservations) Reserve(p grid.Point) bool {
	return r.tiles.Add(p)
}

// ReserveAll claims every tile or none of them.
func (r *Reservations) ReserveAll(tiles []grid.Point) bool {
	for _, t := range tiles {
		if r.tiles.Has(t) {
			return false
		}
	}
	for _, t := range tiles {
		r.tiles.Add(t)
	}
	return true
}

// Release frees p.
func (r *Reservations) Release(p grid.Point) {
	r.tiles.Remove(p)
}

// ReleaseAll frees every tile in tiles.
func (r *Reservations) ReleaseAll(tiles []grid.Point) {
	for _, t := range tiles {
		r.tiles.Remove(t)
	}
}

// Has implements grid.Blocker.
func (r *Reservations) Has(p grid.Point) bool {
	if r == nil {
		return false
	}
	return r.tiles.Has(p)
}

// Len returns the number of reserved tiles.
func (r *Reservations) Len() int {
	return r.tiles.Len()
}

// Tiles returns the reserved tiles in claim order.
func (r *Reservations) Tiles() []grid.Point {
	return r.tiles.Points()
}

// Reset releases everything.
func (r *Reservations) Reset() {
	r.tiles.Clear()
}
