// Package props decorates rooms with prop templates: chests in far corners,
// furniture along walls, clutter on open floor and traps.
package props

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
)

var (
	// ErrPropNotFound is returned when a room holds no prop with the given ID.
	ErrPropNotFound = errors.New("props: prop not found")
	// ErrNotDestructible is returned when breaking a prop without hit points.
	ErrNotDestructible = errors.New("props: prop is not destructible")
	// ErrNoTemplates means the catalog holds no prop templates.
	ErrNoTemplates = errors.New("props: no prop templates configured")

	errFootprintTaken = errors.New("props: footprint already reserved")
)

// Params tunes group placement.
type Params struct {
	// GroupSearchOffset is the radius of the square scanned around a group
	// anchor for extra members.
	GroupSearchOffset int `yaml:"group_search_offset"`
	// MaxGroupExtra caps the members added around the anchor.
	MaxGroupExtra int `yaml:"max_group_extra"`
}

// DefaultParams returns the stock group settings.
func DefaultParams() Params {
	return Params{GroupSearchOffset: 1, MaxGroupExtra: 8}
}

// Placer spawns props room by room. Room occupancy and the shared
// reservation set are updated after every placement, so later props in the
// same pass see earlier ones.
type Placer struct {
	params    Params
	rng       *rand.Rand
	spawner   dungeon.EntitySpawner
	reserved  *dungeon.Reservations
	corridors *grid.PointSet
}

// NewPlacer creates a placer. reserved may be shared with the agent placer.
func NewPlacer(params Params, rng *rand.Rand, spawner dungeon.EntitySpawner, reserved *dungeon.Reservations) *Placer {
	if reserved == nil {
		reserved = dungeon.NewReservations()
	}
	return &Placer{
		params:   params,
		rng:      rng,
		spawner:  spawner,
		reserved: reserved,
	}
}

// Place decorates every room of data and returns the number of props and
// traps spawned.
func (p *Placer) Place(data *dungeon.DungeonData, defs []*catalog.PropDefinition) int {
	if len(defs) == 0 {
		logger.Warning("Prop placement skipped", "error", ErrNoTemplates)
		return 0
	}
	total := 0
	for _, room := range data.Rooms {
		total += p.PlaceRoom(room, data.Corridors, defs)
	}
	return total
}

// PlaceRoom decorates one room: corner props first, then each wall side,
// then inner tiles. Corridor tiles are never used.
func (p *Placer) PlaceRoom(room *dungeon.Room, corridors *grid.PointSet, defs []*catalog.PropDefinition) int {
	p.corridors = corridors
	if room.Empty() {
		return 0
	}
	before := len(room.Props) + len(room.Traps)

	var corner []*catalog.PropDefinition
	for _, def := range defs {
		if def != nil && def.Corner {
			corner = append(corner, def)
		}
	}
	p.PlaceCornerProps(room, corner)

	p.PlaceProps(room, filter(defs, func(d *catalog.PropDefinition) bool { return d.NearWallLeft }), room.NearWallTiles(dungeon.SideLeft), BottomLeft)
	p.PlaceProps(room, filter(defs, func(d *catalog.PropDefinition) bool { return d.NearWallRight }), room.NearWallTiles(dungeon.SideRight), TopRight)
	p.PlaceProps(room, filter(defs, func(d *catalog.PropDefinition) bool { return d.NearWallUp }), room.NearWallTiles(dungeon.SideUp), TopLeft)
	p.PlaceProps(room, filter(defs, func(d *catalog.PropDefinition) bool { return d.NearWallDown }), room.NearWallTiles(dungeon.SideDown), BottomLeft)
	p.PlaceProps(room, filter(defs, func(d *catalog.PropDefinition) bool { return d.Inner }), room.InnerTiles, BottomLeft)

	placed := len(room.Props) + len(room.Traps) - before
	logger.Debug("Room decorated", "room", room.Index, "props", placed)
	return placed
}

// filter keeps templates matching side and never returns corner-only ones.
func filter(defs []*catalog.PropDefinition, side func(*catalog.PropDefinition) bool) []*catalog.PropDefinition {
	var out []*catalog.PropDefinition
	for _, d := range defs {
		if d != nil && side(d) && !d.OnlyCorner {
			out = append(out, d)
		}
	}
	return out
}

// PlaceProps places each template a random number of times on tiles, which
// are never corridor tiles. A template whose footprint no longer fits
// anywhere is abandoned for this tile set.
func (p *Placer) PlaceProps(room *dungeon.Room, defs []*catalog.PropDefinition, tiles *grid.PointSet, corner Corner) {
	candidates := tiles.Without(p.corridors)

	for _, def := range defs {
		quantity := pcg.RangeInclusive(p.rng, def.QuantityMin, def.QuantityMax)
		for i := 0; i < quantity; i++ {
			if p.rng.Float64() > def.Chance() {
				continue
			}

			available := candidates.Without(p.occupied(room))
			order := available.Points()
			pcg.Shuffle(p.rng, order)
			if !p.placeBruteForce(room, def, available, order, corner) {
				break
			}
		}
	}
}

// placeBruteForce tries each tile of order as the footprint origin. It
// returns false only when the prop fits nowhere.
func (p *Placer) placeBruteForce(room *dungeon.Room, def *catalog.PropDefinition, available *grid.PointSet, order []grid.Point, corner Corner) bool {
	w, h := def.Footprint()
	for _, origin := range order {
		if p.occupied(room).Has(origin) {
			continue
		}
		footprint := TryToFitProp(def, available, origin, corner)
		if len(footprint) != w*h {
			continue
		}

		if err := p.spawn(room, def, footprint); err != nil {
			logger.Warning("Prop spawn failed", "prop", def.Name, "room", room.Index, "error", err)
			return true
		}
		if def.PlaceAsGroup {
			p.PlaceGroup(room, origin, def)
		}
		return true
	}
	return false
}

// PlaceCornerProps places corner-flagged templates on near-wall tiles as far
// from the corridors as possible. Corner-only templates come first and at
// most one of them is placed per room.
func (p *Placer) PlaceCornerProps(room *dungeon.Room, defs []*catalog.PropDefinition) {
	if len(defs) == 0 {
		return
	}
	ordered := append([]*catalog.PropDefinition(nil), defs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OnlyCorner && !ordered[j].OnlyCorner
	})

	chestPlaced := false
	for _, def := range ordered {
		if def.OnlyCorner && chestPlaced {
			continue
		}
		if p.rng.Float64() > def.Chance() {
			continue
		}
		if p.placeFarFromPath(room, def) && def.OnlyCorner {
			chestPlaced = true
		}
	}
}

// placeFarFromPath puts def on the free near-wall tile with the greatest
// Manhattan distance to the nearest corridor tile.
func (p *Placer) placeFarFromPath(room *dungeon.Room, def *catalog.PropDefinition) bool {
	blocked := grid.AnyOf(p.corridors, p.occupied(room))
	candidates := room.AllNearWall().Without(blocked).Points()
	if len(candidates) == 0 {
		return false
	}

	dist := make(map[grid.Point]int, len(candidates))
	for _, c := range candidates {
		dist[c] = p.distanceToPath(c)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return dist[candidates[i]] > dist[candidates[j]]
	})

	available := room.FloorTiles.Without(blocked)
	w, h := def.Footprint()
	for _, origin := range candidates {
		footprint := TryToFitProp(def, available, origin, BottomLeft)
		if len(footprint) != w*h {
			continue
		}
		if err := p.spawn(room, def, footprint); err != nil {
			logger.Warning("Corner prop spawn failed", "prop", def.Name, "room", room.Index, "error", err)
			return false
		}
		return true
	}
	return false
}

func (p *Placer) distanceToPath(from grid.Point) int {
	best := math.MaxInt
	p.corridors.Each(func(c grid.Point) {
		if d := grid.Manhattan(from, c); d < best {
			best = d
		}
	})
	return best
}

// PlaceGroup adds extra copies of def on free room tiles around origin.
func (p *Placer) PlaceGroup(room *dungeon.Room, origin grid.Point, def *catalog.PropDefinition) int {
	count := pcg.RangeInclusive(p.rng, def.GroupMin, def.GroupMax) - 1
	count = pcg.ClampInt(count, 0, p.params.MaxGroupExtra)
	if count == 0 {
		return 0
	}

	blocked := grid.AnyOf(p.corridors, p.occupied(room))
	var spaces []grid.Point
	offset := p.params.GroupSearchOffset
	grid.Bounds{MinX: origin.X - offset, MinY: origin.Y - offset, MaxX: origin.X + offset, MaxY: origin.Y + offset}.Each(func(t grid.Point) {
		if room.FloorTiles.Has(t) && !blocked.Has(t) {
			spaces = append(spaces, t)
		}
	})
	pcg.Shuffle(p.rng, spaces)

	w, h := def.Footprint()
	placed := 0
	for _, t := range spaces {
		if placed >= count {
			break
		}
		available := room.FloorTiles.Without(grid.AnyOf(p.corridors, p.occupied(room)))
		footprint := TryToFitProp(def, available, t, BottomLeft)
		if len(footprint) != w*h {
			continue
		}
		if err := p.spawn(room, def, footprint); err != nil {
			logger.Warning("Group prop spawn failed", "prop", def.Name, "room", room.Index, "error", err)
			continue
		}
		placed++
	}
	return placed
}

// spawn reserves footprint, creates the entity and records it on the room.
// Reservations are rolled back if the spawner refuses.
func (p *Placer) spawn(room *dungeon.Room, def *catalog.PropDefinition, footprint []grid.Point) error {
	if !p.reserved.ReserveAll(footprint) {
		return errFootprintTaken
	}
	anchor := Anchor(footprint)
	id, err := p.spawner.SpawnProp(def, anchor)
	if err != nil {
		p.reserved.ReleaseAll(footprint)
		return err
	}

	placed := dungeon.PlacedProp{
		ID:     id,
		Name:   def.Name,
		Anchor: anchor,
		Tiles:  footprint,
	}
	if def.Destructible {
		placed.HP = def.MaxHP
	}
	if def.Trap {
		room.AddTrap(placed)
	} else {
		room.AddProp(placed)
	}
	return nil
}

// occupied blocks tiles held in this room or anywhere in the dungeon.
func (p *Placer) occupied(room *dungeon.Room) grid.Blocker {
	return grid.AnyOf(room.PropPositions, p.reserved)
}

// Break despawns a destructible prop and frees its tiles.
func (p *Placer) Break(room *dungeon.Room, id dungeon.EntityID) error {
	var target *dungeon.PlacedProp
	for i := range room.Props {
		if room.Props[i].ID == id {
			target = &room.Props[i]
		}
	}
	for i := range room.Traps {
		if room.Traps[i].ID == id {
			target = &room.Traps[i]
		}
	}
	if target == nil {
		return fmt.Errorf("room %d prop %d: %w", room.Index, id, ErrPropNotFound)
	}
	if !target.Destructible() {
		return fmt.Errorf("prop %s: %w", target.Name, ErrNotDestructible)
	}

	if err := p.spawner.Despawn(id); err != nil {
		return fmt.Errorf("despawn prop %d: %w", id, err)
	}
	removed, _ := room.RemoveProp(id)
	p.reserved.ReleaseAll(removed.Tiles)
	return nil
}
