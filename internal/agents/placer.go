// Package agents spawns the player and populates rooms and corridors with
// enemies scaled to each room's difficulty.
package agents

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
	"github.com/lawnchairsociety/dungeonforge/internal/reach"
)

var (
	// ErrNoEnemyTypes means the catalog holds no enemy templates.
	ErrNoEnemyTypes = errors.New("agents: no enemy types configured")
	// ErrNoPlayerClass means the catalog holds no player class.
	ErrNoPlayerClass = errors.New("agents: no player class configured")
	// ErrPlayerRoom means the player room index names no usable room.
	ErrPlayerRoom = errors.New("agents: player room unavailable")
	// ErrNoPlayer is returned when enemies are requested before the player
	// exists.
	ErrNoPlayer = errors.New("agents: player not placed")
)

// Result summarizes one placement pass.
type Result struct {
	PlayerPlaced    bool
	RoomEnemies     int
	CorridorEnemies int
	// Skipped lists configuration problems that caused a pass to be skipped.
	Skipped []error
}

// Placer spawns the player and enemies. Every spawn claims its tile in the
// shared reservation set before the spawner is called and releases it if
// the spawner refuses.
type Placer struct {
	params   Params
	rng      *rand.Rand
	spawner  dungeon.EntitySpawner
	reserved *dungeon.Reservations

	enemies []*catalog.EnemyType
	class   *catalog.PlayerClass

	corridors *grid.PointSet
	lastType  *catalog.EnemyType
}

// NewPlacer creates a placer drawing templates from cat.
func NewPlacer(params Params, rng *rand.Rand, spawner dungeon.EntitySpawner, reserved *dungeon.Reservations, cat *catalog.Catalog) *Placer {
	if reserved == nil {
		reserved = dungeon.NewReservations()
	}
	p := &Placer{
		params:   params,
		rng:      rng,
		spawner:  spawner,
		reserved: reserved,
	}
	if cat != nil {
		for _, e := range cat.Enemies {
			if e != nil {
				p.enemies = append(p.enemies, e)
			}
		}
		p.class = cat.Class(params.PlayerClass)
	}
	return p
}

// Place spawns the player, then enemies room by room, then the corridor
// extras. Configuration problems skip the dependent step and are reported in
// the result.
func (p *Placer) Place(data *dungeon.DungeonData) Result {
	res := p.PlacePlayer(data)
	p.PlaceAgents(data, &res)
	return res
}

// PlacePlayer spawns the player and reserves its tile. It runs before props
// so decoration can never fill the player room.
func (p *Placer) PlacePlayer(data *dungeon.DungeonData) Result {
	var res Result
	p.corridors = data.Corridors
	p.lastType = nil

	if err := p.SpawnPlayer(data); err != nil {
		logger.Warning("Player placement skipped", "error", err)
		res.Skipped = append(res.Skipped, err)
	} else {
		res.PlayerPlaced = true
	}
	return res
}

// PlaceAgents populates rooms and corridors with enemies once the player is
// placed, adding the counts and any skipped step to res.
func (p *Placer) PlaceAgents(data *dungeon.DungeonData, res *Result) {
	p.corridors = data.Corridors

	if len(p.enemies) == 0 {
		logger.Warning("Enemy placement skipped", "error", ErrNoEnemyTypes)
		res.Skipped = append(res.Skipped, ErrNoEnemyTypes)
		return
	}
	if !res.PlayerPlaced {
		logger.Warning("Enemy placement skipped", "error", ErrNoPlayer)
		res.Skipped = append(res.Skipped, ErrNoPlayer)
		return
	}

	for i, room := range data.Rooms {
		p.RefreshAccessible(room)

		count := p.EnemyCount(i)
		room.EnemyBudget = count
		room.Difficulty = RoomDifficulty(p.params, i)
		if count == 0 {
			continue
		}
		res.RoomEnemies += p.PlaceEnemies(room, count, room.Difficulty)
	}

	if p.params.CorridorSpawns {
		res.CorridorEnemies = p.PlaceCorridorEnemies(data, res.RoomEnemies)
	}

	logger.Info("Agents placed",
		"player", res.PlayerPlaced,
		"room_enemies", res.RoomEnemies,
		"corridor_enemies", res.CorridorEnemies)
}

// SpawnPlayer puts the player on a random free inner tile of the player
// room, or any free floor tile when the room has no inner tiles.
func (p *Placer) SpawnPlayer(data *dungeon.DungeonData) error {
	data.HasPlayer = false
	if p.class == nil {
		return ErrNoPlayerClass
	}
	room, ok := data.Room(p.params.PlayerRoomIndex)
	if !ok || room.Empty() {
		return fmt.Errorf("room %d: %w", p.params.PlayerRoomIndex, ErrPlayerRoom)
	}

	tiles := room.InnerTiles.Without(p.occupied(room)).Points()
	if len(tiles) == 0 {
		tiles = room.FloorTiles.Without(p.occupied(room)).Points()
	}
	if len(tiles) == 0 {
		return fmt.Errorf("room %d has no free tile: %w", room.Index, ErrPlayerRoom)
	}
	tile := tiles[p.rng.Intn(len(tiles))]

	p.reserved.Reserve(tile)
	id, err := p.spawner.SpawnPlayer(p.class, tile)
	if err != nil {
		p.reserved.Release(tile)
		return fmt.Errorf("spawn player: %w", err)
	}

	data.Player = id
	data.PlayerTile = tile
	data.PlayerRoom = room.Index
	data.HasPlayer = true
	logger.Debug("Player spawned", "class", p.class.Name, "room", room.Index, "tile", tile)
	return nil
}

// RefreshAccessible recomputes the tiles reachable from the room's corridor
// entry, falling back to every free floor tile.
func (p *Placer) RefreshAccessible(room *dungeon.Room) {
	occupied := p.occupied(room)
	tiles, ok := reach.AccessibleTiles(p.rng, room.FloorTiles, p.corridors, occupied)
	if !ok {
		tiles = reach.FallbackTiles(p.rng, room.FloorTiles, occupied)
	}
	room.AccessibleFromPath = tiles
}

// EnemyCount returns how many enemies room index should receive.
func (p *Placer) EnemyCount(index int) int {
	if index == p.params.PlayerRoomIndex {
		return 0
	}
	count := 0
	if index >= 0 && index < len(p.params.RoomEnemyCounts) {
		count = p.params.RoomEnemyCounts[index]
	}
	if count <= 0 && p.params.GuaranteeOnePerRoom {
		count = pcg.RangeInclusive(p.rng, p.params.EnemiesMin, p.params.EnemiesMax)
	}
	return max(0, count)
}

// RoomDifficulty grows with the room index and with the distance from the
// player room, within [1, 3].
func RoomDifficulty(params Params, index int) float64 {
	base := pcg.Clamp(1+float64(index)*params.DifficultyPerRoom, 1, 3)
	dist := math.Abs(float64(index - params.PlayerRoomIndex))
	return pcg.Clamp(base*(1+dist*params.DistanceBonus*0.1), 1, 3)
}

// PlaceEnemies spawns up to count enemies on the room's accessible tiles and
// returns how many were placed.
func (p *Placer) PlaceEnemies(room *dungeon.Room, count int, difficulty float64) int {
	candidates := p.candidates(room)
	if len(candidates) == 0 || count <= 0 {
		return 0
	}

	candidates = ScoreCandidates(p.rng, candidates, room.InnerTiles, p.corridors, p.params.CenterBias, p.params.CorridorBias)
	chosen, spacing := SpreadSample(candidates, count, p.params.MinSpacing)
	if spacing < p.params.MinSpacing {
		logger.Info("Spawn spacing relaxed",
			"room", room.Index,
			"requested_spacing", p.params.MinSpacing,
			"final_spacing", spacing)
	}

	eliteChance := pcg.Lerp(p.params.EliteChanceBase, p.params.EliteChanceMax, pcg.InverseLerp(1, 3, difficulty))
	spawned := 0
	idx := 0
	for idx < len(chosen) {
		remaining := len(chosen) - idx

		if remaining >= 3 && p.rng.Float64() < eliteChance {
			n := p.SpawnElitePack(room, chosen[idx], p.packSize(remaining), candidates, difficulty)
			spawned += n
			idx += max(1, n)
			continue
		}

		typ := p.pickType()
		if typ.PrefersGroups && remaining >= 2 && p.rng.Float64() < typ.GroupChance {
			size := pcg.ClampInt(pcg.RangeInclusive(p.rng, typ.GroupMin, typ.GroupMax), 2, remaining)
			n := p.SpawnGroup(room, chosen[idx], typ, size, candidates, difficulty)
			p.lastType = typ
			spawned += n
			idx += max(1, n)
			continue
		}

		if p.spawnEnemy(room, chosen[idx], typ, PickVariant(p.rng, typ, difficulty), false) {
			spawned++
		}
		p.lastType = typ
		idx++
	}

	if p.params.VerboseLogs {
		logger.Debug("Room populated", "room", room.Index, "requested", count, "spawned", spawned, "difficulty", difficulty)
	}
	return spawned
}

// packSize draws an elite pack size within [3, remaining]. A tail too short
// to form another pack is absorbed.
func (p *Placer) packSize(remaining int) int {
	lo := max(3, p.params.ElitePackMin)
	size := pcg.ClampInt(pcg.RangeInclusive(p.rng, lo, max(lo, p.params.ElitePackMax)), 3, remaining)
	if remaining-size < lo {
		size = min(remaining, max(lo, p.params.ElitePackMax))
	}
	return size
}

// candidates returns the room's accessible tiles that nothing holds yet.
func (p *Placer) candidates(room *dungeon.Room) []grid.Point {
	occupied := p.occupied(room)
	seen := grid.NewPointSet()
	var out []grid.Point
	for _, t := range room.AccessibleFromPath {
		if occupied.Has(t) || !seen.Add(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// occupied blocks tiles held in the room or reserved anywhere.
func (p *Placer) occupied(room *dungeon.Room) grid.Blocker {
	return grid.AnyOf(room.PropPositions, p.reserved)
}

// PlaceCorridorEnemies spawns a fraction of the room total on free corridor
// tiles, spread with the corridor spacing. It returns the number spawned.
func (p *Placer) PlaceCorridorEnemies(data *dungeon.DungeonData, roomSpawns int) int {
	extra := int(math.Round(p.params.CorridorSpawnFraction * float64(roomSpawns)))
	if extra <= 0 || len(p.enemies) == 0 {
		return 0
	}

	inRoom := grid.BlockerFunc(func(t grid.Point) bool {
		_, ok := data.RoomContaining(t)
		return ok
	})
	tiles := data.Corridors.Without(grid.AnyOf(p.reserved, inRoom)).Points()
	pcg.Shuffle(p.rng, tiles)

	chosen, spacing := SpreadSample(tiles, extra, p.params.CorridorSpacing)
	if spacing < p.params.CorridorSpacing {
		logger.Info("Corridor spawn spacing relaxed",
			"requested_spacing", p.params.CorridorSpacing,
			"final_spacing", spacing)
	}

	spawned := 0
	for _, tile := range chosen {
		typ := p.pickType()
		variant := PickVariant(p.rng, typ, p.nearestDifficulty(data, tile))
		if !p.reserved.Reserve(tile) {
			continue
		}
		id, err := p.spawner.SpawnEnemy(typ, variant, tile)
		if err != nil {
			p.reserved.Release(tile)
			logger.Warning("Corridor enemy spawn failed", "enemy", typ.Name, "tile", tile, "error", err)
			continue
		}
		data.CorridorEnemies = append(data.CorridorEnemies, dungeon.PlacedAgent{
			ID: id, Type: typ.Name, Variant: int(variant), Tile: tile,
		})
		p.lastType = typ
		spawned++
	}
	return spawned
}

// nearestDifficulty returns the difficulty of the room whose center is
// closest to tile.
func (p *Placer) nearestDifficulty(data *dungeon.DungeonData, tile grid.Point) float64 {
	best, bestDist := 1.0, math.Inf(1)
	at := grid.Vec2{X: float64(tile.X), Y: float64(tile.Y)}
	for _, r := range data.Rooms {
		if d := at.Distance(r.Center); d < bestDist {
			best, bestDist = r.Difficulty, d
		}
	}
	return max(1, best)
}

// RespawnRoom despawns the room's enemies and traps, frees their tiles and
// populates the room again with its recorded count and difficulty.
func (p *Placer) RespawnRoom(data *dungeon.DungeonData, room *dungeon.Room) (int, error) {
	p.corridors = data.Corridors

	enemies, traps := room.ClearEnemies()
	for _, e := range enemies {
		p.reserved.Release(e.Tile)
		if err := p.spawner.Despawn(e.ID); err != nil {
			logger.Warning("Enemy despawn failed", "room", room.Index, "id", e.ID, "error", err)
		}
	}
	for _, t := range traps {
		p.reserved.ReleaseAll(t.Tiles)
		if err := p.spawner.Despawn(t.ID); err != nil {
			logger.Warning("Trap despawn failed", "room", room.Index, "id", t.ID, "error", err)
		}
	}

	if !data.HasPlayer {
		return 0, ErrNoPlayer
	}
	if len(p.enemies) == 0 {
		return 0, ErrNoEnemyTypes
	}

	p.RefreshAccessible(room)
	return p.PlaceEnemies(room, room.EnemyBudget, room.Difficulty), nil
}
