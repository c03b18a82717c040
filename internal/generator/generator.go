// Package generator runs the full dungeon pipeline: reset, layout, painting,
// topology, player, props and enemies.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/lawnchairsociety/dungeonforge/internal/agents"
	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/entity"
	"github.com/lawnchairsociety/dungeonforge/internal/layout"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
	"github.com/lawnchairsociety/dungeonforge/internal/props"
	"github.com/lawnchairsociety/dungeonforge/internal/topology"
)

var (
	// ErrNotGenerated is returned by room operations before the first Generate.
	ErrNotGenerated = errors.New("generator: no dungeon generated")
	// ErrNoRoom is returned for a room index outside the current dungeon.
	ErrNoRoom = errors.New("generator: no such room")
)

// Stats summarizes one Generate call.
type Stats struct {
	Seed        int64
	Mode        layout.Mode
	Fingerprint string

	Rooms         int
	FloorTiles    int
	CorridorTiles int
	Walls         int

	Props           int
	PlayerPlaced    bool
	RoomEnemies     int
	CorridorEnemies int

	// Corrections lists configuration values Validate had to clamp.
	Corrections []string
	// Skipped lists configuration problems that skipped a placement pass.
	Skipped []error

	Duration time.Duration
}

// Generator owns one dungeon and the entities spawned into it. It is safe
// for concurrent use; calls are serialized.
type Generator struct {
	mu sync.Mutex

	cfg         config.Config
	catalog     *catalog.Catalog
	spawner     dungeon.EntitySpawner
	painter     dungeon.TilePainter
	fingerprint string
	corrections []string

	data      *dungeon.DungeonData
	reserved  *dungeon.Reservations
	props     *props.Placer
	agents    *agents.Placer
	generated bool
	last      Stats
}

// New validates a copy of cfg and returns a generator. A nil catalog uses
// the built-in one and a nil spawner an in-memory entity.Registry. painter
// may be nil.
func New(cfg *config.Config, cat *catalog.Catalog, spawner dungeon.EntitySpawner, painter dungeon.TilePainter) (*Generator, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if spawner == nil {
		spawner = entity.NewRegistry()
	}

	g := &Generator{
		cfg:      *cfg,
		catalog:  cat,
		spawner:  spawner,
		painter:  painter,
		data:     dungeon.NewDungeonData(),
		reserved: dungeon.NewReservations(),
	}

	g.corrections = g.cfg.Validate()
	for _, fix := range g.corrections {
		logger.Warning("Config corrected", "correction", fix)
	}

	fp, err := g.cfg.Fingerprint()
	if err != nil {
		return nil, err
	}
	g.fingerprint = fp
	return g, nil
}

// Config returns the validated configuration.
func (g *Generator) Config() config.Config {
	return g.cfg
}

// Fingerprint returns the config fingerprint recorded with every run.
func (g *Generator) Fingerprint() string {
	return g.fingerprint
}

// Spawner returns the entity spawner in use.
func (g *Generator) Spawner() dungeon.EntitySpawner {
	return g.spawner
}

// Generate discards the current dungeon and builds a new one from seed.
// Configuration problems are reported in Stats.Skipped; only a layout
// failure returns an error.
func (g *Generator) Generate(seed int64) (*dungeon.DungeonData, Stats, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	start := time.Now()
	g.reset()

	rng := pcg.NewRand(seed)
	res, err := layout.NewBuilder(g.cfg.Layout, rng).Build()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("build layout: %w", err)
	}

	data := g.data
	data.Floor = res.Floor
	data.Corridors = res.Corridors
	data.Rooms = res.Rooms
	data.Walls = layout.FindWalls(data.Floor)
	layout.Paint(g.painter, data.Floor, data.Walls)

	topology.Extract(data.Rooms)

	stats := Stats{
		Seed:          seed,
		Mode:          g.cfg.Layout.Mode,
		Fingerprint:   g.fingerprint,
		Rooms:         len(data.Rooms),
		FloorTiles:    data.Floor.Len(),
		CorridorTiles: data.Corridors.Len(),
		Walls:         len(data.Walls),
		Corrections:   g.corrections,
	}

	g.agents = agents.NewPlacer(g.cfg.Agents, rng, g.spawner, g.reserved, g.catalog)
	placed := g.agents.PlacePlayer(data)

	g.props = props.NewPlacer(g.cfg.Props, rng, g.spawner, g.reserved)
	if len(g.catalog.Props) == 0 {
		stats.Skipped = append(stats.Skipped, props.ErrNoTemplates)
	}
	stats.Props = g.props.Place(data, g.catalog.Props)

	g.agents.PlaceAgents(data, &placed)
	stats.PlayerPlaced = placed.PlayerPlaced
	stats.RoomEnemies = placed.RoomEnemies
	stats.CorridorEnemies = placed.CorridorEnemies
	stats.Skipped = append(stats.Skipped, placed.Skipped...)

	stats.Duration = time.Since(start)
	g.generated = true
	g.last = stats

	logger.Audit("Dungeon generated",
		"seed", seed,
		"fingerprint", g.fingerprint,
		"mode", stats.Mode,
		"rooms", stats.Rooms,
		"props", stats.Props,
		"enemies", stats.RoomEnemies+stats.CorridorEnemies,
		"skipped", len(stats.Skipped),
		"duration", stats.Duration)
	return data, stats, nil
}

// Data returns the current dungeon, or nil before the first Generate.
func (g *Generator) Data() *dungeon.DungeonData {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.generated {
		return nil
	}
	return g.data
}

// LastStats returns the stats of the most recent Generate.
func (g *Generator) LastStats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// RespawnRoom clears the enemies and traps of room index and populates it
// again with the same count and difficulty. It returns the enemies placed.
func (g *Generator) RespawnRoom(index int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, err := g.room(index)
	if err != nil {
		return 0, err
	}
	n, err := g.agents.RespawnRoom(g.data, room)
	if err != nil {
		return 0, fmt.Errorf("respawn room %d: %w", index, err)
	}
	logger.Info("Room respawned", "room", index, "enemies", n)
	return n, nil
}

// BreakProp destroys the destructible prop id in room index.
func (g *Generator) BreakProp(index int, id dungeon.EntityID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, err := g.room(index)
	if err != nil {
		return err
	}
	if err := g.props.Break(room, id); err != nil {
		return err
	}
	logger.Debug("Prop broken", "room", index, "id", id)
	return nil
}

func (g *Generator) room(index int) (*dungeon.Room, error) {
	if !g.generated {
		return nil, ErrNotGenerated
	}
	room, ok := g.data.Room(index)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoRoom, index)
	}
	return room, nil
}

// reset despawns everything from the previous dungeon and clears all state.
func (g *Generator) reset() {
	if g.generated {
		for _, id := range spawnedIDs(g.data) {
			if err := g.spawner.Despawn(id); err != nil {
				logger.Warning("Despawn during reset failed", "id", id, "error", err)
			}
		}
	}
	g.data.Reset()
	g.reserved.Reset()
	g.generated = false
}

func spawnedIDs(data *dungeon.DungeonData) []dungeon.EntityID {
	var ids []dungeon.EntityID
	if data.HasPlayer {
		ids = append(ids, data.Player)
	}
	for _, r := range data.Rooms {
		for _, p := range r.Props {
			ids = append(ids, p.ID)
		}
		for _, t := range r.Traps {
			ids = append(ids, t.ID)
		}
		for _, e := range r.Enemies {
			ids = append(ids, e.ID)
		}
	}
	for _, e := range data.CorridorEnemies {
		ids = append(ids, e.ID)
	}
	return ids
}

// NewSeed returns a clock-derived seed for runs without an explicit one.
func NewSeed() int64 {
	return rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
}
