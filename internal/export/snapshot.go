// Package export saves generated dungeons as YAML snapshots and renders
// them as ASCII maps.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// Snapshot is a self-contained record of one generated dungeon.
type Snapshot struct {
	Seed        int64     `yaml:"seed"`
	Mode        string    `yaml:"mode"`
	Fingerprint string    `yaml:"fingerprint"`
	SavedAt     time.Time `yaml:"saved_at"`

	Floor     []grid.Point `yaml:"floor,flow"`
	Corridors []grid.Point `yaml:"corridors,flow"`
	Walls     []Wall       `yaml:"walls"`

	Player *Player `yaml:"player,omitempty"`
	Rooms  []Room  `yaml:"rooms"`

	CorridorEnemies []Enemy `yaml:"corridor_enemies,omitempty"`
}

// Meta identifies the run a snapshot came from.
type Meta struct {
	Seed        int64
	Mode        string
	Fingerprint string
}

// Wall is one wall tile.
type Wall struct {
	Pos     grid.Point `yaml:"pos,flow"`
	Kind    string     `yaml:"kind"`
	Pattern uint8      `yaml:"pattern"`
}

// Player is the player spawn.
type Player struct {
	ID   uint64     `yaml:"id"`
	Tile grid.Point `yaml:"tile,flow"`
	Room int        `yaml:"room"`
}

// Room is one room with its classification and contents.
type Room struct {
	Index       int       `yaml:"index"`
	Center      grid.Vec2 `yaml:"center,flow"`
	Difficulty  float64   `yaml:"difficulty"`
	EnemyBudget int       `yaml:"enemy_budget"`

	Floor    []grid.Point            `yaml:"floor,flow"`
	Inner    []grid.Point            `yaml:"inner,flow"`
	Corners  []grid.Point            `yaml:"corners,flow"`
	NearWall map[string][]grid.Point `yaml:"near_wall"`

	Props   []Prop  `yaml:"props,omitempty"`
	Traps   []Prop  `yaml:"traps,omitempty"`
	Enemies []Enemy `yaml:"enemies,omitempty"`
}

// Prop is one placed prop or trap.
type Prop struct {
	ID     uint64       `yaml:"id"`
	Name   string       `yaml:"name"`
	Anchor grid.Point   `yaml:"anchor,flow"`
	Tiles  []grid.Point `yaml:"tiles,flow"`
	HP     int          `yaml:"hp,omitempty"`
}

// Enemy is one placed enemy.
type Enemy struct {
	ID      uint64     `yaml:"id"`
	Type    string     `yaml:"type"`
	Variant string     `yaml:"variant"`
	Tile    grid.Point `yaml:"tile,flow"`
	Elite   bool       `yaml:"elite,omitempty"`
}

// FromDungeon captures data.
func FromDungeon(data *dungeon.DungeonData, meta Meta) *Snapshot {
	s := &Snapshot{
		Seed:        meta.Seed,
		Mode:        meta.Mode,
		Fingerprint: meta.Fingerprint,
		SavedAt:     time.Now().UTC(),
		Floor:       data.Floor.Points(),
		Corridors:   data.Corridors.Points(),
	}

	for _, w := range data.Walls {
		s.Walls = append(s.Walls, Wall{Pos: w.Pos, Kind: w.Kind.String(), Pattern: w.Pattern})
	}
	if data.HasPlayer {
		s.Player = &Player{ID: uint64(data.Player), Tile: data.PlayerTile, Room: data.PlayerRoom}
	}

	for _, r := range data.Rooms {
		room := Room{
			Index:       r.Index,
			Center:      r.Center,
			Difficulty:  r.Difficulty,
			EnemyBudget: r.EnemyBudget,
			Floor:       r.FloorTiles.Points(),
			Inner:       r.InnerTiles.Points(),
			Corners:     r.CornerTiles.Points(),
			NearWall:    make(map[string][]grid.Point, len(dungeon.Sides)),
		}
		for _, side := range dungeon.Sides {
			if pts := r.NearWallTiles(side).Points(); len(pts) > 0 {
				room.NearWall[side.String()] = pts
			}
		}
		for _, p := range r.Props {
			room.Props = append(room.Props, fromProp(p))
		}
		for _, p := range r.Traps {
			room.Traps = append(room.Traps, fromProp(p))
		}
		for _, e := range r.Enemies {
			room.Enemies = append(room.Enemies, fromAgent(e))
		}
		s.Rooms = append(s.Rooms, room)
	}

	for _, e := range data.CorridorEnemies {
		s.CorridorEnemies = append(s.CorridorEnemies, fromAgent(e))
	}
	return s
}

func fromProp(p dungeon.PlacedProp) Prop {
	return Prop{ID: uint64(p.ID), Name: p.Name, Anchor: p.Anchor, Tiles: p.Tiles, HP: p.HP}
}

func fromAgent(a dungeon.PlacedAgent) Enemy {
	return Enemy{
		ID:      uint64(a.ID),
		Type:    a.Type,
		Variant: catalog.VariantIndex(a.Variant).String(),
		Tile:    a.Tile,
		Elite:   a.Elite,
	}
}

// EnemyCount returns every enemy in rooms and corridors.
func (s *Snapshot) EnemyCount() int {
	n := len(s.CorridorEnemies)
	for _, r := range s.Rooms {
		n += len(r.Enemies)
	}
	return n
}

// WriteYAML saves s to path, creating parent directories.
func WriteYAML(path string, s *Snapshot) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// ReadYAML loads a snapshot saved by WriteYAML.
func ReadYAML(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &s, nil
}
