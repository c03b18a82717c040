// Package layout builds the dungeon floor plan: floor tiles, corridors and
// the rooms that own the non-corridor floor.
package layout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
)

// ErrUnknownMode is returned for an unrecognised generation mode.
var ErrUnknownMode = errors.New("layout: unknown generation mode")

// Mode selects the layout algorithm.
type Mode string

const (
	ModeRandomWalk    Mode = "random_walk"
	ModeCorridorFirst Mode = "corridor_first"
	ModeRoomsFirst    Mode = "rooms_first"
)

// CorridorParams configures corridor-first generation.
type CorridorParams struct {
	CorridorLength int     `yaml:"corridor_length"`
	CorridorCount  int     `yaml:"corridor_count"`
	RoomPercent    float64 `yaml:"room_percent"`
}

// RoomsParams configures rooms-first generation.
type RoomsParams struct {
	MinRoomWidth        int  `yaml:"min_room_width"`
	MinRoomHeight       int  `yaml:"min_room_height"`
	DungeonWidth        int  `yaml:"dungeon_width"`
	DungeonHeight       int  `yaml:"dungeon_height"`
	Offset              int  `yaml:"offset"`
	RandomRoomPlacement bool `yaml:"random_room_placement"`
}

// Params configures a Builder.
type Params struct {
	Mode          Mode           `yaml:"mode"`
	Start         grid.Point     `yaml:"start"`
	Walk          pcg.WalkParams `yaml:"random_walk"`
	CorridorFirst CorridorParams `yaml:"corridor_first"`
	RoomsFirst    RoomsParams    `yaml:"rooms_first"`

	// ReconcilePadding widens each room's box when it re-claims tiles
	// added by hole filling and smoothing.
	ReconcilePadding int `yaml:"reconcile_padding"`
	// SmoothIterations is the number of dent-filling passes.
	SmoothIterations int `yaml:"smooth_iterations"`
}

// DefaultParams returns rooms-first defaults.
func DefaultParams() Params {
	return Params{
		Mode:  ModeRoomsFirst,
		Start: grid.Pt(0, 0),
		Walk: pcg.WalkParams{
			Iterations:    10,
			WalkLength:    10,
			StartRandomly: true,
		},
		CorridorFirst: CorridorParams{
			CorridorLength: 14,
			CorridorCount:  10,
			RoomPercent:    0.8,
		},
		RoomsFirst: RoomsParams{
			MinRoomWidth:  5,
			MinRoomHeight: 5,
			DungeonWidth:  50,
			DungeonHeight: 50,
			Offset:        1,
		},
		ReconcilePadding: 2,
		SmoothIterations: 1,
	}
}

// Result is a finished floor plan.
type Result struct {
	Floor     *grid.PointSet
	Corridors *grid.PointSet
	Rooms     []*dungeon.Room
}

// Builder runs one layout algorithm.
type Builder struct {
	params Params
	rng    *rand.Rand
}

// NewBuilder creates a builder drawing from rng.
func NewBuilder(params Params, rng *rand.Rand) *Builder {
	return &Builder{params: params, rng: rng}
}

// Build generates a new floor plan.
func (b *Builder) Build() (*Result, error) {
	var (
		res *Result
		err error
	)
	switch b.params.Mode {
	case ModeRandomWalk:
		res = b.buildRandomWalk()
	case ModeCorridorFirst:
		res = b.buildCorridorFirst()
	case ModeRoomsFirst, "":
		res = b.buildRoomsFirst()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMode, b.params.Mode)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Layout built",
		"mode", b.params.Mode,
		"floor_tiles", res.Floor.Len(),
		"corridor_tiles", res.Corridors.Len(),
		"rooms", len(res.Rooms))
	return res, nil
}

func (b *Builder) buildRandomWalk() *Result {
	floor := pcg.RunRandomWalks(b.rng, b.params.Walk, b.params.Start)
	room := dungeon.NewRoom(0, centroid(floor), floor.Clone())
	return &Result{
		Floor:     floor,
		Corridors: grid.NewPointSet(),
		Rooms:     []*dungeon.Room{room},
	}
}

// centroid returns the mean tile position of s.
func centroid(s *grid.PointSet) grid.Vec2 {
	if s.Len() == 0 {
		return grid.Vec2{}
	}
	var sx, sy float64
	s.Each(func(p grid.Point) {
		sx += float64(p.X)
		sy += float64(p.Y)
	})
	n := float64(s.Len())
	return grid.Vec2{X: sx / n, Y: sy / n}
}

// ExpandBrush widens path to a 3x3 brush around every tile.
func ExpandBrush(path []grid.Point) *grid.PointSet {
	out := grid.NewPointSet()
	for _, p := range path {
		out.Add(p)
		for _, n := range grid.Neighbors8(p) {
			out.Add(n)
		}
	}
	return out
}
