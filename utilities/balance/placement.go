// Package balance provides Monte Carlo tools for tuning enemy placement.
package balance

import (
	"math"
	"sort"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/generator"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
)

// DifficultyBucket aggregates rooms whose difficulty falls in [Low, High).
type DifficultyBucket struct {
	Low, High float64

	Rooms      int
	AvgEnemies float64
	AvgThreat  float64 // summed hit points of the room's enemies
	EliteRate  float64 // percent of enemies that are elite pack members
}

// PlacementResult aggregates many generated dungeons.
type PlacementResult struct {
	Dungeons int
	Failures int

	AvgRooms           float64
	AvgProps           float64
	AvgRoomEnemies     float64
	AvgCorridorEnemies float64
	EmptyRooms         int // non-player rooms that received no enemies
	PlayerRoomEnemies  int // enemies found in the player room, always 0 when healthy

	EliteRate     float64
	VariantCounts [catalog.VariantCount]int
	TypeCounts    map[string]int

	Buckets []DifficultyBucket
}

// bucketWidth groups room difficulty for the report.
const bucketWidth = 0.25

// RunPlacementSim generates one dungeon per seed and aggregates the result.
func RunPlacementSim(cfg *config.Config, cat *catalog.Catalog, seeds []int64) PlacementResult {
	result := PlacementResult{TypeCounts: make(map[string]int)}

	gen, err := generator.New(cfg, cat, nil, nil)
	if err != nil {
		logger.Error("Balance generator setup failed", "error", err)
		result.Failures = len(seeds)
		return result
	}
	if cat == nil {
		cat = catalog.Default()
	}

	type bucketSums struct {
		rooms, enemies, elites int
		threat                 float64
	}
	buckets := make(map[int]*bucketSums)

	var rooms, props, roomEnemies, corridorEnemies, elites, total int
	for _, seed := range seeds {
		data, stats, err := gen.Generate(seed)
		if err != nil {
			result.Failures++
			continue
		}
		result.Dungeons++
		rooms += stats.Rooms
		props += stats.Props
		roomEnemies += stats.RoomEnemies
		corridorEnemies += stats.CorridorEnemies

		for _, room := range data.Rooms {
			if data.HasPlayer && room.Index == data.PlayerRoom {
				result.PlayerRoomEnemies += len(room.Enemies)
				continue
			}
			if len(room.Enemies) == 0 {
				result.EmptyRooms++
			}

			key := int(math.Floor(room.Difficulty / bucketWidth))
			b := buckets[key]
			if b == nil {
				b = &bucketSums{}
				buckets[key] = b
			}
			b.rooms++
			b.enemies += len(room.Enemies)
			for _, e := range room.Enemies {
				b.threat += threat(cat, e)
				if e.Elite {
					b.elites++
				}
			}
		}

		for _, e := range allEnemies(data) {
			total++
			if e.Elite {
				elites++
			}
			if e.Variant >= 0 && e.Variant < catalog.VariantCount {
				result.VariantCounts[e.Variant]++
			}
			result.TypeCounts[e.Type]++
		}
	}

	if result.Dungeons == 0 {
		return result
	}
	n := float64(result.Dungeons)
	result.AvgRooms = float64(rooms) / n
	result.AvgProps = float64(props) / n
	result.AvgRoomEnemies = float64(roomEnemies) / n
	result.AvgCorridorEnemies = float64(corridorEnemies) / n
	if total > 0 {
		result.EliteRate = float64(elites) / float64(total) * 100
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		b := buckets[k]
		db := DifficultyBucket{
			Low:        float64(k) * bucketWidth,
			High:       float64(k+1) * bucketWidth,
			Rooms:      b.rooms,
			AvgEnemies: float64(b.enemies) / float64(b.rooms),
			AvgThreat:  b.threat / float64(b.rooms),
		}
		if b.enemies > 0 {
			db.EliteRate = float64(b.elites) / float64(b.enemies) * 100
		}
		result.Buckets = append(result.Buckets, db)
	}
	return result
}

func allEnemies(data *dungeon.DungeonData) []dungeon.PlacedAgent {
	enemies := append([]dungeon.PlacedAgent(nil), data.CorridorEnemies...)
	for _, r := range data.Rooms {
		enemies = append(enemies, r.Enemies...)
	}
	return enemies
}

// threat is the effective hit points of one placed enemy.
func threat(cat *catalog.Catalog, e dungeon.PlacedAgent) float64 {
	typ := cat.Enemy(e.Type)
	if typ == nil {
		return 0
	}
	hp, _, _ := typ.Stats(catalog.VariantIndex(e.Variant))
	return float64(hp)
}

// SeedRange returns count consecutive seeds starting at first.
func SeedRange(first int64, count int) []int64 {
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds
}
