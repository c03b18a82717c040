package agents

import (
	"math"
	"math/rand"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
)

// antiStreak scales the weight of the type placed last.
const antiStreak = 0.55

// pickType draws an enemy type by spawn weight, discouraging a repeat of the
// previous type.
func (p *Placer) pickType() *catalog.EnemyType {
	i := pcg.WeightedPick(p.rng, len(p.enemies), func(i int) float64 {
		w := max(0, p.enemies[i].SpawnWeight)
		if p.enemies[i] == p.lastType {
			w *= antiStreak
		}
		return w
	})
	return p.enemies[i]
}

// PickVariant draws a variant of typ. Higher difficulty shifts weight from
// the weak variant to the standard and elite ones.
func PickVariant(rng *rand.Rand, typ *catalog.EnemyType, difficulty float64) catalog.VariantIndex {
	if len(typ.Variants) < catalog.VariantCount {
		return catalog.VariantIndex(rng.Intn(catalog.VariantCount))
	}

	t := pcg.InverseLerp(1, 3, difficulty)
	weights := [catalog.VariantCount]float64{
		max(0, typ.VariantWeight(catalog.VariantWeak)) * pcg.Lerp(1, 0.55, t),
		max(0, typ.VariantWeight(catalog.VariantStandard)) * pcg.Lerp(1, 1.25, t),
		max(0, typ.VariantWeight(catalog.VariantElite)) * pcg.Lerp(1, 1.90, t),
	}
	return catalog.VariantIndex(pcg.WeightedPick(rng, len(weights), func(i int) float64 { return weights[i] }))
}

// StrongestVariant returns the strongest variant of typ with a nonzero
// weight.
func StrongestVariant(typ *catalog.EnemyType) catalog.VariantIndex {
	if len(typ.Variants) < catalog.VariantCount {
		return catalog.VariantElite
	}
	switch {
	case typ.VariantWeight(catalog.VariantElite) > 0:
		return catalog.VariantElite
	case typ.VariantWeight(catalog.VariantStandard) > 0:
		return catalog.VariantStandard
	default:
		return catalog.VariantWeak
	}
}

// nearby returns the free candidates within radius of anchor, shuffled. The
// anchor itself is used when nothing else is free.
func (p *Placer) nearby(room *dungeon.Room, anchor grid.Point, candidates []grid.Point, radius int) []grid.Point {
	occupied := p.occupied(room)
	var local []grid.Point
	for _, t := range candidates {
		if !occupied.Has(t) && grid.Manhattan(t, anchor) <= radius {
			local = append(local, t)
		}
	}
	pcg.Shuffle(p.rng, local)
	if len(local) == 0 {
		local = append(local, anchor)
	}
	return local
}

// SpawnGroup places up to size enemies of typ around anchor and returns how
// many were spawned.
func (p *Placer) SpawnGroup(room *dungeon.Room, anchor grid.Point, typ *catalog.EnemyType, size int, candidates []grid.Point, difficulty float64) int {
	local := p.nearby(room, anchor, candidates, int(math.Ceil(p.params.GroupRadius)))

	spawned := 0
	for i := 0; i < size && i < len(local); i++ {
		if p.spawnEnemy(room, local[i], typ, PickVariant(p.rng, typ, difficulty*0.9), false) {
			spawned++
		}
	}
	return spawned
}

// SpawnElitePack places a leader with the strongest variant and up to
// total-1 weaker minions of one type around anchor. It returns how many
// were spawned.
func (p *Placer) SpawnElitePack(room *dungeon.Room, anchor grid.Point, total int, candidates []grid.Point, difficulty float64) int {
	typ := p.pickType()
	local := p.nearby(room, anchor, candidates, int(math.Ceil(p.params.GroupRadius+1)))

	spawned := 0
	if p.spawnEnemy(room, local[0], typ, StrongestVariant(typ), true) {
		spawned++
	}
	for i := 1; i < total && i < len(local); i++ {
		if p.spawnEnemy(room, local[i], typ, PickVariant(p.rng, typ, difficulty*0.8), false) {
			spawned++
		}
	}
	p.lastType = typ
	return spawned
}

// spawnEnemy claims tile and spawns one enemy. Tiles already held are
// skipped, and a refused spawn gives the tile back.
func (p *Placer) spawnEnemy(room *dungeon.Room, tile grid.Point, typ *catalog.EnemyType, variant catalog.VariantIndex, elite bool) bool {
	if room.Occupied(tile) || !p.reserved.Reserve(tile) {
		return false
	}
	id, err := p.spawner.SpawnEnemy(typ, variant, tile)
	if err != nil {
		p.reserved.Release(tile)
		logger.Warning("Enemy spawn failed", "enemy", typ.Name, "room", room.Index, "tile", tile, "error", err)
		return false
	}

	room.AddEnemy(dungeon.PlacedAgent{
		ID:      id,
		Type:    typ.Name,
		Variant: int(variant),
		Tile:    tile,
		Elite:   elite,
	})
	if p.params.VerboseLogs {
		logger.Debug("Enemy spawned", "enemy", typ.Name, "variant", variant.String(), "room", room.Index, "tile", tile, "elite", elite)
	}
	return true
}
