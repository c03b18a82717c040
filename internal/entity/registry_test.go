package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

func TestSpawnPlayerAppliesClass(t *testing.T) {
	r := NewRegistry()
	cls := catalog.Default().Class("archer")

	id, err := r.SpawnPlayer(cls, grid.Pt(3, 4))
	require.NoError(t, err)

	e, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, KindPlayer, e.Kind)
	assert.Equal(t, 90, e.HP)
	assert.Equal(t, 110, e.Stamina)
	assert.Equal(t, "ranged", e.Behaviour)
	assert.Equal(t, grid.Pt(3, 4), e.Tile)

	_, err = r.SpawnPlayer(nil, grid.Pt(0, 0))
	assert.ErrorIs(t, err, dungeon.ErrSpawnRejected)
}

func TestSpawnEnemyScalesStats(t *testing.T) {
	r := NewRegistry()
	skeleton := catalog.Default().Enemy("skeleton")
	require.NotNil(t, skeleton)

	id, err := r.SpawnEnemy(skeleton, catalog.VariantElite, grid.Pt(1, 1))
	require.NoError(t, err)
	e, _ := r.Get(id)
	hp, dmg, _ := skeleton.Stats(catalog.VariantElite)
	assert.Equal(t, hp, e.HP)
	assert.Equal(t, dmg, e.Damage)
	assert.Equal(t, catalog.VariantElite, e.Variant)
}

func TestSpawnEnemyRejectsUnknownController(t *testing.T) {
	r := NewRegistry("melee")
	cultist := catalog.Default().Enemy("cultist")
	require.NotNil(t, cultist)

	_, err := r.SpawnEnemy(cultist, catalog.VariantStandard, grid.Pt(0, 0))
	assert.ErrorIs(t, err, dungeon.ErrSpawnRejected)
	assert.Zero(t, r.Len())
}

func TestSpawnPropAndDespawn(t *testing.T) {
	r := NewRegistry()
	crate := catalog.Default().Prop("crate")
	require.NotNil(t, crate)

	id, err := r.SpawnProp(crate, grid.Pt(2, 2))
	require.NoError(t, err)
	e, _ := r.Get(id)
	assert.Equal(t, crate.MaxHP, e.HP)
	assert.Equal(t, 1, r.Count(KindProp))

	require.NoError(t, r.Despawn(id))
	assert.ErrorIs(t, r.Despawn(id), ErrUnknownEntity)
	assert.Zero(t, r.Len())
}

func TestIDsKeepIncreasingAfterReset(t *testing.T) {
	r := NewRegistry()
	cls := catalog.Default().Class("")
	a, _ := r.SpawnPlayer(cls, grid.Pt(0, 0))
	r.Reset()
	b, _ := r.SpawnPlayer(cls, grid.Pt(0, 0))
	assert.Greater(t, b, a)
	assert.Len(t, r.All(), 1)
}
