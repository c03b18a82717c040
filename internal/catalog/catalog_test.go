package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNormalizeChance(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.25, 0.25},
		{1, 1},
		{40, 0.4},
		{250, 1},
		{-3, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeChance(tt.in), 1e-9, "NormalizeChance(%v)", tt.in)
	}
}

func TestClassFallsBackToSwordsman(t *testing.T) {
	cat := Default()
	assert.Equal(t, "mage", cat.Class("Mage").Name)
	assert.Equal(t, "swordsman", cat.Class("").Name)
	assert.Equal(t, "swordsman", cat.Class("necromancer").Name)

	sword := cat.Class("swordsman")
	assert.Equal(t, 120, sword.MaxHealth)
	assert.Equal(t, 80, sword.MaxStamina)
	assert.Equal(t, 10, sword.Damage)
	assert.Equal(t, 8, sword.Defense)

	empty := &Catalog{}
	assert.Nil(t, empty.Class("mage"))
}

func TestDefaultEnemiesHaveThreeVariants(t *testing.T) {
	for _, e := range DefaultEnemies() {
		assert.Len(t, e.Variants, VariantCount, e.Name)
	}
}

func TestEnemyStats(t *testing.T) {
	e := DefaultEnemies()[0]
	hp, dmg, speed := e.Stats(VariantElite)
	assert.Equal(t, 18, hp)
	assert.Equal(t, 3, dmg)
	assert.InDelta(t, 1.8, speed, 1e-9)

	hp, _, _ = e.Stats(VariantIndex(7))
	assert.Equal(t, e.BaseHP, hp)
}

func TestLoadPropsAppliesCorrections(t *testing.T) {
	path := writeFile(t, "props.yaml", `props:
  - name: table
    size: {w: 0, h: 2}
    inner: true
    quantity_min: 0
    quantity_max: -1
    spawn_chance: 35
  - name: coffer
    only_corner: true
    place_as_group: true
    group_min: 3
    group_max: 1
`)

	props, err := LoadPropsFromYAML(path)
	require.NoError(t, err)
	require.Len(t, props, 2)

	table := props[0]
	w, h := table.Footprint()
	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 1, table.QuantityMin)
	assert.Equal(t, 1, table.QuantityMax)
	assert.InDelta(t, 0.35, table.Chance(), 1e-9)

	coffer := props[1]
	assert.True(t, coffer.Corner, "only-corner props are corner props")
	assert.Equal(t, 3, coffer.GroupMax)
	assert.Equal(t, 1.0, coffer.Chance(), "missing chance defaults to always")
}

func TestLoadEnemiesPadsVariants(t *testing.T) {
	path := writeFile(t, "enemies.yaml", `enemies:
  - name: bat
    controller: melee
    base_hp: 4
    spawn_weight: -2
    group_min: 1
    group_max: 0
    variants:
      - name: tiny
        hp_multiplier: 0.5
        spawn_weight: 2
`)

	enemies, err := LoadEnemiesFromYAML(path)
	require.NoError(t, err)
	require.Len(t, enemies, 1)

	bat := enemies[0]
	assert.Equal(t, 0.0, bat.SpawnWeight)
	assert.Equal(t, 2, bat.GroupMin)
	assert.Equal(t, 2, bat.GroupMax)
	require.Len(t, bat.Variants, VariantCount)
	assert.Equal(t, "tiny", bat.Variants[0].Name)
	assert.Equal(t, 1.0, bat.Variants[0].DamageMultiplier)
	assert.Equal(t, "elite", bat.Variants[2].Name)
	assert.Equal(t, 2.0, bat.VariantWeight(VariantWeak))
}

func TestLoadEmptyFiles(t *testing.T) {
	_, err := LoadEnemiesFromYAML(writeFile(t, "enemies.yaml", "enemies: []\n"))
	assert.True(t, errors.Is(err, ErrEmptyCatalog))

	_, err = LoadClassesFromYAML(writeFile(t, "classes.yaml", "classes:\n  - max_health: 3\n"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Paths{Props: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestLoadMergesWithDefaults(t *testing.T) {
	classes := writeFile(t, "classes.yaml", `classes:
  - name: knight
    max_health: 150
    combat: melee
`)
	cat, err := Load(Paths{Classes: classes})
	require.NoError(t, err)

	assert.Len(t, cat.Classes, 1)
	assert.Equal(t, "knight", cat.Class("anything").Name, "first class when swordsman is absent")
	assert.Equal(t, len(DefaultEnemies()), len(cat.Enemies))
	assert.NotNil(t, cat.Prop("chest"))
	assert.NotNil(t, cat.Enemy("slime"))
}

func TestLoadSampleEnemiesFile(t *testing.T) {
	enemies, err := LoadEnemiesFromYAML(filepath.Join("..", "..", "data", "catalog", "enemies.yaml"))
	require.NoError(t, err)
	require.Len(t, enemies, 2)

	bat := enemies[1]
	assert.Equal(t, "bat", bat.Name)
	assert.InDelta(t, 0.8, bat.GroupChance, 1e-9)
	assert.Len(t, bat.Variants, VariantCount)
}
