package catalog

import "strings"

// DefaultClassName is used when no class, or an unknown one, is selected.
const DefaultClassName = "swordsman"

// Catalog bundles every template available to one generation run.
type Catalog struct {
	Props   []*PropDefinition
	Enemies []*EnemyType
	Classes []*PlayerClass
}

// Class returns the class called name, falling back to the swordsman and
// then to the first configured class.
func (c *Catalog) Class(name string) *PlayerClass {
	if cls := c.findClass(name); cls != nil {
		return cls
	}
	if cls := c.findClass(DefaultClassName); cls != nil {
		return cls
	}
	if len(c.Classes) > 0 {
		return c.Classes[0]
	}
	return nil
}

func (c *Catalog) findClass(name string) *PlayerClass {
	for _, cls := range c.Classes {
		if strings.EqualFold(cls.Name, name) {
			return cls
		}
	}
	return nil
}

// Enemy returns the enemy type called name.
func (c *Catalog) Enemy(name string) *EnemyType {
	for _, e := range c.Enemies {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Prop returns the prop template called name.
func (c *Catalog) Prop(name string) *PropDefinition {
	for _, p := range c.Props {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Props:   DefaultProps(),
		Enemies: DefaultEnemies(),
		Classes: DefaultClasses(),
	}
}

// DefaultClasses returns the three playable classes.
func DefaultClasses() []*PlayerClass {
	return []*PlayerClass{
		{Name: "swordsman", MaxHealth: 120, MaxStamina: 80, Damage: 10, Defense: 8, Combat: "melee"},
		{Name: "archer", MaxHealth: 90, MaxStamina: 110, Damage: 8, Defense: 4, Combat: "ranged"},
		{Name: "mage", MaxHealth: 70, MaxStamina: 130, Damage: 12, Defense: 2, Combat: "arcane"},
	}
}

// DefaultVariants returns weak, standard and elite variants with equal weight.
func DefaultVariants() []Variant {
	return []Variant{
		{Name: "weak", HPMultiplier: 0.75, DamageMultiplier: 0.75, SpeedMultiplier: 1.1, ScaleMultiplier: 0.9, SpawnWeight: 1},
		{Name: "standard", HPMultiplier: 1, DamageMultiplier: 1, SpeedMultiplier: 1, ScaleMultiplier: 1, SpawnWeight: 1},
		{Name: "elite", HPMultiplier: 1.8, DamageMultiplier: 1.5, SpeedMultiplier: 0.9, ScaleMultiplier: 1.25, SpawnWeight: 1},
	}
}

// DefaultEnemies returns the built-in enemy roster.
func DefaultEnemies() []*EnemyType {
	return []*EnemyType{
		{
			Name: "skeleton", Controller: "melee",
			BaseHP: 10, BaseDamage: 2, MoveSpeed: 2, AggroRange: 6, AttackRange: 0.8, AttackCooldown: 1.2,
			SpawnWeight: 1, PrefersGroups: true, GroupMin: 2, GroupMax: 5, GroupChance: 0.6,
			Variants: DefaultVariants(),
		},
		{
			Name: "slime", Controller: "melee",
			BaseHP: 6, BaseDamage: 1, MoveSpeed: 1.5, AggroRange: 5, AttackRange: 0.6, AttackCooldown: 1,
			SpawnWeight: 1.5, PrefersGroups: true, GroupMin: 3, GroupMax: 5, GroupChance: 0.75,
			Variants: DefaultVariants(),
		},
		{
			Name: "cultist", Controller: "ranged",
			BaseHP: 8, BaseDamage: 3, MoveSpeed: 2.2, AggroRange: 8, AttackRange: 5, AttackCooldown: 1.8,
			SpawnWeight: 0.6, PrefersGroups: false, GroupMin: 2, GroupMax: 3, GroupChance: 0.2,
			Variants: DefaultVariants(),
		},
	}
}

// DefaultProps returns the built-in prop set.
func DefaultProps() []*PropDefinition {
	return []*PropDefinition{
		{
			Name: "chest", Size: Size{W: 1, H: 1}, Corner: true, OnlyCorner: true,
			QuantityMin: 1, QuantityMax: 1, SpawnChance: 0.5, Interactable: true, Colliders: true,
		},
		{
			Name: "crate", Size: Size{W: 1, H: 1}, Corner: true,
			NearWallUp: true, NearWallDown: true, NearWallLeft: true, NearWallRight: true,
			QuantityMin: 1, QuantityMax: 3, PlaceAsGroup: true, GroupMin: 2, GroupMax: 4,
			SpawnChance: 70, Destructible: true, MaxHP: 3, Colliders: true,
		},
		{
			Name: "bookshelf", Size: Size{W: 2, H: 1}, NearWallUp: true,
			QuantityMin: 1, QuantityMax: 2, SpawnChance: 0.6, Colliders: true,
		},
		{
			Name: "banner", Size: Size{W: 1, H: 2}, NearWallLeft: true, NearWallRight: true,
			QuantityMin: 1, QuantityMax: 1, SpawnChance: 0.4,
		},
		{
			Name: "pillar", Size: Size{W: 1, H: 1}, Inner: true,
			QuantityMin: 1, QuantityMax: 2, SpawnChance: 0.5, Colliders: true,
		},
		{
			Name: "spike_trap", Size: Size{W: 1, H: 1}, Inner: true, Trap: true,
			QuantityMin: 1, QuantityMax: 2, SpawnChance: 30,
		},
	}
}
