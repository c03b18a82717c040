// Package catalog defines the authored templates the generator populates
// rooms with: props, enemy types with their variants, and player classes.
package catalog

// Size is a footprint in tiles.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// PropDefinition is an immutable prop template.
type PropDefinition struct {
	Name string `yaml:"name"`
	Size Size   `yaml:"size"`

	// Placement flags.
	Corner        bool `yaml:"corner"`
	NearWallUp    bool `yaml:"near_wall_up"`
	NearWallDown  bool `yaml:"near_wall_down"`
	NearWallRight bool `yaml:"near_wall_right"`
	NearWallLeft  bool `yaml:"near_wall_left"`
	Inner         bool `yaml:"inner"`
	OnlyCorner    bool `yaml:"only_corner"` // chest-like: one per room, far from corridors

	QuantityMin int `yaml:"quantity_min"`
	QuantityMax int `yaml:"quantity_max"`

	PlaceAsGroup bool `yaml:"place_as_group"`
	GroupMin     int  `yaml:"group_min"`
	GroupMax     int  `yaml:"group_max"`

	// SpawnChance above 1 is read as a percentage.
	SpawnChance float64 `yaml:"spawn_chance"`

	Destructible bool `yaml:"destructible"`
	MaxHP        int  `yaml:"max_hp"`
	Interactable bool `yaml:"interactable"`
	Colliders    bool `yaml:"colliders"`
	Trap         bool `yaml:"trap"`
}

// Footprint returns the prop size with both sides at least 1.
func (p *PropDefinition) Footprint() (w, h int) {
	return max(1, p.Size.W), max(1, p.Size.H)
}

// Chance returns the spawn chance normalized to [0, 1].
func (p *PropDefinition) Chance() float64 {
	return NormalizeChance(p.SpawnChance)
}

// NormalizeChance maps a 0-100 percentage to [0, 1] and clamps.
func NormalizeChance(c float64) float64 {
	if c > 1 {
		c /= 100
	}
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// VariantIndex selects one of the three variants of an enemy type.
type VariantIndex int

const (
	VariantWeak VariantIndex = iota
	VariantStandard
	VariantElite
)

// VariantCount is the fixed number of variants per enemy type.
const VariantCount = 3

// String returns the variant name.
func (v VariantIndex) String() string {
	switch v {
	case VariantWeak:
		return "weak"
	case VariantStandard:
		return "standard"
	case VariantElite:
		return "elite"
	default:
		return "unknown"
	}
}

// Variant scales the base stats of an enemy type.
type Variant struct {
	Name             string  `yaml:"name"`
	HPMultiplier     float64 `yaml:"hp_multiplier"`
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	ScaleMultiplier  float64 `yaml:"scale_multiplier"`
	SpawnWeight      float64 `yaml:"spawn_weight"`
}

// EnemyType is an immutable enemy template.
type EnemyType struct {
	Name       string `yaml:"name"`
	Controller string `yaml:"controller"`

	BaseHP         int     `yaml:"base_hp"`
	BaseDamage     int     `yaml:"base_damage"`
	MoveSpeed      float64 `yaml:"move_speed"`
	AggroRange     float64 `yaml:"aggro_range"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`

	SpawnWeight   float64 `yaml:"spawn_weight"`
	PrefersGroups bool    `yaml:"prefers_groups"`
	GroupMin      int     `yaml:"group_min"`
	GroupMax      int     `yaml:"group_max"`
	GroupChance   float64 `yaml:"group_chance"`

	Variants []Variant `yaml:"variants"`
}

// VariantWeight returns the configured weight of variant i, zero if absent.
func (e *EnemyType) VariantWeight(i VariantIndex) float64 {
	if int(i) < 0 || int(i) >= len(e.Variants) {
		return 0
	}
	return e.Variants[i].SpawnWeight
}

// Stats returns the effective hit points, damage and speed of variant i.
func (e *EnemyType) Stats(i VariantIndex) (hp int, damage int, speed float64) {
	hp, damage, speed = e.BaseHP, e.BaseDamage, e.MoveSpeed
	if int(i) < 0 || int(i) >= len(e.Variants) {
		return hp, damage, speed
	}
	v := e.Variants[i]
	hp = max(1, int(float64(hp)*v.HPMultiplier+0.5))
	damage = max(0, int(float64(damage)*v.DamageMultiplier+0.5))
	speed *= v.SpeedMultiplier
	return hp, damage, speed
}

// PlayerClass holds the base stats and combat style applied to the player.
type PlayerClass struct {
	Name       string `yaml:"name"`
	MaxHealth  int    `yaml:"max_health"`
	MaxStamina int    `yaml:"max_stamina"`
	Damage     int    `yaml:"damage"`
	Defense    int    `yaml:"defense"`
	Combat     string `yaml:"combat"`
}
