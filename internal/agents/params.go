package agents

// Params configures player and enemy placement.
type Params struct {
	// PlayerRoomIndex is the room the player starts in. It never gets enemies.
	PlayerRoomIndex int `yaml:"player_room_index"`
	// PlayerClass names the class applied to the player.
	PlayerClass string `yaml:"player_class"`

	// RoomEnemyCounts overrides the enemy count per room index when > 0.
	RoomEnemyCounts []int `yaml:"room_enemy_counts"`
	EnemiesMin      int   `yaml:"enemies_min"`
	EnemiesMax      int   `yaml:"enemies_max"`
	// GuaranteeOnePerRoom draws from [EnemiesMin, EnemiesMax] for rooms
	// without an override.
	GuaranteeOnePerRoom bool `yaml:"guarantee_one_per_room"`

	// MinSpacing is the Manhattan distance kept between spawn tiles. It is
	// relaxed one step at a time when a room is too cramped.
	MinSpacing      int `yaml:"min_spacing"`
	CorridorSpacing int `yaml:"corridor_spacing"`

	// CenterBias favours inner tiles, CorridorBias tiles on the path.
	CenterBias   float64 `yaml:"center_bias"`
	CorridorBias float64 `yaml:"corridor_bias"`

	DifficultyPerRoom float64 `yaml:"difficulty_per_room"`
	DistanceBonus     float64 `yaml:"distance_bonus"`

	EliteChanceBase float64 `yaml:"elite_chance_base"`
	EliteChanceMax  float64 `yaml:"elite_chance_max"`
	ElitePackMin    int     `yaml:"elite_pack_min"`
	ElitePackMax    int     `yaml:"elite_pack_max"`

	// GroupRadius bounds the Manhattan distance of group members from their
	// anchor. Elite packs use GroupRadius+1.
	GroupRadius float64 `yaml:"group_radius"`

	CorridorSpawns        bool    `yaml:"corridor_spawns"`
	CorridorSpawnFraction float64 `yaml:"corridor_spawn_fraction"`

	VerboseLogs bool `yaml:"verbose_logs"`
}

// DefaultParams returns the stock placement tuning.
func DefaultParams() Params {
	return Params{
		PlayerRoomIndex:       0,
		PlayerClass:           "swordsman",
		EnemiesMin:            1,
		EnemiesMax:            4,
		GuaranteeOnePerRoom:   true,
		MinSpacing:            3,
		CorridorSpacing:       6,
		CenterBias:            0.7,
		CorridorBias:          0.35,
		DifficultyPerRoom:     0.12,
		DistanceBonus:         0.25,
		EliteChanceBase:       0.10,
		EliteChanceMax:        0.35,
		ElitePackMin:          3,
		ElitePackMax:          6,
		GroupRadius:           2.0,
		CorridorSpawns:        true,
		CorridorSpawnFraction: 0.15,
	}
}
