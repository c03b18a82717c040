// Package config loads the generator settings from YAML.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/lawnchairsociety/dungeonforge/internal/agents"
	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/database"
	"github.com/lawnchairsociety/dungeonforge/internal/layout"
	"github.com/lawnchairsociety/dungeonforge/internal/props"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// Config holds everything one generator run needs.
type Config struct {
	// Seed drives every random draw. Zero picks a seed from the clock.
	Seed int64 `yaml:"seed"`

	Layout  layout.Params `yaml:"layout"`
	Props   props.Params  `yaml:"props"`
	Agents  agents.Params `yaml:"agents"`
	Catalog catalog.Paths `yaml:"catalog"`

	History HistoryConfig `yaml:"history"`
	Preview PreviewConfig `yaml:"preview"`
}

// HistoryConfig controls recording of generation runs.
type HistoryConfig struct {
	// Enabled records every generate run.
	Enabled bool `yaml:"enabled"`

	database.Config `yaml:",inline"`
}

// PreviewConfig holds the live preview server settings.
type PreviewConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// Path is the WebSocket endpoint.
	Path string `yaml:"path"`

	WebSocket   WebSocketConfig   `yaml:"websocket"`
	Connections ConnectionsConfig `yaml:"connections"`
	Commands    CommandsConfig    `yaml:"commands"`
}

// ConnectionsConfig limits concurrent preview connections. Zero disables
// a limit.
type ConnectionsConfig struct {
	MaxPerIP int `yaml:"max_per_ip"`
	MaxTotal int `yaml:"max_total"`
}

// CommandsConfig throttles the commands a single preview client may send.
type CommandsConfig struct {
	// Enabled turns command throttling on.
	Enabled bool `yaml:"enabled"`

	// MaxCommands is the number of commands allowed per window.
	MaxCommands int `yaml:"max_commands"`

	// WindowSeconds is the length of the throttling window.
	WindowSeconds int `yaml:"window_seconds"`
}

// WebSocketConfig holds WebSocket-specific settings.
type WebSocketConfig struct {
	// AllowedOrigins is a list of origins allowed to connect via WebSocket.
	// Empty list enforces same-origin policy.
	// Use "*" to allow all origins (not recommended for production).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`
}

// DefaultConfig returns the stock generator settings.
func DefaultConfig() *Config {
	return &Config{
		Layout: layout.DefaultParams(),
		Props:  props.DefaultParams(),
		Agents: agents.DefaultParams(),
		History: HistoryConfig{
			Config: database.DefaultConfig("data/history.db"),
		},
		Preview: PreviewConfig{
			Addr: ":8080",
			Path: "/ws",
			WebSocket: WebSocketConfig{
				AllowedOrigins: []string{}, // Same-origin only by default
				MaxMessageSize: 4096,
			},
			Connections: ConnectionsConfig{
				MaxPerIP: 10,
				MaxTotal: 100,
			},
			Commands: CommandsConfig{
				Enabled:       true,
				MaxCommands:   5,
				WindowSeconds: 10,
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file over the defaults.
// A missing file yields the defaults; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Use defaults if file doesn't exist
		}
		return config, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

// Validate clamps out-of-range values in place and returns a description
// of every correction made.
func (c *Config) Validate() []string {
	var fixes []string
	clampInt := func(name string, v *int, lo, hi int) {
		if *v < lo || *v > hi {
			old := *v
			*v = min(max(*v, lo), hi)
			fixes = append(fixes, fmt.Sprintf("%s %d clamped to %d", name, old, *v))
		}
	}
	clampFloat := func(name string, v *float64, lo, hi float64) {
		if *v < lo || *v > hi {
			old := *v
			*v = min(max(*v, lo), hi)
			fixes = append(fixes, fmt.Sprintf("%s %g clamped to %g", name, old, *v))
		}
	}
	orderInt := func(name string, lo, hi *int) {
		if *lo > *hi {
			*lo, *hi = *hi, *lo
			fixes = append(fixes, fmt.Sprintf("%s range swapped to [%d, %d]", name, *lo, *hi))
		}
	}
	orderFloat := func(name string, lo, hi *float64) {
		if *lo > *hi {
			*lo, *hi = *hi, *lo
			fixes = append(fixes, fmt.Sprintf("%s range swapped to [%g, %g]", name, *lo, *hi))
		}
	}

	l := &c.Layout
	switch l.Mode {
	case layout.ModeRandomWalk, layout.ModeCorridorFirst, layout.ModeRoomsFirst:
	default:
		fixes = append(fixes, fmt.Sprintf("layout.mode %q replaced with %q", l.Mode, layout.ModeRoomsFirst))
		l.Mode = layout.ModeRoomsFirst
	}
	clampInt("layout.random_walk.iterations", &l.Walk.Iterations, 1, 1000)
	clampInt("layout.random_walk.walk_length", &l.Walk.WalkLength, 1, 1000)
	clampInt("layout.corridor_first.corridor_length", &l.CorridorFirst.CorridorLength, 1, 200)
	clampInt("layout.corridor_first.corridor_count", &l.CorridorFirst.CorridorCount, 1, 200)
	clampFloat("layout.corridor_first.room_percent", &l.CorridorFirst.RoomPercent, 0, 1)
	clampInt("layout.rooms_first.min_room_width", &l.RoomsFirst.MinRoomWidth, 1, 1000)
	clampInt("layout.rooms_first.min_room_height", &l.RoomsFirst.MinRoomHeight, 1, 1000)
	clampInt("layout.rooms_first.dungeon_width", &l.RoomsFirst.DungeonWidth, l.RoomsFirst.MinRoomWidth, 1000)
	clampInt("layout.rooms_first.dungeon_height", &l.RoomsFirst.DungeonHeight, l.RoomsFirst.MinRoomHeight, 1000)
	clampInt("layout.rooms_first.offset", &l.RoomsFirst.Offset, 0, 10)
	clampInt("layout.smooth_iterations", &l.SmoothIterations, 0, 10)
	clampInt("layout.reconcile_padding", &l.ReconcilePadding, 0, 10)

	clampInt("props.group_search_offset", &c.Props.GroupSearchOffset, 0, 10)
	clampInt("props.max_group_extra", &c.Props.MaxGroupExtra, 0, 8)

	a := &c.Agents
	clampInt("agents.enemies_min", &a.EnemiesMin, 0, 100)
	clampInt("agents.enemies_max", &a.EnemiesMax, 0, 100)
	orderInt("agents.enemies", &a.EnemiesMin, &a.EnemiesMax)
	clampInt("agents.min_spacing", &a.MinSpacing, 0, 50)
	clampInt("agents.corridor_spacing", &a.CorridorSpacing, 0, 50)
	clampFloat("agents.center_bias", &a.CenterBias, 0, 1)
	clampFloat("agents.corridor_bias", &a.CorridorBias, 0, 1)
	clampFloat("agents.difficulty_per_room", &a.DifficultyPerRoom, 0, 0.5)
	clampFloat("agents.distance_bonus", &a.DistanceBonus, 0, 2)
	clampFloat("agents.elite_chance_base", &a.EliteChanceBase, 0, 1)
	clampFloat("agents.elite_chance_max", &a.EliteChanceMax, 0, 1)
	orderFloat("agents.elite_chance", &a.EliteChanceBase, &a.EliteChanceMax)
	clampInt("agents.elite_pack_min", &a.ElitePackMin, 1, 20)
	clampInt("agents.elite_pack_max", &a.ElitePackMax, 1, 20)
	orderInt("agents.elite_pack", &a.ElitePackMin, &a.ElitePackMax)
	clampFloat("agents.group_radius", &a.GroupRadius, 0.5, 6)
	clampFloat("agents.corridor_spawn_fraction", &a.CorridorSpawnFraction, 0, 1)
	for i := range a.RoomEnemyCounts {
		clampInt(fmt.Sprintf("agents.room_enemy_counts[%d]", i), &a.RoomEnemyCounts[i], 0, 100)
	}

	if c.Preview.WebSocket.MaxMessageSize <= 0 {
		fixes = append(fixes, fmt.Sprintf("preview.websocket.max_message_size %d replaced with 4096", c.Preview.WebSocket.MaxMessageSize))
		c.Preview.WebSocket.MaxMessageSize = 4096
	}

	return fixes
}

// fingerprintView is the part of Config that shapes the generated dungeon.
type fingerprintView struct {
	Layout  layout.Params `yaml:"layout"`
	Props   props.Params  `yaml:"props"`
	Agents  agents.Params `yaml:"agents"`
	Catalog catalog.Paths `yaml:"catalog"`
}

// Fingerprint returns the hex BLAKE2b-256 digest of the generation
// settings. Seed, history and preview settings are excluded, so a seed plus
// a fingerprint identifies one dungeon.
func (c *Config) Fingerprint() (string, error) {
	data, err := yaml.Marshal(fingerprintView{
		Layout:  c.Layout,
		Props:   c.Props,
		Agents:  c.Agents,
		Catalog: c.Catalog,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// IsOriginAllowed checks if the given origin is allowed based on the config.
// Returns true if:
// - AllowedOrigins contains "*" (allow all)
// - AllowedOrigins contains the exact origin
// - AllowedOrigins is empty and origin matches the request host (same-origin)
func (c *WebSocketConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host (same-origin policy).
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // No origin header means same-origin (e.g., non-browser client)
	}

	// "http://localhost:3000" -> "localhost:3000"
	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}
