// Package entity keeps the live entities created for a generated dungeon.
// The registry owns entity lifetime; rooms only hold IDs into it.
package entity

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lawnchairsociety/dungeonforge/internal/catalog"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// Kind tells players, enemies and props apart.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProp:
		return "prop"
	default:
		return "unknown"
	}
}

// Entity is one spawned thing with its resolved stats.
type Entity struct {
	ID      dungeon.EntityID
	Kind    Kind
	Name    string
	Tile    grid.Point
	Variant catalog.VariantIndex

	HP      int
	Stamina int
	Damage  int
	Defense int
	Speed   float64

	// Behaviour is the combat style or controller attached to the entity.
	Behaviour string
	Footprint catalog.Size
}

// DefaultControllers are the enemy controllers the registry can drive.
var DefaultControllers = []string{"melee", "ranged"}

// Registry is an in-memory dungeon.EntitySpawner.
type Registry struct {
	mu          sync.RWMutex
	nextID      dungeon.EntityID
	entities    map[dungeon.EntityID]*Entity
	controllers map[string]bool
}

// NewRegistry creates a registry accepting enemies with the given
// controllers, or DefaultControllers when none are given.
func NewRegistry(controllers ...string) *Registry {
	if len(controllers) == 0 {
		controllers = DefaultControllers
	}
	r := &Registry{
		entities:    make(map[dungeon.EntityID]*Entity),
		controllers: make(map[string]bool),
	}
	for _, c := range controllers {
		r.controllers[strings.ToLower(c)] = true
	}
	return r
}

func (r *Registry) add(e *Entity) dungeon.EntityID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	e.ID = r.nextID
	r.entities[e.ID] = e
	return e.ID
}

// SpawnPlayer creates the player with the class's base stats.
func (r *Registry) SpawnPlayer(class *catalog.PlayerClass, tile grid.Point) (dungeon.EntityID, error) {
	if class == nil {
		return 0, fmt.Errorf("player without class: %w", dungeon.ErrSpawnRejected)
	}
	return r.add(&Entity{
		Kind:      KindPlayer,
		Name:      class.Name,
		Tile:      tile,
		HP:        class.MaxHealth,
		Stamina:   class.MaxStamina,
		Damage:    class.Damage,
		Defense:   class.Defense,
		Behaviour: class.Combat,
	}), nil
}

// SpawnEnemy creates an enemy with variant-scaled stats. Enemies whose
// controller the registry cannot drive are rejected.
func (r *Registry) SpawnEnemy(enemy *catalog.EnemyType, variant catalog.VariantIndex, tile grid.Point) (dungeon.EntityID, error) {
	if enemy == nil {
		return 0, fmt.Errorf("nil enemy type: %w", dungeon.ErrSpawnRejected)
	}
	if !r.controllers[strings.ToLower(enemy.Controller)] {
		return 0, fmt.Errorf("enemy %s has unsupported controller %q: %w", enemy.Name, enemy.Controller, dungeon.ErrSpawnRejected)
	}

	hp, damage, speed := enemy.Stats(variant)
	return r.add(&Entity{
		Kind:      KindEnemy,
		Name:      enemy.Name,
		Tile:      tile,
		Variant:   variant,
		HP:        hp,
		Damage:    damage,
		Speed:     speed,
		Behaviour: enemy.Controller,
	}), nil
}

// SpawnProp creates a prop anchored at its bottom-left tile.
func (r *Registry) SpawnProp(prop *catalog.PropDefinition, anchor grid.Point) (dungeon.EntityID, error) {
	if prop == nil {
		return 0, fmt.Errorf("nil prop: %w", dungeon.ErrSpawnRejected)
	}
	w, h := prop.Footprint()
	e := &Entity{
		Kind:      KindProp,
		Name:      prop.Name,
		Tile:      anchor,
		Footprint: catalog.Size{W: w, H: h},
	}
	if prop.Destructible {
		e.HP = prop.MaxHP
	}
	return r.add(e), nil
}

// Despawn removes an entity.
func (r *Registry) Despawn(id dungeon.EntityID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entities[id]; !ok {
		return fmt.Errorf("entity %d: %w", id, ErrUnknownEntity)
	}
	delete(r.entities, id)
	return nil
}

// Get returns the entity with id.
func (r *Registry) Get(id dungeon.EntityID) (*Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entities[id]
	return e, ok
}

// All returns every live entity ordered by ID.
func (r *Registry) All() []*Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entity, 0, len(r.entities))
	for _, e := range r.entities {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of live entities of kind.
func (r *Registry) Count(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, e := range r.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}

// Reset despawns everything. IDs keep increasing across resets.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities = make(map[dungeon.EntityID]*Entity)
}
