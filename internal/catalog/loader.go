package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/lawnchairsociety/dungeonforge/internal/logger"
	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned when a catalog file defines no entries.
var ErrEmptyCatalog = errors.New("catalog: file defines no entries")

// PropsFile is the layout of a props YAML file.
type PropsFile struct {
	Props []*PropDefinition `yaml:"props"`
}

// EnemiesFile is the layout of an enemies YAML file.
type EnemiesFile struct {
	Enemies []*EnemyType `yaml:"enemies"`
}

// ClassesFile is the layout of a classes YAML file.
type ClassesFile struct {
	Classes []*PlayerClass `yaml:"classes"`
}

// Paths names the YAML files to load. Empty paths keep the built-in set.
type Paths struct {
	Props   string `yaml:"props"`
	Enemies string `yaml:"enemies"`
	Classes string `yaml:"classes"`
}

// Load builds a catalog from paths, using Default entries for any section
// without a file.
func Load(paths Paths) (*Catalog, error) {
	cat := Default()

	if paths.Props != "" {
		props, err := LoadPropsFromYAML(paths.Props)
		if err != nil {
			return nil, err
		}
		cat.Props = props
	}
	if paths.Enemies != "" {
		enemies, err := LoadEnemiesFromYAML(paths.Enemies)
		if err != nil {
			return nil, err
		}
		cat.Enemies = enemies
	}
	if paths.Classes != "" {
		classes, err := LoadClassesFromYAML(paths.Classes)
		if err != nil {
			return nil, err
		}
		cat.Classes = classes
	}

	return cat, nil
}

// LoadPropsFromYAML reads and validates prop templates.
func LoadPropsFromYAML(filename string) ([]*PropDefinition, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read props file: %w", err)
	}

	var file PropsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse props YAML: %w", err)
	}

	props := make([]*PropDefinition, 0, len(file.Props))
	for _, def := range file.Props {
		if def == nil {
			continue
		}
		ValidateProp(def)
		props = append(props, def)
	}
	if len(props) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyCatalog)
	}
	return props, nil
}

// LoadEnemiesFromYAML reads and validates enemy types.
func LoadEnemiesFromYAML(filename string) ([]*EnemyType, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemies file: %w", err)
	}

	var file EnemiesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse enemies YAML: %w", err)
	}

	enemies := make([]*EnemyType, 0, len(file.Enemies))
	for _, def := range file.Enemies {
		if def == nil {
			continue
		}
		ValidateEnemy(def)
		enemies = append(enemies, def)
	}
	if len(enemies) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyCatalog)
	}
	return enemies, nil
}

// LoadClassesFromYAML reads player classes.
func LoadClassesFromYAML(filename string) ([]*PlayerClass, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read classes file: %w", err)
	}

	var file ClassesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse classes YAML: %w", err)
	}

	classes := make([]*PlayerClass, 0, len(file.Classes))
	for _, cls := range file.Classes {
		if cls == nil || cls.Name == "" {
			logger.Warning("Skipping unnamed player class", "file", filename)
			continue
		}
		if cls.MaxHealth <= 0 {
			logger.Warning("Class auto-correction applied",
				"class", cls.Name,
				"issue", "max_health must be positive",
				"action", "set max_health=1")
			cls.MaxHealth = 1
		}
		classes = append(classes, cls)
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyCatalog)
	}
	return classes, nil
}

// ValidateProp applies auto-corrections to def in place.
func ValidateProp(def *PropDefinition) {
	if def.Size.W < 1 || def.Size.H < 1 {
		logger.Warning("Prop auto-correction applied",
			"prop", def.Name,
			"issue", "size below 1x1",
			"action", "clamp size to at least 1x1")
		def.Size.W = max(1, def.Size.W)
		def.Size.H = max(1, def.Size.H)
	}
	if def.QuantityMin < 1 {
		logger.Warning("Prop auto-correction applied",
			"prop", def.Name,
			"issue", "quantity_min below 1",
			"action", "set quantity_min=1")
		def.QuantityMin = 1
	}
	if def.QuantityMax < def.QuantityMin {
		logger.Warning("Prop auto-correction applied",
			"prop", def.Name,
			"issue", "quantity_max below quantity_min",
			"action", "set quantity_max=quantity_min")
		def.QuantityMax = def.QuantityMin
	}
	if def.SpawnChance == 0 {
		def.SpawnChance = 1
	}
	if normalized := NormalizeChance(def.SpawnChance); normalized != def.SpawnChance {
		logger.Debug("Normalized prop spawn chance",
			"prop", def.Name,
			"from", def.SpawnChance,
			"to", normalized)
		def.SpawnChance = normalized
	}
	if def.PlaceAsGroup {
		if def.GroupMin < 1 {
			def.GroupMin = 1
		}
		if def.GroupMax < def.GroupMin {
			logger.Warning("Prop auto-correction applied",
				"prop", def.Name,
				"issue", "group_max below group_min",
				"action", "set group_max=group_min")
			def.GroupMax = def.GroupMin
		}
	}
	if def.Destructible && def.MaxHP <= 0 {
		def.MaxHP = 1
	}
	if def.OnlyCorner && !def.Corner {
		logger.Warning("Prop auto-correction applied",
			"prop", def.Name,
			"issue", "only_corner=true but corner=false",
			"action", "set corner=true")
		def.Corner = true
	}
}

// ValidateEnemy applies auto-corrections to def in place. Every enemy ends
// up with exactly VariantCount variants.
func ValidateEnemy(def *EnemyType) {
	if def.SpawnWeight < 0 {
		logger.Warning("Enemy auto-correction applied",
			"enemy", def.Name,
			"issue", "negative spawn_weight",
			"action", "set spawn_weight=0")
		def.SpawnWeight = 0
	}
	if def.GroupMin < 2 {
		def.GroupMin = 2
	}
	if def.GroupMax < def.GroupMin {
		logger.Warning("Enemy auto-correction applied",
			"enemy", def.Name,
			"issue", "group_max below group_min",
			"action", "set group_max=group_min")
		def.GroupMax = def.GroupMin
	}
	if def.GroupChance > 1 || def.GroupChance < 0 {
		def.GroupChance = NormalizeChance(def.GroupChance)
	}

	if len(def.Variants) != VariantCount {
		logger.Warning("Enemy auto-correction applied",
			"enemy", def.Name,
			"issue", fmt.Sprintf("%d variants defined", len(def.Variants)),
			"action", fmt.Sprintf("pad or trim to %d", VariantCount))
		defaults := DefaultVariants()
		if len(def.Variants) > VariantCount {
			def.Variants = def.Variants[:VariantCount]
		}
		for i := len(def.Variants); i < VariantCount; i++ {
			def.Variants = append(def.Variants, defaults[i])
		}
	}
	for i := range def.Variants {
		v := &def.Variants[i]
		if v.HPMultiplier <= 0 {
			v.HPMultiplier = 1
		}
		if v.DamageMultiplier <= 0 {
			v.DamageMultiplier = 1
		}
		if v.SpeedMultiplier <= 0 {
			v.SpeedMultiplier = 1
		}
		if v.ScaleMultiplier <= 0 {
			v.ScaleMultiplier = 1
		}
		if v.SpawnWeight < 0 {
			v.SpawnWeight = 0
		}
	}
}
