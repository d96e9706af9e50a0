package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/validation"
)

// FileConfig is the YAML layout of a catalog override file
type FileConfig struct {
	Version  string          `yaml:"version" validate:"required"`
	Plants   []PlantConfig   `yaml:"plants" validate:"required,min=1,dive"`
	Upgrades []UpgradeConfig `yaml:"upgrades" validate:"required,min=5,dive"`
}

// PlantConfig is one plant entry in the YAML file
type PlantConfig struct {
	ID              string  `yaml:"id" validate:"required"`
	Name            string  `yaml:"name" validate:"required"`
	Rarity          string  `yaml:"rarity" validate:"required,oneof=basic rare legendary prestige"`
	BaseGrowth      string  `yaml:"base_growth" validate:"required"` // Go duration, e.g. "15s"
	BaseYieldRate   float64 `yaml:"base_yield_rate" validate:"gt=0"`
	UnlockThreshold int64   `yaml:"unlock_threshold" validate:"min=0"`
	VisualKey       string  `yaml:"visual_key"`
}

// UpgradeConfig is one upgrade entry in the YAML file
type UpgradeConfig struct {
	ID             string  `yaml:"id" validate:"required"`
	Kind           string  `yaml:"kind" validate:"required"`
	Name           string  `yaml:"name" validate:"required"`
	BaseCost       int64   `yaml:"base_cost" validate:"min=1"`
	MaxLevel       int     `yaml:"max_level" validate:"min=1"`
	CostMultiplier float64 `yaml:"cost_multiplier" validate:"gt=1"`
	EffectPerLevel float64 `yaml:"effect_per_level" validate:"gt=0"`
	Description    string  `yaml:"description"`
}

// LoadFile reads a YAML catalog file and builds a validated catalog
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes. The document is checked against
// the catalog schema first so typos and unknown keys are reported by path.
func Parse(data []byte) (*Catalog, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse catalog: %v", domain.ErrInvalidCatalog, err)
	}
	if err := validation.Default().ValidateValue(doc, validation.CatalogSchema); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse catalog: %v", domain.ErrInvalidCatalog, err)
	}
	return cfg.Build()
}

// Build validates the file config and converts it into a Catalog
func (cfg *FileConfig) Build() (*Catalog, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	plants := make([]domain.PlantDefinition, 0, len(cfg.Plants))
	for _, p := range cfg.Plants {
		rarity, err := domain.ParseRarity(p.Rarity)
		if err != nil {
			return nil, err
		}
		growth, err := time.ParseDuration(p.BaseGrowth)
		if err != nil {
			return nil, fmt.Errorf("%w: plant '%s' has invalid base_growth %q", domain.ErrInvalidCatalog, p.ID, p.BaseGrowth)
		}
		plants = append(plants, domain.PlantDefinition{
			ID:              domain.PlantID(p.ID),
			Name:            p.Name,
			Rarity:          rarity,
			BaseGrowth:      growth,
			BaseYieldRate:   p.BaseYieldRate,
			UnlockThreshold: p.UnlockThreshold,
			VisualKey:       p.VisualKey,
		})
	}

	upgrades := make([]domain.UpgradeDefinition, 0, len(cfg.Upgrades))
	for _, u := range cfg.Upgrades {
		upgrades = append(upgrades, domain.UpgradeDefinition{
			ID:             domain.UpgradeID(u.ID),
			Kind:           domain.UpgradeKind(u.Kind),
			Name:           u.Name,
			BaseCost:       u.BaseCost,
			MaxLevel:       u.MaxLevel,
			CostMultiplier: u.CostMultiplier,
			EffectPerLevel: u.EffectPerLevel,
			Description:    u.Description,
		})
	}

	return New(plants, upgrades)
}
