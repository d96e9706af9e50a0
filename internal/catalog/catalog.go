// Package catalog holds the immutable plant and upgrade tables. A Catalog is
// built once at startup and passed by reference to everything that needs it.
package catalog

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

type costKey struct {
	id    domain.UpgradeID
	level int
}

// Catalog is the read-only table of plant and upgrade definitions
type Catalog struct {
	plants     []domain.PlantDefinition
	plantIndex map[domain.PlantID]int

	upgrades     []domain.UpgradeDefinition
	upgradeIndex map[domain.UpgradeID]int
	kindIndex    map[domain.UpgradeKind]int

	costs *lru.Cache[costKey, int64]
}

// New validates the definitions and builds a catalog
func New(plants []domain.PlantDefinition, upgrades []domain.UpgradeDefinition) (*Catalog, error) {
	if err := validatePlants(plants); err != nil {
		return nil, err
	}
	if err := validateUpgrades(upgrades); err != nil {
		return nil, err
	}

	c := &Catalog{
		plants:       append([]domain.PlantDefinition(nil), plants...),
		plantIndex:   make(map[domain.PlantID]int, len(plants)),
		upgrades:     append([]domain.UpgradeDefinition(nil), upgrades...),
		upgradeIndex: make(map[domain.UpgradeID]int, len(upgrades)),
		kindIndex:    make(map[domain.UpgradeKind]int, len(upgrades)),
	}

	// Stable display order: by unlock threshold, then id
	sort.SliceStable(c.plants, func(i, j int) bool {
		if c.plants[i].UnlockThreshold != c.plants[j].UnlockThreshold {
			return c.plants[i].UnlockThreshold < c.plants[j].UnlockThreshold
		}
		return c.plants[i].ID < c.plants[j].ID
	})
	for i, p := range c.plants {
		c.plantIndex[p.ID] = i
	}
	for i, u := range c.upgrades {
		c.upgradeIndex[u.ID] = i
		c.kindIndex[u.Kind] = i
	}

	cacheSize := 0
	for _, u := range c.upgrades {
		cacheSize += u.MaxLevel + 1
	}
	costs, err := lru.New[costKey, int64](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create cost cache: %w", err)
	}
	c.costs = costs

	return c, nil
}

// Plant looks up a plant definition
func (c *Catalog) Plant(id domain.PlantID) (domain.PlantDefinition, bool) {
	i, ok := c.plantIndex[id]
	if !ok {
		return domain.PlantDefinition{}, false
	}
	return c.plants[i], true
}

// Plants returns every plant definition ordered by unlock threshold
func (c *Catalog) Plants() []domain.PlantDefinition {
	return append([]domain.PlantDefinition(nil), c.plants...)
}

// Upgrade looks up an upgrade definition
func (c *Catalog) Upgrade(id domain.UpgradeID) (domain.UpgradeDefinition, bool) {
	i, ok := c.upgradeIndex[id]
	if !ok {
		return domain.UpgradeDefinition{}, false
	}
	return c.upgrades[i], true
}

// UpgradeByKind returns the definition providing the given effect
func (c *Catalog) UpgradeByKind(kind domain.UpgradeKind) (domain.UpgradeDefinition, bool) {
	i, ok := c.kindIndex[kind]
	if !ok {
		return domain.UpgradeDefinition{}, false
	}
	return c.upgrades[i], true
}

// Upgrades returns every upgrade definition in catalog order
func (c *Catalog) Upgrades() []domain.UpgradeDefinition {
	return append([]domain.UpgradeDefinition(nil), c.upgrades...)
}

// UpgradeCost returns the price of the next level from level.
// It reports false for unknown upgrades and for levels at or above the max.
func (c *Catalog) UpgradeCost(id domain.UpgradeID, level int) (int64, bool) {
	def, ok := c.Upgrade(id)
	if !ok || level < 0 || level >= def.MaxLevel {
		return 0, false
	}
	key := costKey{id: id, level: level}
	if cost, ok := c.costs.Get(key); ok {
		return cost, true
	}
	cost := def.CostAt(level)
	c.costs.Add(key, cost)
	return cost, true
}

// IsPlantUnlocked reports whether a plant may be planted given lifetime
// earnings and the number of prestiges performed
func (c *Catalog) IsPlantUnlocked(id domain.PlantID, lifetimeEarned int64, prestigeCount int) bool {
	def, ok := c.Plant(id)
	if !ok {
		return false
	}
	return plantUnlocked(def, lifetimeEarned, prestigeCount)
}

// UnlockedPlants lists the plants available at the given progress
func (c *Catalog) UnlockedPlants(lifetimeEarned int64, prestigeCount int) []domain.PlantDefinition {
	var out []domain.PlantDefinition
	for _, p := range c.plants {
		if plantUnlocked(p, lifetimeEarned, prestigeCount) {
			out = append(out, p)
		}
	}
	return out
}

func plantUnlocked(def domain.PlantDefinition, lifetimeEarned int64, prestigeCount int) bool {
	if lifetimeEarned < def.UnlockThreshold {
		return false
	}
	if def.RequiresPrestige() && prestigeCount < 1 {
		return false
	}
	return true
}

// MaxCapacity is the largest plot count reachable with the capacity upgrade maxed
func (c *Catalog) MaxCapacity() int {
	def, ok := c.UpgradeByKind(domain.UpgradeKindPlotCapacity)
	if !ok {
		return domain.BaseCapacity
	}
	return domain.BaseCapacity + def.MaxLevel*domain.CapacityPerLevel
}
