// Package economy holds the yield and multiplier formulas shared by the live
// garden engine and the offline reconciler.
package economy

import (
	"math"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// Modifiers is the set of multipliers derived from a state's upgrades and prestige
type Modifiers struct {
	GrowthSpeed       float64
	Yield             float64
	Prestige          float64
	AutoHarvestChance float64
	OfflineEfficiency float64
}

// ModifiersFor derives the current multipliers from purchased upgrade levels
func ModifiersFor(cat *catalog.Catalog, s *domain.State) Modifiers {
	effect := func(kind domain.UpgradeKind) float64 {
		def, ok := cat.UpgradeByKind(kind)
		if !ok {
			return 0
		}
		return def.Effect(s.UpgradeLevel(def.ID))
	}

	return Modifiers{
		GrowthSpeed:       1 + effect(domain.UpgradeKindGrowthSpeed),
		Yield:             1 + effect(domain.UpgradeKindYieldMultiplier),
		Prestige:          PrestigeMultiplier(s.PrestigePoints),
		AutoHarvestChance: math.Min(1, effect(domain.UpgradeKindAutoHarvest)),
		OfflineEfficiency: math.Min(MaxOfflineEfficiency, BaseOfflineEfficiency+effect(domain.UpgradeKindOfflineEfficiency)),
	}
}

// PrestigeMultiplier is the permanent bonus granted by prestige points
func PrestigeMultiplier(points int64) float64 {
	return 1 + PrestigeBonusPerPoint*float64(points)
}

// LevelBonus is the yield multiplier of a crop at the given level
func LevelBonus(level int) float64 {
	if level < 1 {
		level = 1
	}
	return 1 + LevelBonusPerLevel*float64(level-1)
}

// CropLevel derives a crop's level from its harvest count
func CropLevel(harvests int64) int {
	level := 1 + int(harvests/domain.CropHarvestsPerLevel)
	if level > domain.MaxCropLevel {
		return domain.MaxCropLevel
	}
	return level
}

// EffectiveGrowth is the time a crop needs to ripen with growth upgrades applied
func EffectiveGrowth(def domain.PlantDefinition, mods Modifiers) time.Duration {
	speed := mods.GrowthSpeed
	if speed <= 0 {
		speed = 1
	}
	return time.Duration(float64(def.GrowthDuration()) / speed)
}

// CycleYield is the unfloored currency one growth cycle of the crop produces
func CycleYield(def domain.PlantDefinition, level int, mods Modifiers) float64 {
	return def.CycleYield() * LevelBonus(level) * mods.Yield * mods.Prestige
}

// HarvestYield floors the cycle yield and enforces the minimum of one
func HarvestYield(def domain.PlantDefinition, level int, mods Modifiers) int64 {
	amount := int64(math.Floor(CycleYield(def, level, mods)))
	if amount < MinHarvestYield {
		return MinHarvestYield
	}
	return amount
}
