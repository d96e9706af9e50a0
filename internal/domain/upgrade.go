package domain

import "math"

// UpgradeID identifies an upgrade definition
type UpgradeID string

// UpgradeKind is the effect family of an upgrade
type UpgradeKind string

const (
	UpgradeKindGrowthSpeed       UpgradeKind = "growth_speed"
	UpgradeKindYieldMultiplier   UpgradeKind = "yield_multiplier"
	UpgradeKindPlotCapacity      UpgradeKind = "plot_capacity"
	UpgradeKindAutoHarvest       UpgradeKind = "auto_harvest"
	UpgradeKindOfflineEfficiency UpgradeKind = "offline_efficiency"
)

// UpgradeKinds lists every kind a catalog must provide
var UpgradeKinds = []UpgradeKind{
	UpgradeKindGrowthSpeed,
	UpgradeKindYieldMultiplier,
	UpgradeKindPlotCapacity,
	UpgradeKindAutoHarvest,
	UpgradeKindOfflineEfficiency,
}

// UpgradeDefinition is an immutable catalog entry for a purchasable multiplier
type UpgradeDefinition struct {
	ID             UpgradeID
	Kind           UpgradeKind
	Name           string
	BaseCost       int64
	MaxLevel       int
	CostMultiplier float64
	EffectPerLevel float64
	Description    string
}

// CostAt returns the price of buying the next level when the upgrade is at level.
// Formula: floor(baseCost * multiplier^level)
func (u UpgradeDefinition) CostAt(level int) int64 {
	if level < 0 {
		level = 0
	}
	return int64(math.Floor(float64(u.BaseCost) * math.Pow(u.CostMultiplier, float64(level))))
}

// Effect returns the summed effect of the given level
func (u UpgradeDefinition) Effect(level int) float64 {
	if level <= 0 {
		return 0
	}
	if level > u.MaxLevel {
		level = u.MaxLevel
	}
	return float64(level) * u.EffectPerLevel
}
