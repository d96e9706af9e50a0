package catalog

import (
	"time"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// Default plant ids
const (
	PlantSprout    domain.PlantID = "sprout"
	PlantDaisy     domain.PlantID = "daisy"
	PlantTulip     domain.PlantID = "tulip"
	PlantFern      domain.PlantID = "fern"
	PlantRose      domain.PlantID = "rose"
	PlantOrchid    domain.PlantID = "orchid"
	PlantLotus     domain.PlantID = "lotus"
	PlantStarbloom domain.PlantID = "starbloom"
)

// Default upgrade ids. Each matches the kind it provides.
const (
	UpgradeGrowthSpeed       domain.UpgradeID = "growth_speed"
	UpgradeYieldMultiplier   domain.UpgradeID = "yield_multiplier"
	UpgradePlotCapacity      domain.UpgradeID = "plot_capacity"
	UpgradeAutoHarvest       domain.UpgradeID = "auto_harvest"
	UpgradeOfflineEfficiency domain.UpgradeID = "offline_efficiency"
)

// DefaultPlants returns the built-in plant table
func DefaultPlants() []domain.PlantDefinition {
	return []domain.PlantDefinition{
		{ID: PlantSprout, Name: "Sprout", Rarity: domain.RarityBasic, BaseGrowth: 15 * time.Second, BaseYieldRate: 480, UnlockThreshold: 0, VisualKey: "plant_sprout"},
		{ID: PlantDaisy, Name: "Daisy", Rarity: domain.RarityBasic, BaseGrowth: time.Minute, BaseYieldRate: 360, UnlockThreshold: 50, VisualKey: "plant_daisy"},
		{ID: PlantTulip, Name: "Tulip", Rarity: domain.RarityBasic, BaseGrowth: 5 * time.Minute, BaseYieldRate: 300, UnlockThreshold: 500, VisualKey: "plant_tulip"},
		{ID: PlantFern, Name: "Fern", Rarity: domain.RarityRare, BaseGrowth: 400 * time.Second, BaseYieldRate: 180, UnlockThreshold: 2_500, VisualKey: "plant_fern"},
		{ID: PlantRose, Name: "Rose", Rarity: domain.RarityRare, BaseGrowth: 20 * time.Minute, BaseYieldRate: 200, UnlockThreshold: 10_000, VisualKey: "plant_rose"},
		{ID: PlantOrchid, Name: "Orchid", Rarity: domain.RarityLegendary, BaseGrowth: 30 * time.Minute, BaseYieldRate: 250, UnlockThreshold: 50_000, VisualKey: "plant_orchid"},
		{ID: PlantLotus, Name: "Lotus", Rarity: domain.RarityLegendary, BaseGrowth: time.Hour, BaseYieldRate: 300, UnlockThreshold: 250_000, VisualKey: "plant_lotus"},
		{ID: PlantStarbloom, Name: "Starbloom", Rarity: domain.RarityPrestige, BaseGrowth: time.Hour, BaseYieldRate: 500, UnlockThreshold: 1_000_000, VisualKey: "plant_starbloom"},
	}
}

// DefaultUpgrades returns the built-in upgrade table
func DefaultUpgrades() []domain.UpgradeDefinition {
	return []domain.UpgradeDefinition{
		{
			ID: UpgradeGrowthSpeed, Kind: domain.UpgradeKindGrowthSpeed, Name: "Fertilizer",
			BaseCost: 100, MaxLevel: 20, CostMultiplier: 1.5, EffectPerLevel: 0.10,
			Description: "Plants grow 10% faster per level",
		},
		{
			ID: UpgradeYieldMultiplier, Kind: domain.UpgradeKindYieldMultiplier, Name: "Rich Soil",
			BaseCost: 150, MaxLevel: 25, CostMultiplier: 1.6, EffectPerLevel: 0.15,
			Description: "Harvests yield 15% more per level",
		},
		{
			ID: UpgradePlotCapacity, Kind: domain.UpgradeKindPlotCapacity, Name: "Garden Expansion",
			BaseCost: 500, MaxLevel: 12, CostMultiplier: 2.5, EffectPerLevel: domain.CapacityPerLevel,
			Description: "Adds one plot per level",
		},
		{
			ID: UpgradeAutoHarvest, Kind: domain.UpgradeKindAutoHarvest, Name: "Garden Gnome",
			BaseCost: 1_000, MaxLevel: 10, CostMultiplier: 1.8, EffectPerLevel: 0.05,
			Description: "5% chance per level, each tick, to harvest a ready plot automatically",
		},
		{
			ID: UpgradeOfflineEfficiency, Kind: domain.UpgradeKindOfflineEfficiency, Name: "Sprinklers",
			BaseCost: 750, MaxLevel: 10, CostMultiplier: 1.7, EffectPerLevel: 0.02,
			Description: "Offline growth is 2% more efficient per level",
		},
	}
}

// Default builds the built-in catalog
func Default() *Catalog {
	c, err := New(DefaultPlants(), DefaultUpgrades())
	if err != nil {
		// The built-in tables are covered by tests; failing here is a programming error.
		panic(err)
	}
	return c
}
