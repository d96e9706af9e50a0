package achievement

import "github.com/osse101/GardenIdle_Go/internal/domain"

// Built-in achievement ids
const (
	FirstHarvest    domain.AchievementID = "first_harvest"
	FirstUpgrade    domain.AchievementID = "first_upgrade"
	Botanist        domain.AchievementID = "botanist"
	GreenThumb      domain.AchievementID = "green_thumb"
	Thousandaire    domain.AchievementID = "thousandaire"
	Millionaire     domain.AchievementID = "millionaire"
	Reborn          domain.AchievementID = "reborn"
	EternalGardener domain.AchievementID = "eternal_gardener"
	Collector       domain.AchievementID = "collector"
	FullHouse       domain.AchievementID = "full_house"
	Harvester       domain.AchievementID = "harvester"
)

// Definition is one achievement. It unlocks once Measure reaches Target and
// reports Measure/Target as progress until then.
type Definition struct {
	ID          domain.AchievementID
	Name        string
	Description string
	Reward      int64
	Target      float64
	Measure     func(Facts) float64
}

// Progress returns the fraction of the target reached, capped at 1
func (d Definition) Progress(f Facts) float64 {
	if d.Target <= 0 {
		return 1
	}
	return clamp01(d.Measure(f) / d.Target)
}

// Met reports whether the facts satisfy the achievement
func (d Definition) Met(f Facts) bool {
	return d.Measure(f) >= d.Target
}

// Defaults returns the built-in achievement table in display order
func Defaults() []Definition {
	return []Definition{
		{
			ID: FirstHarvest, Name: "First Harvest", Description: "Earn your first coin",
			Reward: 5, Target: 1,
			Measure: func(f Facts) float64 { return float64(f.LifetimeEarned) },
		},
		{
			ID: FirstUpgrade, Name: "Handyman", Description: "Buy any upgrade",
			Reward: 5, Target: 1,
			Measure: func(f Facts) float64 { return float64(f.UpgradeLevels) },
		},
		{
			ID: Botanist, Name: "Botanist", Description: "Plant five different kinds of plant",
			Reward: 10, Target: 5,
			Measure: func(f Facts) float64 { return float64(f.PlantedKinds) },
		},
		{
			ID: GreenThumb, Name: "Green Thumb", Description: "Reach double growth speed",
			Reward: 15, Target: 2,
			Measure: func(f Facts) float64 { return f.GrowthSpeed },
		},
		{
			ID: Thousandaire, Name: "Thousandaire", Description: "Earn 10,000 coins in total",
			Reward: 10, Target: 10_000,
			Measure: func(f Facts) float64 { return float64(f.LifetimeEarned) },
		},
		{
			ID: Millionaire, Name: "Millionaire", Description: "Earn 1,000,000 coins in total",
			Reward: 50, Target: 1_000_000,
			Measure: func(f Facts) float64 { return float64(f.LifetimeEarned) },
		},
		{
			ID: Reborn, Name: "Reborn", Description: "Prestige for the first time",
			Reward: 25, Target: 1,
			Measure: func(f Facts) float64 { return float64(f.PrestigeCount) },
		},
		{
			ID: EternalGardener, Name: "Eternal Gardener", Description: "Prestige five times",
			Reward: 100, Target: 5,
			Measure: func(f Facts) float64 { return float64(f.PrestigeCount) },
		},
		{
			ID: Collector, Name: "Collector", Description: "Unlock six plants",
			Reward: 20, Target: 6,
			Measure: func(f Facts) float64 { return float64(f.UnlockedPlants) },
		},
		{
			ID: FullHouse, Name: "Full House", Description: "Grow crops in eight plots at once",
			Reward: 15, Target: 8,
			Measure: func(f Facts) float64 { return float64(f.OccupiedPlots) },
		},
		{
			ID: Harvester, Name: "Harvester", Description: "Harvest 100 plants",
			Reward: 10, Target: 100,
			Measure: func(f Facts) float64 { return float64(f.PlantsHarvested) },
		},
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
