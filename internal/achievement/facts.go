package achievement

import (
	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/economy"
)

// Facts are the measurements achievements are judged on
type Facts struct {
	LifetimeEarned  int64
	PlantsHarvested int64
	PrestigeCount   int
	UpgradeLevels   int
	PlantedKinds    int
	GrowthSpeed     float64
	UnlockedPlants  int
	OccupiedPlots   int
}

// FactsFrom measures a garden state against the catalog
func FactsFrom(cat *catalog.Catalog, s *domain.State) Facts {
	levels := 0
	for _, lvl := range s.Upgrades {
		levels += lvl
	}
	return Facts{
		LifetimeEarned:  s.LifetimeEarned,
		PlantsHarvested: s.PlantsHarvested,
		PrestigeCount:   s.PrestigeCount,
		UpgradeLevels:   levels,
		PlantedKinds:    len(s.PlantedKinds),
		GrowthSpeed:     economy.ModifiersFor(cat, s).GrowthSpeed,
		UnlockedPlants:  len(cat.UnlockedPlants(s.LifetimeEarned, s.PrestigeCount)),
		OccupiedPlots:   s.OccupiedPlots(),
	}
}
