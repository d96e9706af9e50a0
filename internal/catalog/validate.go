package catalog

import (
	"fmt"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

func validatePlants(plants []domain.PlantDefinition) error {
	if len(plants) == 0 {
		return fmt.Errorf("%w: no plants defined", domain.ErrInvalidCatalog)
	}

	seen := make(map[domain.PlantID]bool, len(plants))
	for i, p := range plants {
		if p.ID == "" {
			return fmt.Errorf("%w: plant at index %d has empty id", domain.ErrInvalidCatalog, i)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate plant id '%s'", domain.ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = true

		if !p.Rarity.Valid() {
			return fmt.Errorf("%w: plant '%s' has unknown rarity %d", domain.ErrInvalidCatalog, p.ID, int(p.Rarity))
		}
		if p.BaseGrowth <= 0 {
			return fmt.Errorf("%w: plant '%s' must have a positive growth duration", domain.ErrInvalidCatalog, p.ID)
		}
		if p.BaseYieldRate <= 0 {
			return fmt.Errorf("%w: plant '%s' must have a positive yield rate", domain.ErrInvalidCatalog, p.ID)
		}
		if p.UnlockThreshold < 0 {
			return fmt.Errorf("%w: plant '%s' has a negative unlock threshold", domain.ErrInvalidCatalog, p.ID)
		}
	}
	return nil
}

func validateUpgrades(upgrades []domain.UpgradeDefinition) error {
	seen := make(map[domain.UpgradeID]bool, len(upgrades))
	kinds := make(map[domain.UpgradeKind]domain.UpgradeID, len(upgrades))

	for i, u := range upgrades {
		if u.ID == "" {
			return fmt.Errorf("%w: upgrade at index %d has empty id", domain.ErrInvalidCatalog, i)
		}
		if seen[u.ID] {
			return fmt.Errorf("%w: duplicate upgrade id '%s'", domain.ErrInvalidCatalog, u.ID)
		}
		seen[u.ID] = true

		if !knownKind(u.Kind) {
			return fmt.Errorf("%w: upgrade '%s' has unknown kind '%s'", domain.ErrInvalidCatalog, u.ID, u.Kind)
		}
		if other, dup := kinds[u.Kind]; dup {
			return fmt.Errorf("%w: upgrades '%s' and '%s' share kind %s", domain.ErrInvalidCatalog, other, u.ID, u.Kind)
		}
		kinds[u.Kind] = u.ID

		if u.MaxLevel < 1 {
			return fmt.Errorf("%w: upgrade '%s' must allow at least one level", domain.ErrInvalidCatalog, u.ID)
		}
		if u.BaseCost < 1 {
			return fmt.Errorf("%w: upgrade '%s' must cost at least 1", domain.ErrInvalidCatalog, u.ID)
		}
		if u.CostMultiplier <= 1 {
			return fmt.Errorf("%w: upgrade '%s' cost multiplier must be greater than 1", domain.ErrInvalidCatalog, u.ID)
		}
		// Floored costs only stay strictly increasing when each step adds at least 1
		if float64(u.BaseCost)*(u.CostMultiplier-1) < 1 {
			return fmt.Errorf("%w: upgrade '%s' cost would not increase every level", domain.ErrInvalidCatalog, u.ID)
		}
		if u.EffectPerLevel <= 0 {
			return fmt.Errorf("%w: upgrade '%s' must have a positive effect", domain.ErrInvalidCatalog, u.ID)
		}
	}

	for _, kind := range domain.UpgradeKinds {
		if _, ok := kinds[kind]; !ok {
			return fmt.Errorf("%w: no upgrade provides %s", domain.ErrInvalidCatalog, kind)
		}
	}
	return nil
}

func knownKind(kind domain.UpgradeKind) bool {
	for _, k := range domain.UpgradeKinds {
		if k == kind {
			return true
		}
	}
	return false
}
