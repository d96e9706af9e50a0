// Package offline computes the progress a garden accrued while nothing was
// ticking it. Computation is pure; crediting the reward is left to the caller.
package offline

import (
	"math"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/economy"
)

// Offline window bounds
const (
	// MinElapsed is the shortest absence that earns anything
	MinElapsed = 30 * time.Second

	// MaxWindow caps the time credited for a single absence
	MaxWindow = 24 * time.Hour

	// ImplausibleElapsed marks an absence long enough to suggest clock tampering
	ImplausibleElapsed = 2 * MaxWindow
)

// Plausible reports whether an elapsed interval is eligible for any reward
func Plausible(elapsed time.Duration) bool {
	return elapsed >= MinElapsed && elapsed <= ImplausibleElapsed
}

// ComputeOfflineReward estimates what the garden produced between the last
// save and now. Each occupied plot completes floor(window / growth) cycles at
// the unupgraded growth duration and earns its per-cycle yield scaled by the
// offline efficiency. The state is never modified.
func ComputeOfflineReward(cat *catalog.Catalog, s *domain.State, now time.Time) domain.OfflineReward {
	if s == nil {
		return domain.OfflineReward{}
	}

	elapsed := now.Sub(s.LastSavedAt)
	if !Plausible(elapsed) {
		return domain.OfflineReward{Elapsed: max(elapsed, 0)}
	}
	window := min(elapsed, MaxWindow)

	mods := economy.ModifiersFor(cat, s)
	var total float64
	matured := 0
	for _, p := range s.Plots {
		if p.Empty() {
			continue
		}
		def, ok := cat.Plant(p.Crop.PlantID)
		if !ok {
			continue
		}
		growth := def.GrowthDuration()
		if growth <= 0 {
			continue
		}
		cycles := int64(window / growth)
		if cycles < 1 {
			continue
		}
		total += float64(cycles) * economy.CycleYield(def, p.Crop.Level, mods) * mods.OfflineEfficiency
		matured++
	}

	return domain.OfflineReward{
		Currency:      int64(math.Floor(total)),
		PlantsMatured: matured,
		Elapsed:       window,
	}
}
