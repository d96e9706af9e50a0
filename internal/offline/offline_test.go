package offline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
)

var savedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func gardenWith(crops ...domain.PlantID) *domain.State {
	s := domain.NewState(savedAt)
	for i, id := range crops {
		s.Plots[i].Crop = &domain.Crop{PlantID: id, PlantedAt: savedAt, Level: 1}
	}
	return s
}

func TestComputeOfflineReward_TwoCycles(t *testing.T) {
	cat := catalog.Default()
	// Orchid ripens in exactly one hour and yields 1000 per cycle
	s := gardenWith(catalog.PlantOrchid)

	reward := ComputeOfflineReward(cat, s, savedAt.Add(2*time.Hour))

	assert.Equal(t, int64(1600), reward.Currency)
	assert.Equal(t, 1, reward.PlantsMatured)
	assert.Equal(t, 2*time.Hour, reward.Elapsed)
}

func TestComputeOfflineReward_Windows(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name       string
		elapsed    time.Duration
		wantZero   bool
		wantWindow time.Duration
	}{
		{"clock went backwards", -time.Hour, true, 0},
		{"too short", 29 * time.Second, true, 29 * time.Second},
		{"minimum", 30 * time.Second, false, 30 * time.Second},
		{"full day", 24 * time.Hour, false, 24 * time.Hour},
		{"clamped", 36 * time.Hour, false, 24 * time.Hour},
		{"edge of plausible", 48 * time.Hour, false, 24 * time.Hour},
		{"implausible", 48*time.Hour + time.Second, true, 48*time.Hour + time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := gardenWith(catalog.PlantSprout)
			reward := ComputeOfflineReward(cat, s, savedAt.Add(tt.elapsed))

			assert.Equal(t, tt.wantZero, reward.IsZero())
			assert.Equal(t, tt.wantWindow, reward.Elapsed)
		})
	}
}

func TestComputeOfflineReward_ClampedMatchesFullDay(t *testing.T) {
	cat := catalog.Default()
	s := gardenWith(catalog.PlantSprout, catalog.PlantDaisy)

	day := ComputeOfflineReward(cat, s, savedAt.Add(24*time.Hour))
	longer := ComputeOfflineReward(cat, s, savedAt.Add(40*time.Hour))

	assert.Equal(t, day, longer)
}

func TestComputeOfflineReward_SkipsEmptyAndUnripePlots(t *testing.T) {
	cat := catalog.Default()
	// Sprout matures within a minute; lotus needs two hours
	s := gardenWith(catalog.PlantSprout, catalog.PlantLotus)

	reward := ComputeOfflineReward(cat, s, savedAt.Add(time.Minute))

	// 4 cycles * 2 * 0.8
	assert.Equal(t, int64(6), reward.Currency)
	assert.Equal(t, 1, reward.PlantsMatured)
}

func TestComputeOfflineReward_EmptyGarden(t *testing.T) {
	reward := ComputeOfflineReward(catalog.Default(), gardenWith(), savedAt.Add(5*time.Hour))
	assert.True(t, reward.IsZero())
}

func TestComputeOfflineReward_UsesUnupgradedGrowthAndEfficiency(t *testing.T) {
	cat := catalog.Default()
	s := gardenWith(catalog.PlantOrchid)
	s.Upgrades[catalog.UpgradeGrowthSpeed] = 10
	s.Upgrades[catalog.UpgradeOfflineEfficiency] = 10

	reward := ComputeOfflineReward(cat, s, savedAt.Add(2*time.Hour))

	// Growth speed is ignored offline, efficiency caps at 1.0
	assert.Equal(t, int64(2000), reward.Currency)
}

func TestComputeOfflineReward_DoesNotMutate(t *testing.T) {
	cat := catalog.Default()
	s := gardenWith(catalog.PlantSprout)
	before := s.Clone()

	ComputeOfflineReward(cat, s, savedAt.Add(3*time.Hour))

	assert.Equal(t, before, s)
}
