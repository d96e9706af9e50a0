package prestige

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func stateWith(currency int64) *domain.State {
	s := domain.NewState(epoch)
	s.Currency = currency
	return s
}

func TestCanPrestige(t *testing.T) {
	assert.False(t, CanPrestige(stateWith(0)))
	assert.False(t, CanPrestige(stateWith(999_999)))
	assert.True(t, CanPrestige(stateWith(1_000_000)))
	assert.False(t, CanPrestige(nil))
}

func TestGain(t *testing.T) {
	tests := []struct {
		currency int64
		want     int64
	}{
		{999_999, 0},
		{1_000_000, 1},
		{3_999_999, 1},
		{4_000_000, 2},
		{9_000_000, 3},
		{100_000_000, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Gain(stateWith(tt.currency)), "currency=%d", tt.currency)
	}
}

func TestPerform(t *testing.T) {
	s := stateWith(4_000_000)
	s.Premium = 42
	s.PrestigeCount = 2
	s.PrestigePoints = 5
	s.LifetimeEarned = 9_000_000
	s.Upgrades["growth_speed"] = 7
	s.Plots = append(s.Plots, domain.Plot{}, domain.Plot{})
	s.Plots[0].Crop = &domain.Crop{PlantID: "sprout", Level: 1, PlantedAt: epoch}

	later := epoch.Add(time.Hour)
	next, gain, ok := Perform(s, later)
	require.True(t, ok)

	assert.Equal(t, int64(2), gain)
	assert.Equal(t, int64(7), next.PrestigePoints)
	assert.Equal(t, 3, next.PrestigeCount)
	assert.Equal(t, domain.StartingCurrency, next.Currency)
	assert.Equal(t, domain.StartingPremium, next.Premium)
	assert.Equal(t, int64(0), next.LifetimeEarned)
	assert.Len(t, next.Plots, domain.BaseCapacity)
	for _, p := range next.Plots {
		assert.True(t, p.Empty())
	}
	assert.Empty(t, next.Upgrades)
	assert.Equal(t, later, next.StartedAt)

	// input untouched
	assert.Equal(t, int64(4_000_000), s.Currency)
	assert.Equal(t, 7, s.Upgrades["growth_speed"])
}

func TestPerform_Ineligible(t *testing.T) {
	s := stateWith(10)
	next, gain, ok := Perform(s, epoch)
	assert.False(t, ok)
	assert.Nil(t, next)
	assert.Zero(t, gain)
}
