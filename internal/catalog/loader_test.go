package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("testdata/catalog.yaml")
	require.NoError(t, err)

	clover, ok := c.Plant("clover")
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, clover.GrowthDuration())
	assert.Equal(t, domain.RarityBasic, clover.Rarity)

	moon, ok := c.Plant("moonflower")
	require.True(t, ok)
	assert.Equal(t, domain.RarityLegendary, moon.Rarity)
	assert.Equal(t, 90*time.Minute, moon.GrowthDuration())

	def, ok := c.UpgradeByKind(domain.UpgradeKindPlotCapacity)
	require.True(t, ok)
	assert.Equal(t, domain.UpgradeID("greenhouse"), def.ID)
	assert.Equal(t, domain.BaseCapacity+8, c.MaxCapacity())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "plants: [unclosed"},
		{"missing version", "plants: []\nupgrades: []\n"},
		{"empty document", ""},
		{
			"unknown key",
			`version: "1"
plants:
  - {id: a, name: A, rarity: basic, base_growth: 1s, base_yield_rate: 1, colour: red}
upgrades:
  - {id: g, kind: growth_speed, name: G, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: y, kind: yield_multiplier, name: Y, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: p, kind: plot_capacity, name: P, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: h, kind: auto_harvest, name: H, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: o, kind: offline_efficiency, name: O, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
`,
		},
		{
			"bad rarity",
			`version: "1"
plants:
  - {id: a, name: A, rarity: mythic, base_growth: 1s, base_yield_rate: 1}
upgrades:
  - {id: g, kind: growth_speed, name: G, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: y, kind: yield_multiplier, name: Y, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: p, kind: plot_capacity, name: P, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: h, kind: auto_harvest, name: H, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: o, kind: offline_efficiency, name: O, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
`,
		},
		{
			"bad duration",
			`version: "1"
plants:
  - {id: a, name: A, rarity: basic, base_growth: soon, base_yield_rate: 1}
upgrades:
  - {id: g, kind: growth_speed, name: G, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: y, kind: yield_multiplier, name: Y, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: p, kind: plot_capacity, name: P, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: h, kind: auto_harvest, name: H, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
  - {id: o, kind: offline_efficiency, name: O, base_cost: 10, max_level: 1, cost_multiplier: 2, effect_per_level: 1}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		})
	}
}
