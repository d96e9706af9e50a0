package domain

import (
	"fmt"
	"strings"
	"time"
)

// Rarity is the ordered tier of a plant definition
type Rarity int

const (
	RarityBasic Rarity = iota
	RarityRare
	RarityLegendary
	RarityPrestige
)

var rarityNames = map[Rarity]string{
	RarityBasic:     "basic",
	RarityRare:      "rare",
	RarityLegendary: "legendary",
	RarityPrestige:  "prestige",
}

// Growth and yield multipliers per tier. Both increase with tier.
var (
	rarityGrowthMultipliers = map[Rarity]float64{
		RarityBasic:     1.0,
		RarityRare:      1.5,
		RarityLegendary: 2.0,
		RarityPrestige:  3.0,
	}
	rarityYieldMultipliers = map[Rarity]float64{
		RarityBasic:     1.0,
		RarityRare:      2.0,
		RarityLegendary: 4.0,
		RarityPrestige:  8.0,
	}
)

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rarity(%d)", int(r))
}

// Valid reports whether r is one of the known tiers
func (r Rarity) Valid() bool {
	_, ok := rarityNames[r]
	return ok
}

// GrowthMultiplier returns the growth duration multiplier for the tier
func (r Rarity) GrowthMultiplier() float64 {
	if m, ok := rarityGrowthMultipliers[r]; ok {
		return m
	}
	return 1.0
}

// YieldMultiplier returns the yield rate multiplier for the tier
func (r Rarity) YieldMultiplier() float64 {
	if m, ok := rarityYieldMultipliers[r]; ok {
		return m
	}
	return 1.0
}

// ParseRarity converts a tier name into a Rarity
func ParseRarity(s string) (Rarity, error) {
	for r, name := range rarityNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return RarityBasic, fmt.Errorf("%w: unknown rarity %q", ErrInvalidCatalog, s)
}

// MarshalText encodes the rarity by name
func (r Rarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: unknown rarity %d", ErrInvalidCatalog, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rarity name
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

const secondsPerHour = 3600

// PlantID identifies a plant definition
type PlantID string

// PlantDefinition is an immutable catalog entry for a growable plant
type PlantDefinition struct {
	ID              PlantID
	Name            string
	Rarity          Rarity
	BaseGrowth      time.Duration
	BaseYieldRate   float64 // currency per hour before rarity
	UnlockThreshold int64   // lifetime currency required
	VisualKey       string
}

// GrowthDuration is the tier-adjusted time for one growth cycle
func (p PlantDefinition) GrowthDuration() time.Duration {
	return time.Duration(float64(p.BaseGrowth) * p.Rarity.GrowthMultiplier())
}

// YieldRate is the tier-adjusted currency per hour
func (p PlantDefinition) YieldRate() float64 {
	return p.BaseYieldRate * p.Rarity.YieldMultiplier()
}

// CycleYield is the unmodified currency produced by one growth cycle
func (p PlantDefinition) CycleYield() float64 {
	return p.YieldRate() * p.GrowthDuration().Seconds() / secondsPerHour
}

// RequiresPrestige reports whether the plant can only be planted after a prestige
func (p PlantDefinition) RequiresPrestige() bool {
	return p.Rarity == RarityPrestige
}
