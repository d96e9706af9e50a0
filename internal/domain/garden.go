package domain

import (
	"sort"
	"time"
)

// Garden sizing and starting balances
const (
	BaseCapacity     = 4
	CapacityPerLevel = 1

	StartingCurrency int64 = 10
	StartingPremium  int64 = 0

	// Crops gain one level every CropHarvestsPerLevel harvests up to MaxCropLevel
	CropHarvestsPerLevel = 10
	MaxCropLevel         = 10
)

// Crop is a plant growing in an occupied plot
type Crop struct {
	PlantID   PlantID   `json:"plant_id" validate:"required"`
	PlantedAt time.Time `json:"planted_at"`
	Level     int       `json:"level" validate:"min=1,max=10"`
	Ready     bool      `json:"ready"`
	Harvests  int64     `json:"harvests" validate:"min=0"`
}

// Plot is one garden slot. A nil Crop means the plot is empty; there is no
// other representation of emptiness.
type Plot struct {
	Crop *Crop `json:"crop,omitempty"`
}

// Empty reports whether nothing grows in the plot
func (p Plot) Empty() bool {
	return p.Crop == nil
}

// Ready reports whether the plot holds a harvestable crop
func (p Plot) Ready() bool {
	return p.Crop != nil && p.Crop.Ready
}

// State is the complete mutable progress of one player. It is the save unit.
type State struct {
	Currency        int64             `json:"currency" validate:"min=0"`
	Premium         int64             `json:"premium" validate:"min=0"`
	Plots           []Plot            `json:"plots" validate:"min=1,dive"`
	Upgrades        map[UpgradeID]int `json:"upgrades,omitempty"`
	LastSavedAt     time.Time         `json:"last_saved_at"`
	StartedAt       time.Time         `json:"started_at"`
	LifetimeEarned  int64             `json:"lifetime_earned" validate:"min=0"`
	PlantsHarvested int64             `json:"plants_harvested" validate:"min=0"`
	PrestigeCount   int               `json:"prestige_count" validate:"min=0"`
	PrestigePoints  int64             `json:"prestige_points" validate:"min=0"`
	PlantedKinds    []PlantID         `json:"planted_kinds,omitempty"`
	// PendingOffline is a reconciled reward the player has not confirmed yet
	PendingOffline *OfflineReward `json:"pending_offline,omitempty"`
}

// NewState returns a freshly seeded state
func NewState(now time.Time) *State {
	return &State{
		Currency:    StartingCurrency,
		Premium:     StartingPremium,
		Plots:       make([]Plot, BaseCapacity),
		Upgrades:    make(map[UpgradeID]int),
		LastSavedAt: now,
		StartedAt:   now,
	}
}

// Clone returns a deep copy that shares nothing with s
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := *s
	out.Plots = make([]Plot, len(s.Plots))
	for i, p := range s.Plots {
		if p.Crop != nil {
			crop := *p.Crop
			out.Plots[i] = Plot{Crop: &crop}
		}
	}
	out.Upgrades = make(map[UpgradeID]int, len(s.Upgrades))
	for id, lvl := range s.Upgrades {
		out.Upgrades[id] = lvl
	}
	if s.PlantedKinds != nil {
		out.PlantedKinds = append([]PlantID(nil), s.PlantedKinds...)
	}
	if s.PendingOffline != nil {
		pending := *s.PendingOffline
		out.PendingOffline = &pending
	}
	return &out
}

// UpgradeLevel returns the purchased level, zero when never bought
func (s *State) UpgradeLevel(id UpgradeID) int {
	return s.Upgrades[id]
}

// OccupiedPlots counts plots with a crop
func (s *State) OccupiedPlots() int {
	n := 0
	for _, p := range s.Plots {
		if !p.Empty() {
			n++
		}
	}
	return n
}

// HasPlanted reports whether the plant kind was planted this run
func (s *State) HasPlanted(id PlantID) bool {
	i := sort.Search(len(s.PlantedKinds), func(i int) bool { return s.PlantedKinds[i] >= id })
	return i < len(s.PlantedKinds) && s.PlantedKinds[i] == id
}

// RecordPlanted adds a plant kind to the sorted planted set
func (s *State) RecordPlanted(id PlantID) {
	i := sort.Search(len(s.PlantedKinds), func(i int) bool { return s.PlantedKinds[i] >= id })
	if i < len(s.PlantedKinds) && s.PlantedKinds[i] == id {
		return
	}
	s.PlantedKinds = append(s.PlantedKinds, "")
	copy(s.PlantedKinds[i+1:], s.PlantedKinds[i:])
	s.PlantedKinds[i] = id
}

// EnsureCapacity grows the plot sequence to at least n plots. It never shrinks.
func (s *State) EnsureCapacity(n int) {
	for len(s.Plots) < n {
		s.Plots = append(s.Plots, Plot{})
	}
}

// OfflineReward is progress accrued while the simulation was not ticking
type OfflineReward struct {
	Currency      int64         `json:"currency" validate:"min=0"`
	PlantsMatured int           `json:"plants_matured" validate:"min=0"`
	Elapsed       time.Duration `json:"elapsed" validate:"min=0"`
}

// IsZero reports whether the reward carries nothing to apply
func (r OfflineReward) IsZero() bool {
	return r.Currency == 0 && r.PlantsMatured == 0
}

// Add merges two rewards accrued over consecutive absences
func (r OfflineReward) Add(o OfflineReward) OfflineReward {
	return OfflineReward{
		Currency:      r.Currency + o.Currency,
		PlantsMatured: r.PlantsMatured + o.PlantsMatured,
		Elapsed:       r.Elapsed + o.Elapsed,
	}
}
