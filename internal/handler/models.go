package handler

import (
	"time"

	"golang.org/x/text/message"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/garden"
)

// PlantRequest asks to plant a crop in a plot
type PlantRequest struct {
	PlantID string `json:"plant_id" validate:"required,catalogid,max=64"`
	Plot    *int   `json:"plot" validate:"required,min=0"`
}

// PlotRequest targets a single plot
type PlotRequest struct {
	Plot *int `json:"plot" validate:"required,min=0"`
}

// ResetRequest guards a full reset behind an explicit confirmation
type ResetRequest struct {
	Confirm bool `json:"confirm" validate:"required"`
}

// ImportRequest carries a portable save string
type ImportRequest struct {
	Blob string `json:"blob" validate:"required,max=1048576"`
}

// PlotView is one plot as shown to the player
type PlotView struct {
	Index     int        `json:"index"`
	PlantID   string     `json:"plant_id,omitempty"`
	Level     int        `json:"level,omitempty"`
	Ready     bool       `json:"ready"`
	PlantedAt *time.Time `json:"planted_at,omitempty"`
}

// OfflineView describes a pending offline reward
type OfflineView struct {
	Pending         bool   `json:"pending"`
	Currency        int64  `json:"currency"`
	CurrencyDisplay string `json:"currency_display"`
	PlantsMatured   int    `json:"plants_matured"`
	ElapsedSeconds  int64  `json:"elapsed_seconds"`
}

// StateResponse is the player-facing summary of the garden
type StateResponse struct {
	Currency          int64        `json:"currency"`
	CurrencyDisplay   string       `json:"currency_display"`
	Premium           int64        `json:"premium"`
	LifetimeEarned    int64        `json:"lifetime_earned"`
	PlantsHarvested   int64        `json:"plants_harvested"`
	PrestigeCount     int          `json:"prestige_count"`
	PrestigePoints    int64        `json:"prestige_points"`
	CanPrestige       bool         `json:"can_prestige"`
	PrestigeGain      int64        `json:"prestige_gain"`
	PlotCapacity      int          `json:"plot_capacity"`
	MaxPlotCapacity   int          `json:"max_plot_capacity"`
	GrowthSpeed       string       `json:"growth_speed"`
	YieldMultiplier   string       `json:"yield_multiplier"`
	Plots             []PlotView   `json:"plots"`
	UnlockedPlants    []string     `json:"unlocked_plants"`
	Offline           *OfflineView `json:"offline,omitempty"`
	AchievementsTotal int          `json:"achievements_total"`
	AchievementsDone  int          `json:"achievements_unlocked"`
}

// HarvestResponse reports currency gained by a harvest
type HarvestResponse struct {
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
}

// PrestigeResponse reports the points gained by prestiging
type PrestigeResponse struct {
	Outcome domain.Outcome `json:"outcome"`
	Gain    int64          `json:"gain"`
}

// UpgradeView is one upgrade in the shop
type UpgradeView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	MaxLevel    int    `json:"max_level"`
	Cost        *int64 `json:"cost,omitempty"`
	CostDisplay string `json:"cost_display,omitempty"`
	Affordable  bool   `json:"affordable"`
}

// AchievementView is one achievement with its progress
type AchievementView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Reward      int64      `json:"reward"`
	Progress    float64    `json:"progress"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// AchievementsResponse lists achievements with summary counts
type AchievementsResponse struct {
	Unlocked     int               `json:"unlocked"`
	Total        int               `json:"total"`
	Achievements []AchievementView `json:"achievements"`
}

// ExportResponse carries a portable save string
type ExportResponse struct {
	Blob string `json:"blob"`
}

// buildState must run on the scheduler goroutine
func buildState(e *garden.Engine, p *message.Printer) StateResponse {
	s := e.CurrentState()
	unlocked, total := e.AchievementCounts()

	resp := StateResponse{
		Currency:          s.Currency,
		CurrencyDisplay:   FormatAmount(p, s.Currency),
		Premium:           s.Premium,
		LifetimeEarned:    s.LifetimeEarned,
		PlantsHarvested:   s.PlantsHarvested,
		PrestigeCount:     s.PrestigeCount,
		PrestigePoints:    s.PrestigePoints,
		CanPrestige:       e.CanPrestige(),
		PrestigeGain:      e.PrestigeGain(),
		PlotCapacity:      e.PlotCapacity(),
		MaxPlotCapacity:   e.MaxPlotCapacity(),
		GrowthSpeed:       FormatMultiplier(p, e.GrowthSpeedMultiplier()),
		YieldMultiplier:   FormatMultiplier(p, e.YieldMultiplier()),
		Plots:             make([]PlotView, len(s.Plots)),
		AchievementsTotal: total,
		AchievementsDone:  unlocked,
	}

	for i, plot := range s.Plots {
		view := PlotView{Index: i}
		if plot.Crop != nil {
			plantedAt := plot.Crop.PlantedAt
			view.PlantID = string(plot.Crop.PlantID)
			view.Level = plot.Crop.Level
			view.Ready = plot.Crop.Ready
			view.PlantedAt = &plantedAt
		}
		resp.Plots[i] = view
	}

	for _, def := range e.UnlockedPlants() {
		resp.UnlockedPlants = append(resp.UnlockedPlants, string(def.ID))
	}

	if reward, ok := e.PendingOfflineReward(); ok {
		view := offlineView(reward, true, p)
		resp.Offline = &view
	}
	return resp
}

func offlineView(r domain.OfflineReward, pending bool, p *message.Printer) OfflineView {
	return OfflineView{
		Pending:         pending,
		Currency:        r.Currency,
		CurrencyDisplay: FormatAmount(p, r.Currency),
		PlantsMatured:   r.PlantsMatured,
		ElapsedSeconds:  int64(r.Elapsed.Seconds()),
	}
}

func buildUpgrades(e *garden.Engine, p *message.Printer) []UpgradeView {
	currency := e.CurrentState().Currency
	defs := e.Catalog().Upgrades()
	out := make([]UpgradeView, 0, len(defs))
	for _, def := range defs {
		view := UpgradeView{
			ID:          string(def.ID),
			Name:        def.Name,
			Description: def.Description,
			Level:       e.UpgradeLevel(def.ID),
			MaxLevel:    def.MaxLevel,
		}
		if cost, ok := e.UpgradeCost(def.ID); ok {
			view.Cost = &cost
			view.CostDisplay = FormatAmount(p, cost)
			view.Affordable = currency >= cost
		}
		out = append(out, view)
	}
	return out
}

func buildAchievements(e *garden.Engine) AchievementsResponse {
	records := e.Achievements()
	unlocked, total := e.AchievementCounts()
	resp := AchievementsResponse{
		Unlocked:     unlocked,
		Total:        total,
		Achievements: make([]AchievementView, 0, len(records)),
	}
	for _, rec := range records {
		view := AchievementView{
			ID:         string(rec.ID),
			Progress:   rec.Progress,
			Unlocked:   rec.Unlocked,
			UnlockedAt: rec.UnlockedAt,
		}
		if def, ok := e.AchievementDefinition(rec.ID); ok {
			view.Name = def.Name
			view.Description = def.Description
			view.Reward = def.Reward
		}
		resp.Achievements = append(resp.Achievements, view)
	}
	return resp
}
