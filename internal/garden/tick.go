package garden

import (
	"context"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/economy"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/logger"
)

// AdvanceResult summarises one scheduler step
type AdvanceResult struct {
	Matured       int
	AutoHarvested int64
	Unlocked      []domain.AchievementID
}

// Advance runs one simulation step: growth, auto-harvest, then achievements
func (e *Engine) Advance(ctx context.Context, now time.Time) AdvanceResult {
	return AdvanceResult{
		Matured:       e.Tick(ctx, now),
		AutoHarvested: e.TickAutoHarvest(ctx, now),
		Unlocked:      e.EvaluateAchievements(ctx, now),
	}
}

// Tick marks every crop whose growth time has elapsed as ready and returns
// how many matured. Calling it repeatedly with the same time changes nothing.
func (e *Engine) Tick(ctx context.Context, now time.Time) int {
	now = now.UTC().Round(0)
	mods := economy.ModifiersFor(e.cat, e.state)

	matured := 0
	for i := range e.state.Plots {
		crop := e.state.Plots[i].Crop
		if crop == nil || crop.Ready {
			continue
		}
		def, ok := e.cat.Plant(crop.PlantID)
		if !ok {
			continue
		}
		if now.Sub(crop.PlantedAt) >= economy.EffectiveGrowth(def, mods) {
			crop.Ready = true
			matured++
		}
	}
	return matured
}

// TickAutoHarvest gives each ready plot one chance to be harvested
// automatically, with probability set by the auto-harvest upgrade.
func (e *Engine) TickAutoHarvest(ctx context.Context, now time.Time) int64 {
	chance := economy.ModifiersFor(e.cat, e.state).AutoHarvestChance
	if chance <= 0 {
		return 0
	}

	now = now.UTC().Round(0)
	var total int64
	for i := range e.state.Plots {
		if !e.state.Plots[i].Ready() {
			continue
		}
		if e.rng.Float64() < chance {
			total += e.harvest(ctx, i, now, domain.HarvestSourceAuto)
		}
	}
	return total
}

// EvaluateAchievements updates achievement records, credits premium rewards
// for new unlocks and returns their ids.
func (e *Engine) EvaluateAchievements(ctx context.Context, now time.Time) []domain.AchievementID {
	now = now.UTC().Round(0)
	res := e.tracker.Observe(e.cat, e.state, now)
	if len(res.Unlocked) == 0 {
		return nil
	}

	e.state.Premium += res.PremiumReward

	log := logger.FromContext(ctx)
	for _, id := range res.Unlocked {
		var reward int64
		if def, ok := e.tracker.Definition(id); ok {
			reward = def.Reward
		}
		log.Info(LogMsgAchievement, "achievement", id, "reward", reward)
		e.publish(ctx, event.NewAchievementUnlockedEvent(id, reward, now))
	}
	return res.Unlocked
}
