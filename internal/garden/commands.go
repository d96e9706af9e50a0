package garden

import (
	"context"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/economy"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/logger"
)

// Plant puts a new crop in an empty plot
func (e *Engine) Plant(ctx context.Context, plantID domain.PlantID, plotIndex int) domain.Outcome {
	if !e.plotInRange(plotIndex) {
		return domain.OutcomePlotOutOfRange
	}
	if !e.state.Plots[plotIndex].Empty() {
		return domain.OutcomePlotOccupied
	}
	if _, ok := e.cat.Plant(plantID); !ok {
		return domain.OutcomeUnknownPlant
	}
	if !e.cat.IsPlantUnlocked(plantID, e.state.LifetimeEarned, e.state.PrestigeCount) {
		return domain.OutcomePlantLocked
	}

	now := e.now()
	e.state.Plots[plotIndex].Crop = &domain.Crop{
		PlantID:   plantID,
		PlantedAt: now,
		Level:     1,
	}
	e.state.RecordPlanted(plantID)

	logger.FromContext(ctx).Debug(LogMsgPlanted, "plant", plantID, "plot", plotIndex)
	e.publish(ctx, event.NewPlantedEvent(plotIndex, plantID, now))
	return domain.OutcomeOK
}

// Harvest collects a ready crop and returns the currency earned. It returns
// zero without changing anything when the plot is out of range, empty or
// still growing.
func (e *Engine) Harvest(ctx context.Context, plotIndex int) int64 {
	if !e.plotInRange(plotIndex) || !e.state.Plots[plotIndex].Ready() {
		return 0
	}
	return e.harvest(ctx, plotIndex, e.now(), domain.HarvestSourceManual)
}

// HarvestAll collects every ready crop and returns the total earned
func (e *Engine) HarvestAll(ctx context.Context) int64 {
	now := e.now()
	var total int64
	for i := range e.state.Plots {
		if e.state.Plots[i].Ready() {
			total += e.harvest(ctx, i, now, domain.HarvestSourceManual)
		}
	}
	return total
}

// Uproot clears a plot without harvesting it
func (e *Engine) Uproot(ctx context.Context, plotIndex int) domain.Outcome {
	if !e.plotInRange(plotIndex) {
		return domain.OutcomePlotOutOfRange
	}
	crop := e.state.Plots[plotIndex].Crop
	if crop == nil {
		return domain.OutcomePlotEmpty
	}
	e.state.Plots[plotIndex].Crop = nil

	logger.FromContext(ctx).Debug(LogMsgUprooted, "plant", crop.PlantID, "plot", plotIndex)
	e.publish(ctx, event.NewUprootedEvent(plotIndex, crop.PlantID, e.now()))
	return domain.OutcomeOK
}

// PurchaseUpgrade buys the next level of an upgrade
func (e *Engine) PurchaseUpgrade(ctx context.Context, id domain.UpgradeID) domain.Outcome {
	def, ok := e.cat.Upgrade(id)
	if !ok {
		return domain.OutcomeUnknownUpgrade
	}
	level := e.state.UpgradeLevel(id)
	if level >= def.MaxLevel {
		return domain.OutcomeMaxLevel
	}
	cost, ok := e.cat.UpgradeCost(id, level)
	if !ok {
		return domain.OutcomeMaxLevel
	}
	if e.state.Currency < cost {
		return domain.OutcomeInsufficientFunds
	}

	e.state.Currency -= cost
	e.state.Upgrades[id] = level + 1
	if def.Kind == domain.UpgradeKindPlotCapacity {
		e.state.EnsureCapacity(e.PlotCapacity())
	}

	logger.FromContext(ctx).Info(LogMsgUpgradePurchased, "upgrade", id, "level", level+1, "cost", cost)
	e.publish(ctx, event.NewUpgradePurchasedEvent(id, level+1, cost, e.now()))
	return domain.OutcomeOK
}

// harvest credits a ready crop and restarts its growth clock
func (e *Engine) harvest(ctx context.Context, plotIndex int, now time.Time, source string) int64 {
	crop := e.state.Plots[plotIndex].Crop
	def, ok := e.cat.Plant(crop.PlantID)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownCropPlant, "plant", crop.PlantID, "plot", plotIndex)
		return 0
	}

	amount := economy.HarvestYield(def, crop.Level, economy.ModifiersFor(e.cat, e.state))

	e.state.Currency += amount
	e.state.LifetimeEarned += amount
	e.state.PlantsHarvested++

	crop.Harvests++
	crop.Level = economy.CropLevel(crop.Harvests)
	crop.PlantedAt = now
	crop.Ready = false

	logger.FromContext(ctx).Debug(LogMsgHarvested,
		"plant", crop.PlantID, "plot", plotIndex, "amount", amount, "source", source)
	e.publish(ctx, event.NewHarvestedEvent(plotIndex, crop.PlantID, amount, crop.Level, source, now))
	return amount
}
