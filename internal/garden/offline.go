package garden

import (
	"context"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/logger"
	"github.com/osse101/GardenIdle_Go/internal/offline"
)

// Reconcile computes the reward for the time since the last save and adds it
// to the pending reward until ApplyOfflineReward. The pending reward lives in
// the state, so it survives a save and reload. LastSavedAt advances only when
// a reward was accrued: an implausible interval or one too short to yield
// anything leaves the state untouched. Calling Reconcile again right away
// yields nothing new.
func (e *Engine) Reconcile(ctx context.Context, now time.Time) domain.OfflineReward {
	now = now.UTC().Round(0)
	log := logger.FromContext(ctx)

	elapsed := now.Sub(e.state.LastSavedAt)
	if elapsed > offline.ImplausibleElapsed || elapsed < 0 {
		log.Warn(LogMsgOfflineImplausible, "elapsed", elapsed, "last_saved_at", e.state.LastSavedAt)
		return domain.OfflineReward{}
	}

	reward := offline.ComputeOfflineReward(e.cat, e.state, now)
	if reward.IsZero() {
		return reward
	}
	merged := reward
	if e.state.PendingOffline != nil {
		merged = e.state.PendingOffline.Add(reward)
	}
	e.state.PendingOffline = &merged
	e.state.LastSavedAt = now
	log.Info(LogMsgOfflineComputed,
		"currency", reward.Currency, "plants", reward.PlantsMatured, "elapsed", reward.Elapsed)
	return reward
}

// PendingOfflineReward returns the reward awaiting confirmation
func (e *Engine) PendingOfflineReward() (domain.OfflineReward, bool) {
	if e.state.PendingOffline == nil {
		return domain.OfflineReward{}, false
	}
	return *e.state.PendingOffline, true
}

// ApplyOfflineReward credits the pending reward and clears it
func (e *Engine) ApplyOfflineReward(ctx context.Context) domain.Outcome {
	reward, ok := e.PendingOfflineReward()
	if !ok {
		return domain.OutcomeNothingPending
	}
	e.state.Currency += reward.Currency
	e.state.LifetimeEarned += reward.Currency
	e.clearPending()

	logger.FromContext(ctx).Info(LogMsgOfflineApplied, "currency", reward.Currency, "plants", reward.PlantsMatured)
	e.publish(ctx, event.NewOfflineAppliedEvent(reward, e.now()))
	return domain.OutcomeOK
}

func (e *Engine) clearPending() {
	e.state.PendingOffline = nil
}
