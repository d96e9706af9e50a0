package garden

import (
	"context"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/logger"
	"github.com/osse101/GardenIdle_Go/internal/prestige"
)

// CanPrestige reports whether the current balance allows a prestige
func (e *Engine) CanPrestige() bool {
	return prestige.CanPrestige(e.state)
}

// PrestigeGain is the number of points a prestige would award now
func (e *Engine) PrestigeGain() int64 {
	return prestige.Gain(e.state)
}

// PerformPrestige replaces the state with a fresh one carrying the increased
// prestige fields. The swap is all or nothing.
func (e *Engine) PerformPrestige(ctx context.Context) (int64, domain.Outcome) {
	now := e.now()
	next, gain, ok := prestige.Perform(e.state, now)
	if !ok {
		return 0, domain.OutcomeNotEligible
	}
	spent := e.state.Currency

	e.state = next
	e.clearPending()

	logger.FromContext(ctx).Info(LogMsgPrestige,
		"gain", gain, "count", next.PrestigeCount, "points", next.PrestigePoints, "currency", spent)
	e.publish(ctx, event.NewPrestigeEvent(gain, next.PrestigeCount, next.PrestigePoints, now))
	return gain, domain.OutcomeOK
}

// ResetAll starts over with a fresh state. Prestige progress and achievement
// records are kept.
func (e *Engine) ResetAll(ctx context.Context) domain.Outcome {
	now := e.now()
	e.state = prestige.Carry(e.state, now)
	e.clearPending()

	logger.FromContext(ctx).Info(LogMsgReset, "prestige_count", e.state.PrestigeCount)
	e.publish(ctx, event.NewResetEvent(e.state.PrestigeCount, now))
	return domain.OutcomeOK
}
