package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/logger"
	"github.com/osse101/GardenIdle_Go/internal/metrics"
	"github.com/osse101/GardenIdle_Go/internal/sse"
)

// RegisterEventHandlers subscribes the metrics collector, the garden
// journal (milestones logged at info level) and, when hub is set, the
// event stream bridge.
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		sse.NewSubscriber(hub, bus).Subscribe()
	}

	bus.Subscribe(event.PrestigePerformed, journalPrestige)
	bus.Subscribe(event.GardenReset, journalReset)
	bus.Subscribe(event.AchievementUnlocked, journalAchievement)
	bus.Subscribe(event.OfflineApplied, journalOffline)
	slog.Info(LogMsgGardenJournalRegistered)
}

func journalPrestige(ctx context.Context, evt event.Event) error {
	p, err := event.PayloadOf[event.PrestigePayloadV1](evt)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgJournalPrestige,
		"gain", p.Gain, "prestige_count", p.PrestigeCount, "prestige_points", p.PrestigePoints)
	return nil
}

func journalReset(ctx context.Context, evt event.Event) error {
	p, err := event.PayloadOf[event.ResetPayloadV1](evt)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgJournalReset, "prestige_count", p.PrestigeCount)
	return nil
}

func journalAchievement(ctx context.Context, evt event.Event) error {
	p, err := event.PayloadOf[event.AchievementUnlockedPayloadV1](evt)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgJournalAchievement, "achievement", p.AchievementID, "reward", p.Reward)
	return nil
}

func journalOffline(ctx context.Context, evt event.Event) error {
	p, err := event.PayloadOf[event.OfflineAppliedPayloadV1](evt)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgJournalOffline,
		"currency", p.Currency, "plants_matured", p.PlantsMatured, "elapsed_seconds", p.ElapsedSeconds)
	return nil
}
