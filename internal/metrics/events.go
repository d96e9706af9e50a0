package metrics

import (
	"context"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/logger"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.Planted,
		event.Harvested,
		event.Uprooted,
		event.UpgradePurchased,
		event.OfflineApplied,
		event.PrestigePerformed,
		event.GardenReset,
		event.AchievementUnlocked,
		event.SaveCompleted,
		event.SaveFailed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.Harvested:
		var p event.HarvestedPayloadV1
		if p, err = event.PayloadOf[event.HarvestedPayloadV1](evt); err == nil {
			Harvests.WithLabelValues(p.PlantID, p.Source).Inc()
			CurrencyEarned.WithLabelValues(harvestSource(p.Source)).Add(float64(p.Amount))
		}

	case event.UpgradePurchased:
		var p event.UpgradePurchasedPayloadV1
		if p, err = event.PayloadOf[event.UpgradePurchasedPayloadV1](evt); err == nil {
			UpgradesPurchased.WithLabelValues(p.UpgradeID).Inc()
			CurrencySpent.Add(float64(p.Cost))
		}

	case event.OfflineApplied:
		var p event.OfflineAppliedPayloadV1
		if p, err = event.PayloadOf[event.OfflineAppliedPayloadV1](evt); err == nil {
			CurrencyEarned.WithLabelValues(SourceOffline).Add(float64(p.Currency))
		}

	case event.PrestigePerformed:
		Prestiges.Inc()

	case event.AchievementUnlocked:
		var p event.AchievementUnlockedPayloadV1
		if p, err = event.PayloadOf[event.AchievementUnlockedPayloadV1](evt); err == nil {
			AchievementsUnlocked.WithLabelValues(p.AchievementID).Inc()
		}

	case event.SaveCompleted:
		Saves.WithLabelValues(ResultSuccess).Inc()

	case event.SaveFailed:
		Saves.WithLabelValues(ResultFailure).Inc()
	}

	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
	}
	return nil
}

func harvestSource(source string) string {
	if source == domain.HarvestSourceAuto {
		return SourceHarvestAuto
	}
	return SourceHarvestManual
}

// LoadObserver records save load outcomes
type LoadObserver struct{}

var _ persistence.Observer = LoadObserver{}

// SlotCorrupt counts an unreadable slot
func (LoadObserver) SlotCorrupt(slot persistence.Slot) {
	CorruptSlots.WithLabelValues(string(slot)).Inc()
}

// Loaded counts the slot a load was served from
func (LoadObserver) Loaded(source persistence.Source) {
	SaveLoads.WithLabelValues(string(source)).Inc()
}
