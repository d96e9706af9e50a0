package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Garden event types
const (
	Planted             Type = Type(domain.EventTypePlanted)
	Harvested           Type = Type(domain.EventTypeHarvested)
	Uprooted            Type = Type(domain.EventTypeUprooted)
	UpgradePurchased    Type = Type(domain.EventTypeUpgradePurchased)
	OfflineApplied      Type = Type(domain.EventTypeOfflineApplied)
	PrestigePerformed   Type = Type(domain.EventTypePrestige)
	GardenReset         Type = Type(domain.EventTypeReset)
	AchievementUnlocked Type = Type(domain.EventTypeAchievementUnlocked)
	SaveCompleted       Type = Type(domain.EventTypeSaveCompleted)
	SaveFailed          Type = Type(domain.EventTypeSaveFailed)
)

// Typed event payloads for type safety

// PlantedPayloadV1 is the typed payload for planted events
type PlantedPayloadV1 struct {
	PlotIndex int    `json:"plot_index"`
	PlantID   string `json:"plant_id"`
	Timestamp int64  `json:"timestamp"`
}

// HarvestedPayloadV1 is the typed payload for harvest events
type HarvestedPayloadV1 struct {
	PlotIndex int    `json:"plot_index"`
	PlantID   string `json:"plant_id"`
	Amount    int64  `json:"amount"`
	CropLevel int    `json:"crop_level"`
	Source    string `json:"source"` // "manual" or "auto"
	Timestamp int64  `json:"timestamp"`
}

// UprootedPayloadV1 is the typed payload for uproot events
type UprootedPayloadV1 struct {
	PlotIndex int    `json:"plot_index"`
	PlantID   string `json:"plant_id"`
	Timestamp int64  `json:"timestamp"`
}

// UpgradePurchasedPayloadV1 is the typed payload for upgrade purchases
type UpgradePurchasedPayloadV1 struct {
	UpgradeID string `json:"upgrade_id"`
	Level     int    `json:"level"`
	Cost      int64  `json:"cost"`
	Timestamp int64  `json:"timestamp"`
}

// OfflineAppliedPayloadV1 is the typed payload for credited offline rewards
type OfflineAppliedPayloadV1 struct {
	Currency       int64 `json:"currency"`
	PlantsMatured  int   `json:"plants_matured"`
	ElapsedSeconds int64 `json:"elapsed_seconds"`
	Timestamp      int64 `json:"timestamp"`
}

// PrestigePayloadV1 is the typed payload for prestige events
type PrestigePayloadV1 struct {
	Gain           int64 `json:"gain"`
	PrestigeCount  int   `json:"prestige_count"`
	PrestigePoints int64 `json:"prestige_points"`
	Timestamp      int64 `json:"timestamp"`
}

// ResetPayloadV1 is the typed payload for full reset events
type ResetPayloadV1 struct {
	PrestigeCount int   `json:"prestige_count"`
	Timestamp     int64 `json:"timestamp"`
}

// AchievementUnlockedPayloadV1 is the typed payload for achievement unlocks
type AchievementUnlockedPayloadV1 struct {
	AchievementID string `json:"achievement_id"`
	Reward        int64  `json:"reward"`
	Timestamp     int64  `json:"timestamp"`
}

// SavePayloadV1 is the typed payload for save completion and failure events
type SavePayloadV1 struct {
	SaveID     string `json:"save_id"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}, metadata Metadata) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: metadata,
	}
}

// NewPlantedEvent creates a new planted event
func NewPlantedEvent(plotIndex int, plantID domain.PlantID, at time.Time) Event {
	return newEvent(Planted, PlantedPayloadV1{
		PlotIndex: plotIndex,
		PlantID:   string(plantID),
		Timestamp: at.Unix(),
	}, nil)
}

// NewHarvestedEvent creates a new harvest event tagged with its source
func NewHarvestedEvent(plotIndex int, plantID domain.PlantID, amount int64, cropLevel int, source string, at time.Time) Event {
	return newEvent(Harvested, HarvestedPayloadV1{
		PlotIndex: plotIndex,
		PlantID:   string(plantID),
		Amount:    amount,
		CropLevel: cropLevel,
		Source:    source,
		Timestamp: at.Unix(),
	}, map[string]interface{}{
		"source": source,
	})
}

// NewUprootedEvent creates a new uproot event
func NewUprootedEvent(plotIndex int, plantID domain.PlantID, at time.Time) Event {
	return newEvent(Uprooted, UprootedPayloadV1{
		PlotIndex: plotIndex,
		PlantID:   string(plantID),
		Timestamp: at.Unix(),
	}, nil)
}

// NewUpgradePurchasedEvent creates a new upgrade purchase event
func NewUpgradePurchasedEvent(id domain.UpgradeID, level int, cost int64, at time.Time) Event {
	return newEvent(UpgradePurchased, UpgradePurchasedPayloadV1{
		UpgradeID: string(id),
		Level:     level,
		Cost:      cost,
		Timestamp: at.Unix(),
	}, nil)
}

// NewOfflineAppliedEvent creates a new offline reward event
func NewOfflineAppliedEvent(reward domain.OfflineReward, at time.Time) Event {
	return newEvent(OfflineApplied, OfflineAppliedPayloadV1{
		Currency:       reward.Currency,
		PlantsMatured:  reward.PlantsMatured,
		ElapsedSeconds: int64(reward.Elapsed.Seconds()),
		Timestamp:      at.Unix(),
	}, nil)
}

// NewPrestigeEvent creates a new prestige event
func NewPrestigeEvent(gain int64, count int, points int64, at time.Time) Event {
	return newEvent(PrestigePerformed, PrestigePayloadV1{
		Gain:           gain,
		PrestigeCount:  count,
		PrestigePoints: points,
		Timestamp:      at.Unix(),
	}, nil)
}

// NewResetEvent creates a new full reset event
func NewResetEvent(prestigeCount int, at time.Time) Event {
	return newEvent(GardenReset, ResetPayloadV1{
		PrestigeCount: prestigeCount,
		Timestamp:     at.Unix(),
	}, nil)
}

// NewAchievementUnlockedEvent creates a new achievement unlock event
func NewAchievementUnlockedEvent(id domain.AchievementID, reward int64, at time.Time) Event {
	return newEvent(AchievementUnlocked, AchievementUnlockedPayloadV1{
		AchievementID: string(id),
		Reward:        reward,
		Timestamp:     at.Unix(),
	}, nil)
}

// NewSaveEvent creates a save.completed event, or save.failed when err is set
func NewSaveEvent(saveID string, took time.Duration, err error, at time.Time) Event {
	payload := SavePayloadV1{
		SaveID:     saveID,
		DurationMS: took.Milliseconds(),
		Timestamp:  at.Unix(),
	}
	if err != nil {
		payload.Error = err.Error()
		return newEvent(SaveFailed, payload, nil)
	}
	return newEvent(SaveCompleted, payload, nil)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// on the caller's goroutine.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
