package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: eventType, Payload: "payload"})
	require.NoError(t, err)
	assert.True(t, handled, "handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}
	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), Event{Type: "nobody"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	assert.Error(t, bus.Publish(context.Background(), Event{Type: eventType}))
}

func TestNewHarvestedEvent(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	e := NewHarvestedEvent(2, "sprout", 8, 3, domain.HarvestSourceAuto, at)

	assert.Equal(t, Harvested, e.Type)
	assert.Equal(t, EventSchemaVersion, e.Version)
	assert.Equal(t, domain.HarvestSourceAuto, e.GetMetadataValue("source"))

	payload, err := DecodePayload[HarvestedPayloadV1](e.Payload)
	require.NoError(t, err)
	assert.Equal(t, HarvestedPayloadV1{
		PlotIndex: 2, PlantID: "sprout", Amount: 8, CropLevel: 3,
		Source: domain.HarvestSourceAuto, Timestamp: at.Unix(),
	}, payload)
}

func TestNewSaveEvent(t *testing.T) {
	at := time.Now()

	ok := NewSaveEvent("abc", 15*time.Millisecond, nil, at)
	assert.Equal(t, SaveCompleted, ok.Type)

	failed := NewSaveEvent("abc", time.Millisecond, errors.New("disk full"), at)
	assert.Equal(t, SaveFailed, failed.Type)
	payload, err := DecodePayload[SavePayloadV1](failed.Payload)
	require.NoError(t, err)
	assert.Equal(t, "disk full", payload.Error)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"upgrade_id": "growth_speed", "level": 3, "cost": 337}

	payload, err := DecodePayload[UpgradePurchasedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "growth_speed", payload.UpgradeID)
	assert.Equal(t, 3, payload.Level)
	assert.Equal(t, int64(337), payload.Cost)
}

func TestDecodePayload_PointerAndRaw(t *testing.T) {
	ptr := &OfflineAppliedPayloadV1{Currency: 120, PlantsMatured: 3}
	fromPtr, err := DecodePayload[OfflineAppliedPayloadV1](ptr)
	require.NoError(t, err)
	assert.Equal(t, int64(120), fromPtr.Currency)

	raw := json.RawMessage(`{"gain":2,"prestige_count":1,"prestige_points":2}`)
	fromRaw, err := DecodePayload[PrestigePayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fromRaw.Gain)

	_, err = DecodePayload[PrestigePayloadV1](nil)
	assert.ErrorIs(t, err, ErrNilPayload)
}

func TestPayloadOf_NamesEventType(t *testing.T) {
	_, err := PayloadOf[HarvestedPayloadV1](Event{Type: Harvested, Payload: json.RawMessage(`{"amount":"lots"}`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(Harvested))

	_, err = PayloadOf[HarvestedPayloadV1](Event{Type: Harvested})
	assert.ErrorIs(t, err, ErrNilPayload)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
}
