package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/GardenIdle_Go/internal/event"
)

// StreamedTypes are the bus events forwarded to stream clients
var StreamedTypes = []event.Type{
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

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the forwarding handler for every streamed type
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(StreamedTypes))
	for _, t := range StreamedTypes {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", names)
}

// forward rebroadcasts the event with its typed payload unchanged
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
