package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return evt
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilters(t *testing.T) {
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	all := hub.Register(nil)
	harvestsOnly := hub.Register([]string{"garden.harvested"})
	require.NotNil(t, all)
	require.NotNil(t, harvestsOnly)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Broadcast("garden.planted", map[string]int{"plot_index": 1})
	hub.Broadcast("garden.harvested", map[string]int{"amount": 8})

	assert.Equal(t, "garden.planted", receive(t, all).Type)
	assert.Equal(t, "garden.harvested", receive(t, all).Type)

	evt := receive(t, harvestsOnly)
	assert.Equal(t, "garden.harvested", evt.Type)
	assert.NotEmpty(t, evt.ID)
	select {
	case extra := <-harvestsOnly.EventChannel:
		t.Fatalf("unexpected event %q", extra.Type)
	default:
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	c := hub.Register(nil)
	hub.Unregister(c.ID)
	hub.Unregister(c.ID)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())
}

func TestHub_StopEndsClientsAndRefusesNewOnes(t *testing.T) {
	hub := NewHub()
	hub.Start()
	c := hub.Register(nil)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Nil(t, hub.Register(nil))
	hub.Unregister(c.ID)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "garden.reset", Timestamp: 42, Payload: map[string]int{"prestige_count": 2}})
	require.NoError(t, err)

	text := string(msg)
	assert.True(t, strings.HasPrefix(text, "id: abc\nevent: garden.reset\ndata: {"))
	assert.Contains(t, text, `"prestige_count":2`)
	assert.True(t, strings.HasSuffix(text, "\n\n"))
}
