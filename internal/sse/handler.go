package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler streams hub events to the requesting client until it disconnects
// or the hub stops. ?types=a,b limits the stream to those event types.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := http.NewResponseController(w)

		var eventTypes []string
		if filter := r.URL.Query().Get(TypesQueryParam); filter != "" {
			for _, t := range strings.Split(filter, ",") {
				if t = strings.TrimSpace(t); t != "" {
					eventTypes = append(eventTypes, t)
				}
			}
		}

		client := hub.Register(eventTypes)
		if client == nil {
			http.Error(w, ErrMsgHubStopped, http.StatusServiceUnavailable)
			return
		}
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		send := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				slog.Error(LogMsgWriteError, "event_type", evt.Type, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !send(evt) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
