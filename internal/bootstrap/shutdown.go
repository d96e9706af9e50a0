package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/scheduler"
	"github.com/osse101/GardenIdle_Go/internal/server"
	"github.com/osse101/GardenIdle_Go/internal/sse"
	"github.com/osse101/GardenIdle_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	EventHub           *sse.Hub
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	SavePool           *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Closers            []io.Closer
}

// GracefulShutdown stops components in dependency order:
//  1. Event stream hub (ends long-lived streams so the server can drain)
//  2. HTTP server (no new commands)
//  3. Scheduler (writes the final save through the pool)
//  4. Save pool (drains queued saves)
//  5. Event publisher (flushes pending retries)
//  6. Closers such as the sqlite handle
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.EventHub != nil {
		slog.Info(LogMsgStoppingEventStream)
		c.EventHub.Stop()
	}

	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		if err := c.Scheduler.Stop(ctx); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}

	if c.SavePool != nil {
		slog.Info(LogMsgShuttingDownSavePool)
		if err := c.SavePool.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSavePoolShutdownFailed, "error", err)
		}
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	for _, closer := range c.Closers {
		if closer == nil {
			continue
		}
		if err := closer.Close(); err != nil {
			slog.Error(LogMsgCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
