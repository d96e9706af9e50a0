package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/bootstrap"
	"github.com/osse101/GardenIdle_Go/internal/config"
	"github.com/osse101/GardenIdle_Go/internal/garden"
	"github.com/osse101/GardenIdle_Go/internal/handler"
	"github.com/osse101/GardenIdle_Go/internal/scheduler"
	"github.com/osse101/GardenIdle_Go/internal/server"
	"github.com/osse101/GardenIdle_Go/internal/sse"
	"github.com/osse101/GardenIdle_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	saveQueueSize   = 8
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.Version)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Garden failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	backend, backendCloser, err := bootstrap.OpenBackend(ctx, cfg)
	if err != nil {
		return err
	}
	store := bootstrap.NewStore(backend, cat)

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	hub := sse.NewHub()
	hub.Start()
	bootstrap.RegisterEventHandlers(bus, hub)

	// Restore the last save and work out what grew while we were away
	engine := garden.NewEngine(cat, garden.WithBus(publisher))
	snap, source := store.Load(ctx)
	engine.Load(snap.State, snap.Achievements)
	slog.Info(bootstrap.LogMsgSaveLoaded, "source", source, "save_id", snap.SaveID)

	engine.Reconcile(ctx, engine.Now())
	if _, pending := engine.PendingOfflineReward(); cfg.AutoConfirmOffline && pending {
		engine.ApplyOfflineReward(ctx)
	}

	pool := worker.NewPool(cfg.SaveWorkers, saveQueueSize)
	pool.Start(ctx)

	sched := scheduler.New(engine, pool, store,
		scheduler.WithTickInterval(cfg.TickInterval),
		scheduler.WithAutosaveInterval(cfg.AutosaveInterval),
		scheduler.WithBus(publisher))
	// The loop keeps serving in-flight requests until GracefulShutdown stops it
	sched.Start(context.WithoutCancel(ctx))

	if cfg.IsProduction() && cfg.APIKey == "" {
		slog.Warn(bootstrap.LogMsgAPIUnprotected)
	}
	srv := server.NewServer(server.Options{
		Addr:           cfg.Addr(),
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Events:         hub,
	}, sched, store)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		err = nil
	case err = <-serveErr:
	}

	// The signal context is done by now; shutdown gets its own deadline
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	var closers []io.Closer
	if backendCloser != nil {
		closers = append(closers, backendCloser)
	}
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		EventHub:           hub,
		Server:             srv,
		Scheduler:          sched,
		SavePool:           pool,
		ResilientPublisher: publisher,
		Closers:            closers,
	})
	return err
}
