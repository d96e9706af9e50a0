// Package scheduler runs the garden engine on a single goroutine. Ticks,
// autosaves and host commands are all serialised through one loop, so the
// engine never sees concurrent access.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/garden"
	"github.com/osse101/GardenIdle_Go/internal/logger"
	"github.com/osse101/GardenIdle_Go/internal/metrics"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
	"github.com/osse101/GardenIdle_Go/internal/worker"
)

// Option configures a Scheduler
type Option func(*Scheduler)

// WithTickInterval sets how often the simulation advances
func WithTickInterval(d time.Duration) Option {
	return func(s *Scheduler) { s.tickInterval = d }
}

// WithAutosaveInterval sets how often a snapshot is handed to the pool
func WithAutosaveInterval(d time.Duration) Option {
	return func(s *Scheduler) { s.autosaveInterval = d }
}

// WithBus reports save results on the given bus
func WithBus(bus event.Bus) Option {
	return func(s *Scheduler) { s.bus = bus }
}

type command struct {
	fn   func(*garden.Engine)
	done chan struct{}
}

// Scheduler owns an engine and drives it from one goroutine
type Scheduler struct {
	engine *garden.Engine
	pool   *worker.Pool
	saver  worker.Saver
	bus    event.Bus

	tickInterval     time.Duration
	autosaveInterval time.Duration

	commands chan command
	quit     chan struct{}
	done     chan struct{}

	// revision numbers snapshots in the order the loop took them
	revision uint64

	startOnce sync.Once
	stopOnce  sync.Once
	stopErr   error
}

// New creates a scheduler. The engine must not be touched by anything else
// once Start has been called.
func New(engine *garden.Engine, pool *worker.Pool, saver worker.Saver, opts ...Option) *Scheduler {
	s := &Scheduler{
		engine:           engine,
		pool:             pool,
		saver:            saver,
		tickInterval:     DefaultTickInterval,
		autosaveInterval: DefaultAutosaveInterval,
		commands:         make(chan command),
		quit:             make(chan struct{}),
		done:             make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the loop. It returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		go s.run(ctx)
	})
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)
	log := logger.FromContext(ctx)
	log.Info(LogMsgSchedulerStarted, "tick", s.tickInterval, "autosave", s.autosaveInterval)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	autosave := time.NewTicker(s.autosaveInterval)
	defer autosave.Stop()

	for {
		select {
		case <-ticker.C:
			s.step(ctx)
		case <-autosave.C:
			if job := s.snapshotJob(); !s.pool.TryEnqueue(job) {
				log.Warn(LogMsgAutosaveSkipped, "save_id", job.SaveID())
			}
		case cmd := <-s.commands:
			cmd.fn(s.engine)
			close(cmd.done)
		case <-s.quit:
			log.Info(LogMsgSchedulerStopped)
			return
		case <-ctx.Done():
			log.Info(LogMsgSchedulerStopped)
			return
		}
	}
}

// step advances the simulation once
func (s *Scheduler) step(ctx context.Context) {
	start := time.Now()
	res := s.engine.Advance(ctx, s.engine.Now())
	metrics.TickDuration.Observe(time.Since(start).Seconds())

	for _, id := range res.Unlocked {
		logger.FromContext(ctx).Info(LogMsgAchievementEarned, "achievement", id)
	}
}

// snapshotJob must run on the loop goroutine or after the loop has exited
func (s *Scheduler) snapshotJob() *worker.SaveJob {
	state, records := s.engine.Checkpoint()
	snap := persistence.NewSnapshot(state, records, state.LastSavedAt)
	s.revision++
	snap.Revision = s.revision
	return worker.NewSaveJob(s.saver, snap, s.bus)
}

// Do runs fn on the loop goroutine and waits for it to return. ctx only
// bounds the wait to be dequeued; once fn starts it runs to completion.
func (s *Scheduler) Do(ctx context.Context, fn func(*garden.Engine)) error {
	cmd := command{fn: fn, done: make(chan struct{})}
	select {
	case s.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return ErrStopped
	}
	<-cmd.done
	return nil
}

// SaveNow checkpoints the engine on the loop and queues the snapshot,
// returning the job so callers can wait on its result.
func (s *Scheduler) SaveNow(ctx context.Context) (*worker.SaveJob, error) {
	var job *worker.SaveJob
	if err := s.Do(ctx, func(*garden.Engine) { job = s.snapshotJob() }); err != nil {
		return nil, err
	}
	if err := s.pool.Enqueue(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Persist queues a snapshot like SaveNow and waits for it to be written
func (s *Scheduler) Persist(ctx context.Context) error {
	job, err := s.SaveNow(ctx)
	if err != nil {
		return err
	}
	select {
	case err := <-job.Done():
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop ends the loop, then writes a final snapshot and waits for it or for
// ctx to expire. Later calls return the first result.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.startOnce.Do(func() { close(s.done) })
		<-s.done

		s.stopErr = s.finalSave(ctx)
	})
	return s.stopErr
}

// finalSave runs after the loop has exited, so the engine is ours
func (s *Scheduler) finalSave(ctx context.Context) error {
	job := s.snapshotJob()
	if err := s.pool.Enqueue(ctx, job); err != nil {
		logger.FromContext(ctx).Error(LogMsgFinalSaveFailed, "error", err)
		return err
	}
	select {
	case err := <-job.Done():
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgFinalSaveFailed, "error", err)
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
