package worker

import (
	"context"
	"sync"

	"github.com/osse101/GardenIdle_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool. Jobs already queued when the pool shuts down
// still run, so a final save is never dropped.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
	ctx     context.Context
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      context.Background(),
	}
}

// Start starts the workers. Jobs run with a context derived from ctx that
// keeps its values but is never cancelled.
func (p *Pool) Start(ctx context.Context) {
	p.ctx = context.WithoutCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if err := job.Process(p.ctx); err != nil {
			logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "error", err)
		}
	}
}

// Enqueue adds a job to the queue, blocking until there is room or ctx is done
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryEnqueue adds a job without blocking. It reports false when the queue is
// full or the pool is stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Shutdown stops accepting jobs and waits for queued ones to finish or for
// ctx to expire.
func (p *Pool) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPoolShuttingDown)

	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobQueue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgPoolShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgPoolShutdownTimeout)
		return ctx.Err()
	}
}

// Stop shuts the pool down and waits for every queued job
func (p *Pool) Stop() {
	_ = p.Shutdown(context.Background())
}
