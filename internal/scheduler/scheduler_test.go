package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/garden"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
	"github.com/osse101/GardenIdle_Go/internal/testing/leaktest"
	"github.com/osse101/GardenIdle_Go/internal/worker"
)

var t0 = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

// lockedClock is read from the loop goroutine and moved from the test
type lockedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *lockedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *lockedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// countingSaver wraps a store and counts completed saves
type countingSaver struct {
	store *persistence.Store
	saves atomic.Int32
}

func (c *countingSaver) Save(ctx context.Context, snap persistence.Snapshot) error {
	if err := c.store.Save(ctx, snap); err != nil {
		return err
	}
	c.saves.Add(1)
	return nil
}

// gatedSaver holds the first save until release is closed, letting later
// saves overtake it on another worker
type gatedSaver struct {
	store   *persistence.Store
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedSaver) Save(ctx context.Context, snap persistence.Snapshot) error {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.started)
		<-g.release
	}
	return g.store.Save(ctx, snap)
}

type fixture struct {
	sched *Scheduler
	clock *lockedClock
	saver *countingSaver
	pool  *worker.Pool
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{clock: &lockedClock{now: t0}}
	cat := catalog.Default()
	f.saver = &countingSaver{store: persistence.NewStore(persistence.NewMemoryBackend(), cat)}
	engine := garden.NewEngine(cat, garden.WithClock(f.clock.Now))

	f.pool = worker.NewPool(1, 4)
	f.pool.Start(context.Background())

	opts = append([]Option{WithTickInterval(5 * time.Millisecond), WithAutosaveInterval(time.Hour)}, opts...)
	f.sched = New(engine, f.pool, f.saver, opts...)
	return f
}

func (f *fixture) shutdown(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.sched.Stop(ctx))
	require.NoError(t, f.pool.Shutdown(ctx))
}

func (f *fixture) state(t *testing.T) *domain.State {
	t.Helper()
	var s *domain.State
	require.NoError(t, f.sched.Do(context.Background(), func(e *garden.Engine) {
		s = e.CurrentState()
	}))
	return s
}

func TestScheduler_DoRunsCommandsOnLoop(t *testing.T) {
	f := newFixture(t)
	f.sched.Start(context.Background())
	defer f.shutdown(t)

	var outcome domain.Outcome
	require.NoError(t, f.sched.Do(context.Background(), func(e *garden.Engine) {
		outcome = e.Plant(context.Background(), catalog.PlantSprout, 0)
	}))

	assert.Equal(t, domain.OutcomeOK, outcome)
	require.NotNil(t, f.state(t).Plots[0].Crop)
}

func TestScheduler_TicksMatureCrops(t *testing.T) {
	f := newFixture(t)
	f.sched.Start(context.Background())
	defer f.shutdown(t)

	require.NoError(t, f.sched.Do(context.Background(), func(e *garden.Engine) {
		e.Plant(context.Background(), catalog.PlantSprout, 0)
	}))
	f.clock.Advance(16 * time.Second)

	assert.Eventually(t, func() bool {
		crop := f.state(t).Plots[0].Crop
		return crop != nil && crop.Ready
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_Autosave(t *testing.T) {
	f := newFixture(t, WithAutosaveInterval(10*time.Millisecond))
	f.sched.Start(context.Background())
	defer f.shutdown(t)

	assert.Eventually(t, func() bool {
		return f.saver.saves.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_SaveNowPublishesResult(t *testing.T) {
	bus := event.NewMemoryBus()
	var completed atomic.Int32
	bus.Subscribe(event.SaveCompleted, func(context.Context, event.Event) error {
		completed.Add(1)
		return nil
	})

	f := newFixture(t, WithBus(bus))
	f.sched.Start(context.Background())
	defer f.shutdown(t)

	job, err := f.sched.SaveNow(context.Background())
	require.NoError(t, err)

	select {
	case err := <-job.Done():
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("save did not finish")
	}
	assert.Equal(t, int32(1), completed.Load())
}

func TestScheduler_StopWritesFinalSnapshot(t *testing.T) {
	leaktest.Check(t, func() {
		f := newFixture(t)
		f.sched.Start(context.Background())

		require.NoError(t, f.sched.Do(context.Background(), func(e *garden.Engine) {
			e.Plant(context.Background(), catalog.PlantDaisy, 1)
		}))
		f.shutdown(t)

		assert.Equal(t, int32(1), f.saver.saves.Load())
		snap, source := f.saver.store.Load(context.Background())
		assert.Equal(t, persistence.SourcePrimary, source)
		require.NotNil(t, snap.State.Plots[1].Crop)
		assert.Equal(t, catalog.PlantDaisy, snap.State.Plots[1].Crop.PlantID)
		assert.Equal(t, t0, snap.State.LastSavedAt)

		// Stop is idempotent and Do refuses work afterwards
		assert.NoError(t, f.sched.Stop(context.Background()))
		assert.ErrorIs(t, f.sched.Do(context.Background(), func(*garden.Engine) {}), ErrStopped)
	})
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	f := newFixture(t)
	f.shutdown(t)

	assert.Equal(t, int32(1), f.saver.saves.Load())
}

func TestScheduler_DoHonoursContextWhileWaiting(t *testing.T) {
	f := newFixture(t)
	defer f.pool.Stop()

	// Never started, so nothing dequeues the command
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	ran := false
	err := f.sched.Do(ctx, func(*garden.Engine) { ran = true })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ran)
}

func TestScheduler_ContextCancelStopsLoop(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	f.sched.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool {
		return f.sched.Do(context.Background(), func(*garden.Engine) {}) == ErrStopped
	}, time.Second, 5*time.Millisecond)

	f.shutdown(t)
}

func TestScheduler_EarlierAutosaveDoesNotOverwriteImport(t *testing.T) {
	ctx := context.Background()
	cat := catalog.Default()
	clock := &lockedClock{now: t0}
	store := persistence.NewStore(persistence.NewMemoryBackend(), cat)
	saver := &gatedSaver{store: store, started: make(chan struct{}), release: make(chan struct{})}

	pool := worker.NewPool(2, 4)
	pool.Start(ctx)
	sched := New(garden.NewEngine(cat, garden.WithClock(clock.Now)), pool, saver,
		WithTickInterval(time.Hour), WithAutosaveInterval(time.Hour))
	sched.Start(ctx)

	autosave, err := sched.SaveNow(ctx)
	require.NoError(t, err)
	select {
	case <-saver.started:
	case <-time.After(time.Second):
		t.Fatal("autosave did not start")
	}

	imported := domain.NewState(t0)
	imported.Currency = 9_999
	require.NoError(t, sched.Do(ctx, func(e *garden.Engine) { e.Load(imported, nil) }))
	require.NoError(t, sched.Persist(ctx))

	close(saver.release)
	select {
	case err := <-autosave.Done():
		assert.NoError(t, err, "a superseded autosave is not a failure")
	case <-time.After(time.Second):
		t.Fatal("autosave did not finish")
	}

	snap, source := store.Load(ctx)
	assert.Equal(t, persistence.SourcePrimary, source)
	assert.Equal(t, int64(9_999), snap.State.Currency)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, sched.Stop(stopCtx))
	require.NoError(t, pool.Shutdown(stopCtx))

	snap, _ = store.Load(ctx)
	assert.Equal(t, int64(9_999), snap.State.Currency)
}

func TestScheduler_PersistWaitsForWrite(t *testing.T) {
	f := newFixture(t)
	f.sched.Start(context.Background())
	defer f.shutdown(t)

	require.NoError(t, f.sched.Do(context.Background(), func(e *garden.Engine) {
		e.Plant(context.Background(), catalog.PlantSprout, 2)
	}))
	require.NoError(t, f.sched.Persist(context.Background()))

	assert.Equal(t, int32(1), f.saver.saves.Load())
	snap, _ := f.saver.store.Load(context.Background())
	require.NotNil(t, snap.State.Plots[2].Crop)
}
