package worker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
)

type fakeSaver struct {
	mu    sync.Mutex
	saved []persistence.Snapshot
	err   error
}

func (f *fakeSaver) Save(_ context.Context, snap persistence.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, snap)
	return nil
}

func collect(bus *event.MemoryBus, types ...event.Type) *[]event.Event {
	var got []event.Event
	for _, typ := range types {
		bus.Subscribe(typ, func(_ context.Context, e event.Event) error {
			got = append(got, e)
			return nil
		})
	}
	return &got
}

func TestSaveJob_Success(t *testing.T) {
	saver := &fakeSaver{}
	bus := event.NewMemoryBus()
	got := collect(bus, event.SaveCompleted, event.SaveFailed)
	snap := persistence.FreshSnapshot(time.Now())

	job := NewSaveJob(saver, snap, bus)
	require.NoError(t, job.Process(context.Background()))

	require.Len(t, saver.saved, 1)
	assert.Equal(t, snap.SaveID, saver.saved[0].SaveID)
	assert.NoError(t, <-job.Done())
	require.Len(t, *got, 1)
	assert.Equal(t, event.SaveCompleted, (*got)[0].Type)
	assert.Equal(t, snap.SaveID, job.SaveID())
}

func TestSaveJob_Failure(t *testing.T) {
	saver := &fakeSaver{err: assert.AnError}
	bus := event.NewMemoryBus()
	got := collect(bus, event.SaveCompleted, event.SaveFailed)

	job := NewSaveJob(saver, persistence.FreshSnapshot(time.Now()), bus)
	assert.ErrorIs(t, job.Process(context.Background()), assert.AnError)

	assert.ErrorIs(t, <-job.Done(), assert.AnError)
	require.Len(t, *got, 1)
	assert.Equal(t, event.SaveFailed, (*got)[0].Type)
	payload, err := event.DecodePayload[event.SavePayloadV1]((*got)[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, assert.AnError.Error(), payload.Error)
}

func TestSaveJob_SupersededIsNotAFailure(t *testing.T) {
	saver := &fakeSaver{err: fmt.Errorf("%w: revision 1, last written 2", domain.ErrStaleSnapshot)}
	bus := event.NewMemoryBus()
	got := collect(bus, event.SaveCompleted, event.SaveFailed)

	job := NewSaveJob(saver, persistence.FreshSnapshot(time.Now()), bus)
	require.NoError(t, job.Process(context.Background()))

	assert.NoError(t, <-job.Done())
	assert.Empty(t, *got)
}

func TestSaveJob_ThroughPool(t *testing.T) {
	saver := &fakeSaver{}
	pool := NewPool(1, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	job := NewSaveJob(saver, persistence.FreshSnapshot(time.Now()), nil)
	require.NoError(t, pool.Enqueue(context.Background(), job))

	select {
	case err := <-job.Done():
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("save job did not run")
	}
}
